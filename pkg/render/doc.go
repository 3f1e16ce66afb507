// Package render turns a theme into finished sheet files.
//
// # Formats
//
// [Sheet] draws one tasting sheet in the requested [Format]:
//
//   - PDF: drawn directly with go-pdf/fpdf, fonts embedded
//   - SVG: drawn with ajstarks/svgo, fonts embedded as data URLs
//   - PNG: the SVG rasterized by the external rsvg-convert tool
//
// PDF and SVG share font metrics, so text lands on the same coordinates in
// both. A request with the same seed always produces the same drawing.
//
//	data, err := render.Sheet(ctx, render.PDF, render.Request{
//	    Theme: th,
//	    Fonts: th.LoadFonts(fontDir, logger),
//	    Seed:  42,
//	})
//
// # Format Conversion
//
// [ToPNG] converts any SVG using rsvg-convert (from librsvg), which must be
// on PATH. Use [PNGAvailable] to check before offering PNG output.
package render
