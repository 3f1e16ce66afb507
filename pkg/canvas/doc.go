// Package canvas defines the drawing surface contract shared by the sheet
// renderers and the output backends.
//
// # Coordinates
//
// All coordinates are in PDF points with the origin at the bottom-left corner
// of the page and y growing upwards. Backends whose native coordinate system
// is top-left (fpdf, SVG) flip y internally, so callers never see it.
//
// # Pen State
//
// A [Surface] carries mutable pen state: stroke color, fill color, line
// width, dash pattern and the current font. Drawing helpers set what they
// need before each primitive and do not restore it afterwards, so callers
// must not assume pen state survives a call into another package.
//
// # Backends
//
//   - [github.com/matzehuels/winesheet/pkg/canvas/pdf]: PDF via go-pdf/fpdf
//   - [github.com/matzehuels/winesheet/pkg/canvas/svg]: SVG via ajstarks/svgo
//   - [Recorder]: in-memory capture of every call, used by tests
package canvas
