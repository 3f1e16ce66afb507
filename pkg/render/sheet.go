package render

import (
	"bytes"
	"context"
	"strings"

	"github.com/matzehuels/winesheet/pkg/buildinfo"
	"github.com/matzehuels/winesheet/pkg/canvas"
	"github.com/matzehuels/winesheet/pkg/canvas/pdf"
	"github.com/matzehuels/winesheet/pkg/canvas/svg"
	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/fonts"
	"github.com/matzehuels/winesheet/pkg/sheet"
	"github.com/matzehuels/winesheet/pkg/sketch"
	"github.com/matzehuels/winesheet/pkg/theme"
)

// Format is an output file format.
type Format string

const (
	PDF Format = "pdf"
	SVG Format = "svg"
	PNG Format = "png"
)

// Formats lists every supported format name.
var Formats = []string{string(PDF), string(SVG), string(PNG)}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if err := errors.ValidateFormat(s, Formats...); err != nil {
		return "", err
	}
	return Format(s), nil
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case PDF:
		return "application/pdf"
	case SVG:
		return "image/svg+xml"
	case PNG:
		return "image/png"
	}
	return "application/octet-stream"
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

const documentTitle = "Wine Tasting Sheet"

// Request describes one sheet to render.
type Request struct {
	Theme   *theme.Theme
	Fonts   fonts.Set
	Seed    uint64
	Content *sheet.Content // nil for the default text
	Scale   float64        // PNG scale factor; zero means 2
}

// Sheet renders the requested sheet in format f.
func Sheet(ctx context.Context, f Format, req Request) ([]byte, error) {
	if req.Theme == nil {
		return nil, errors.New(errors.ErrCodeInvalidTheme, "no theme given")
	}
	switch f {
	case PDF:
		return sheetPDF(req)
	case SVG:
		return sheetSVG(req)
	case PNG:
		data, err := sheetSVG(req)
		if err != nil {
			return nil, err
		}
		scale := req.Scale
		if scale == 0 {
			scale = 2
		}
		return ToPNG(ctx, data, scale)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", f, strings.Join(Formats, ", "))
}

func sheetPDF(req Request) ([]byte, error) {
	surface, err := pdf.New(pdf.Options{
		Fonts:   req.Fonts,
		Title:   documentTitle,
		Creator: "winesheet " + buildinfo.Version,
	})
	if err != nil {
		return nil, err
	}
	if err := draw(surface, req); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := surface.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sheetSVG(req Request) ([]byte, error) {
	surface := svg.New(svg.Options{
		Fonts:    req.Fonts,
		Title:    documentTitle,
		Measurer: pdf.NewMeasurer(req.Fonts),
	})
	if err := draw(surface, req); err != nil {
		return nil, err
	}
	return surface.Bytes(), nil
}

func draw(s canvas.Surface, req Request) error {
	_, err := sheet.Draw(sketch.NewSeeded(s, req.Seed), req.Theme, req.Fonts, req.Content)
	return err
}
