package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/fonts"
	"github.com/matzehuels/winesheet/pkg/theme"
)

func request(t *testing.T, name string, seed uint64) Request {
	t.Helper()
	th, err := theme.Builtin(name)
	if err != nil {
		t.Fatal(err)
	}
	return Request{Theme: th, Fonts: fonts.Fallback(), Seed: seed}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"pdf", "SVG", " png "} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) error: %v", s, err)
		}
	}
	if _, err := ParseFormat("docx"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ParseFormat(docx) = %v, want INVALID_FORMAT", err)
	}
}

func TestFormat_ContentType(t *testing.T) {
	if PDF.ContentType() != "application/pdf" || SVG.ContentType() != "image/svg+xml" || PNG.ContentType() != "image/png" {
		t.Error("unexpected content types")
	}
	if PNG.Ext() != ".png" {
		t.Errorf("Ext() = %q", PNG.Ext())
	}
}

func TestSheet_PDF(t *testing.T) {
	for _, name := range theme.Names() {
		data, err := Sheet(context.Background(), PDF, request(t, name, 1))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Errorf("%s: output is not a PDF", name)
		}
	}
}

func TestSheet_SVGDeterministic(t *testing.T) {
	ctx := context.Background()
	a, err := Sheet(ctx, SVG, request(t, theme.Vintage, 9))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Sheet(ctx, SVG, request(t, theme.Vintage, 9))
	c, _ := Sheet(ctx, SVG, request(t, theme.Vintage, 10))

	if !bytes.Equal(a, b) {
		t.Error("same seed should produce identical SVG")
	}
	if bytes.Equal(a, c) {
		t.Error("different seeds should produce different SVG")
	}
	if !bytes.Contains(a, []byte("WINE")) && !bytes.Contains(a, []byte("Wine Name:")) {
		t.Error("SVG is missing the header text")
	}
}

func TestSheet_NoTheme(t *testing.T) {
	if _, err := Sheet(context.Background(), PDF, Request{}); !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("Sheet without theme = %v, want INVALID_THEME", err)
	}
}

func TestSheet_PNG(t *testing.T) {
	if !PNGAvailable() {
		t.Skip("rsvg-convert not installed")
	}
	data, err := Sheet(context.Background(), PNG, request(t, theme.Handwritten, 1))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestToPNG_MissingTool(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	_, err := ToPNG(context.Background(), []byte("<svg/>"), 1)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG without rsvg-convert = %v, want UNSUPPORTED", err)
	}
}
