package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/winesheet/pkg/canvas"
	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/fonts"
	"github.com/matzehuels/winesheet/pkg/sketch"
)

func TestBuiltins_Valid(t *testing.T) {
	if diff := cmp.Diff([]string{Handwritten, Vintage}, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	for _, th := range All() {
		if err := th.Validate(); err != nil {
			t.Errorf("built-in %s invalid: %v", th.Name, err)
		}
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	_, err := Builtin("modern")
	if !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("Builtin(modern) error = %v, want INVALID_THEME", err)
	}
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	a, _ := Builtin(Handwritten)
	a.SubLabels[0] = "Changed"
	a.Palette.Title = canvas.RGB(0, 0, 1)

	b, _ := Builtin(Handwritten)
	if b.SubLabels[0] != "Grapes" || b.Palette.Title != wineRed {
		t.Error("mutating a built-in copy leaked into the registry")
	}
}

func TestSizesFor(t *testing.T) {
	v, _ := Builtin(Vintage)
	if got := v.SizesFor(fonts.Fallback()).VerticalHeader; got != 14 {
		t.Errorf("fallback vertical header = %v, want 14", got)
	}
	if got := v.SizesFor(fonts.Custom("InkFont", []byte{1})).VerticalHeader; got != 16 {
		t.Errorf("custom vertical header = %v, want 16", got)
	}
}

func TestLoadFonts_MissingFile(t *testing.T) {
	v, _ := Builtin(Vintage)
	set := v.LoadFonts(t.TempDir(), nil)
	if set.Custom {
		t.Error("missing font file should fall back to Times")
	}
}

func TestParse_Base(t *testing.T) {
	th, err := Parse(`
name = "rose"
base = "handwritten"
separator = "/"

[palette]
title = "#b03a5b"
`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if th.Name != "rose" || th.Separator != "/" {
		t.Errorf("overrides not applied: name=%q separator=%q", th.Name, th.Separator)
	}
	if th.Palette.Title.Hex() != "#b03a5b" {
		t.Errorf("title color = %s, want #b03a5b", th.Palette.Title.Hex())
	}
	if th.Palette.Box != wineRed || th.Stroke != Pencil {
		t.Error("keys not in the file should be inherited from the base")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"syntax", `name = `},
		{"unknown base", "name = \"x\"\nbase = \"baroque\""},
		{"missing name", `base = "vintage"`},
		{"unknown key", "name = \"x\"\nbase = \"vintage\"\ncolour = \"#fff\""},
		{"bad color", "name = \"x\"\nbase = \"vintage\"\n[palette]\ntext = \"sepia\""},
		{"bad stroke", "name = \"x\"\nbase = \"vintage\"\nstroke = \"crayon\""},
		{"no base, incomplete", `name = "bare"`},
		{"bad name", "name = \"My Theme\"\nbase = \"vintage\""},
		{"sub labels", "name = \"x\"\nbase = \"vintage\"\nsub_labels = [\"a\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsInvalid(err) {
				t.Errorf("error %v should be an invalid-input error", err)
			}
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	want, _ := Builtin(Vintage)
	text, err := Encode(want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(Encode(vintage)) error: %v\n%s", err, text)
	}
	approx := cmp.Comparer(func(a, b canvas.Color) bool { return a.Hex() == b.Hex() })
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "night.toml")
	if err := os.WriteFile(path, []byte("name = \"night\"\nbase = \"vintage\"\nbackground = \"plain\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.Background != Plain || th.Stroke != Ink {
		t.Errorf("got background=%s stroke=%s", th.Background, th.Stroke)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Load(missing) = %v, want NOT_FOUND", err)
	}
}

func TestDecorator(t *testing.T) {
	hw, _ := Builtin(Handwritten)
	vt, _ := Builtin(Vintage)

	t.Run("pencil", func(t *testing.T) {
		rec := canvas.NewRecorder(595, 842)
		d := hw.Decorator(sketch.NewSeeded(rec, 1))
		d.Background()
		if len(rec.Ops) != 0 {
			t.Errorf("plain background drew %d ops", len(rec.Ops))
		}
		d.Box(10, 10, 100, 50)
		if got := rec.Count(canvas.OpLine); got != 8 {
			t.Errorf("pencil box drew %d lines, want 8", got)
		}
		rec.Reset()
		d.Bubble(10, 10, 30, 10)
		if got := rec.Count(canvas.OpRoundRect); got != 2 {
			t.Errorf("pencil bubble drew %d ovals, want 2", got)
		}
	})

	t.Run("ink", func(t *testing.T) {
		rec := canvas.NewRecorder(595, 842)
		d := vt.Decorator(sketch.NewSeeded(rec, 1))
		d.Background()
		if rec.Ops[1].Kind != canvas.OpRect || rec.Ops[1].Mode != canvas.Fill {
			t.Errorf("aged background should start with a page fill, got %v", rec.Ops[1].Kind)
		}
		rec.Reset()
		d.Box(10, 10, 100, 50)
		if got := rec.Count(canvas.OpPath); got != 3 {
			t.Errorf("ornate box drew %d paths, want frame and two diamonds", got)
		}
		rec.Reset()
		d.Bubble(10, 10, 30, 11)
		if got := rec.Count(canvas.OpRoundRect); got != 1 {
			t.Errorf("ink bubble drew %d ovals, want 1", got)
		}
	})
}

func TestDecorator_Rule(t *testing.T) {
	hw, _ := Builtin(Handwritten)
	rec := canvas.NewRecorder(595, 842)
	hw.Decorator(sketch.NewSeeded(rec, 1)).Rule(10, 200, 700)

	want := []canvas.Op{
		{Kind: canvas.OpStrokeColor, Color: lightGrey},
		{Kind: canvas.OpLineWidth, Args: []float64{0.5}},
		{Kind: canvas.OpDash, Args: []float64{1, 4}},
		{Kind: canvas.OpLine, Args: []float64{10, 700, 200, 700}},
		{Kind: canvas.OpDash},
	}
	if diff := cmp.Diff(want, rec.Ops); diff != "" {
		t.Errorf("Rule ops mismatch (-want +got):\n%s", diff)
	}
}
