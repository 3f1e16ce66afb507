package sketch

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/winesheet/pkg/canvas"
)

var testPaper = Paper{
	Base:       canvas.RGB(0.96, 0.93, 0.85),
	StainDark:  canvas.RGBA(0.85, 0.80, 0.70, 0.3),
	StainLight: canvas.RGBA(1, 1, 0.95, 0.4),
	Ring:       canvas.RGBA(0.6, 0.2, 0.2, 0.15),
	Splatter:   canvas.RGBA(0.25, 0.15, 0.10, 0.6),
}

// isDraw reports whether op puts marks on the page.
func isDraw(op canvas.Op) bool {
	switch op.Kind {
	case canvas.OpLine, canvas.OpRect, canvas.OpRoundRect, canvas.OpCircle,
		canvas.OpPath, canvas.OpText, canvas.OpTextCentered:
		return true
	}
	return false
}

func TestAgedBackground_FillsPageFirst(t *testing.T) {
	const w, h = 595.28, 841.89
	rec := canvas.NewRecorder(w, h)
	NewSeeded(rec, 42).AgedBackground(w, h, testPaper, nil)

	var draws []canvas.Op
	for _, op := range rec.Ops {
		if isDraw(op) {
			draws = append(draws, op)
		}
	}
	if len(draws) == 0 {
		t.Fatal("AgedBackground() drew nothing")
	}

	first := draws[0]
	if first.Kind != canvas.OpRect || first.Mode != canvas.Fill {
		t.Fatalf("first draw = %s/%v, want filled rect", first.Kind, first.Mode)
	}
	if diff := cmp.Diff([]float64{0, 0, w, h}, first.Args); diff != "" {
		t.Errorf("base fill does not cover the page (-want +got):\n%s", diff)
	}
	if c := rec.Ops[0]; c.Kind != canvas.OpFillColor || c.Color != testPaper.Base {
		t.Errorf("base fill color = %+v, want %v", c, testPaper.Base)
	}
	for _, op := range draws[1:] {
		if op.Kind == canvas.OpRect {
			t.Errorf("unexpected second rect after base fill: %v", op.Args)
		}
	}
}

func TestAgedBackground_Counts(t *testing.T) {
	rec := canvas.NewRecorder(595, 842)
	NewSeeded(rec, 42).AgedBackground(595, 842, testPaper, nil)

	if got := rec.Count(canvas.OpPath); got != defaultTexture.Blobs {
		t.Errorf("blobs = %d, want %d", got, defaultTexture.Blobs)
	}

	var rings, dots int
	for _, c := range rec.Filter(canvas.OpCircle) {
		r := c.Args[2]
		switch c.Mode {
		case canvas.Stroke:
			rings++
			if r < 20 || r > 60 {
				t.Errorf("ring radius %v outside [20, 60]", r)
			}
		case canvas.Fill:
			dots++
			if r < 0.5 || r > 2.5 {
				t.Errorf("splatter radius %v outside [0.5, 2.5]", r)
			}
		}
	}
	if rings != defaultTexture.Rings {
		t.Errorf("rings = %d, want %d", rings, defaultTexture.Rings)
	}
	if dots != defaultTexture.Splatters {
		t.Errorf("splatters = %d, want %d", dots, defaultTexture.Splatters)
	}
}

func TestAgedBackground_StainColors(t *testing.T) {
	rec := canvas.NewRecorder(595, 842)
	NewSeeded(rec, 8).AgedBackground(595, 842, testPaper, nil)

	var dark, light int
	for i, op := range rec.Ops {
		if op.Kind != canvas.OpPath {
			continue
		}
		fill := rec.Ops[i-1]
		if fill.Kind != canvas.OpFillColor {
			t.Fatalf("blob %d not preceded by a fill color", i)
		}
		switch fill.Color {
		case testPaper.StainDark:
			dark++
		case testPaper.StainLight:
			light++
		default:
			t.Errorf("blob filled with %v", fill.Color)
		}
	}
	if dark == 0 || light == 0 {
		t.Errorf("expected both stain tones, got dark=%d light=%d", dark, light)
	}
}

func TestAgedBackground_CustomOptions(t *testing.T) {
	rec := canvas.NewRecorder(100, 100)
	opts := DefaultTexture()
	opts.Blobs, opts.Rings, opts.Splatters = 2, 0, 5
	NewSeeded(rec, 1).AgedBackground(100, 100, testPaper, &opts)

	if got := rec.Count(canvas.OpPath); got != 2 {
		t.Errorf("blobs = %d, want 2", got)
	}
	if got := rec.Count(canvas.OpCircle); got != 5 {
		t.Errorf("circles = %d, want 5", got)
	}
}

func TestBlob_Bounds(t *testing.T) {
	for seed := range uint64(200) {
		rng := NewRand(seed)
		size := intBetween(rng, 50, 200)
		center := canvas.Point{X: float64(rng.IntN(596)), Y: float64(rng.IntN(842))}
		p := Blob(rng, center, size)

		if got := p.Count(canvas.CurveTo); got != BlobSegments {
			t.Fatalf("seed %d: %d curves, want %d", seed, got, BlobSegments)
		}
		if first := p.Segments[0]; first.Kind != canvas.MoveTo || first.Pts[0] != center {
			t.Fatalf("seed %d: blob should start at its center, got %+v", seed, first)
		}
		if last := p.Segments[len(p.Segments)-1]; last.Kind != canvas.ClosePath {
			t.Fatalf("seed %d: blob is not closed", seed)
		}

		s := float64(size)
		for _, pt := range p.Points() {
			if pt.X < center.X-s || pt.X > center.X+s || pt.Y < center.Y-s || pt.Y > center.Y+s {
				t.Fatalf("seed %d: point %v outside %v ± %v", seed, pt, center, s)
			}
		}
	}
}

func TestAgedBackground_Seeded(t *testing.T) {
	render := func(seed uint64) []canvas.Op {
		rec := canvas.NewRecorder(595, 842)
		NewSeeded(rec, seed).AgedBackground(595, 842, testPaper, nil)
		return rec.Ops
	}

	if diff := cmp.Diff(render(42), render(42)); diff != "" {
		t.Errorf("same seed should reproduce the texture (-first +second):\n%s", diff)
	}
	if cmp.Equal(render(42), render(43)) {
		t.Error("different seeds should produce different textures")
	}
}

func TestNew_NilRand(t *testing.T) {
	rec := canvas.NewRecorder(100, 100)
	r := New(rec, nil)
	if r.rng == nil {
		t.Fatal("New(nil) should create a random source")
	}
	if r.Surface() != rec {
		t.Error("Surface() should return the wrapped surface")
	}
	r.Line(0, 0, 1, 1, pencil, 1)
	if rec.Count(canvas.OpLine) != 2 {
		t.Error("renderer with default source should still draw")
	}
}
