package sketch

import (
	"testing"

	"github.com/matzehuels/winesheet/pkg/canvas"
)

var ink = canvas.RGB(0.25, 0.15, 0.10)

func TestOrnateBorder(t *testing.T) {
	const x, y, w, h = 100.0, 200.0, 150.0, 80.0
	rec := canvas.NewRecorder(595, 842)
	NewSeeded(rec, 1).OrnateBorder(x, y, w, h, ink)

	inner := rec.Filter(canvas.OpRoundRect)
	if len(inner) != 1 {
		t.Fatalf("drew %d inner frames, want 1", len(inner))
	}
	if a := inner[0].Args; a[0] != x || a[1] != y || a[2] != w || a[3] != h || a[4] != borderInnerRadius {
		t.Errorf("inner frame = %v", a)
	}

	paths := rec.Filter(canvas.OpPath)
	if len(paths) != 3 {
		t.Fatalf("drew %d paths, want outer frame + 2 diamonds", len(paths))
	}

	outer := paths[0]
	if outer.Mode != canvas.Stroke {
		t.Errorf("outer frame mode = %v, want stroke", outer.Mode)
	}
	if got := outer.Path.Count(canvas.CurveTo); got != 4 {
		t.Errorf("outer frame has %d corner curves, want 4", got)
	}
	if got := outer.Path.Count(canvas.LineTo); got != 3 {
		t.Errorf("outer frame has %d explicit edges, want 3 (fourth closes)", got)
	}
	for _, pt := range outer.Path.Points() {
		if pt.X < x-BorderOffset || pt.X > x+w+BorderOffset || pt.Y < y-BorderOffset || pt.Y > y+h+BorderOffset {
			t.Errorf("outer point %v outside offset bounds", pt)
		}
	}

	mid := x + w/2
	for i, wantY := range []float64{y + h + BorderOffset, y - BorderOffset} {
		d := paths[i+1]
		if d.Mode != canvas.Fill {
			t.Errorf("diamond %d mode = %v, want fill", i, d.Mode)
		}
		pts := d.Path.Points()
		if len(pts) != 4 {
			t.Fatalf("diamond %d has %d points, want 4", i, len(pts))
		}
		if pts[0].X != mid || pts[0].Y != wantY+diamondHalfHeight {
			t.Errorf("diamond %d top = %v, want (%v, %v)", i, pts[0], mid, wantY+diamondHalfHeight)
		}
		if pts[1].X != mid+diamondHalfWidth || pts[1].Y != wantY {
			t.Errorf("diamond %d right = %v", i, pts[1])
		}
	}
}

func TestOrnateBorder_Widths(t *testing.T) {
	rec := canvas.NewRecorder(595, 842)
	NewSeeded(rec, 1).OrnateBorder(0, 0, 50, 50, ink)

	widths := rec.Filter(canvas.OpLineWidth)
	if len(widths) != 2 || widths[0].Args[0] != borderInnerWidth || widths[1].Args[0] != borderOuterWidth {
		t.Errorf("widths = %+v, want inner %v then outer %v", widths, borderInnerWidth, borderOuterWidth)
	}
}

func TestInkBubble(t *testing.T) {
	rec := canvas.NewRecorder(595, 842)
	NewSeeded(rec, 1).InkBubble(10, 20, 30, 11, ink)

	rects := rec.Filter(canvas.OpRoundRect)
	if len(rects) != 1 {
		t.Fatalf("InkBubble() drew %d shapes, want 1", len(rects))
	}
	if a := rects[0].Args; a[0] != 10 || a[1] != 20 || a[4] != inkBubbleRadius {
		t.Errorf("InkBubble() rect = %v, want origin (10,20) r%v with no jitter", a, inkBubbleRadius)
	}
	if c := rec.Filter(canvas.OpStrokeColor)[0].Color; !within(c.A, inkBubbleAlpha, 1e-9) {
		t.Errorf("ink alpha = %v, want %v", c.A, inkBubbleAlpha)
	}
}
