package sketch

import "github.com/matzehuels/winesheet/pkg/canvas"

const (
	// BorderOffset is the gap between the inner frame and the outer swirl.
	BorderOffset = 3.0

	borderInnerRadius = 8.0
	borderInnerWidth  = 0.8
	borderOuterWidth  = 1.5
	borderCorner      = 10.0

	diamondHalfWidth  = 3.0
	diamondHalfHeight = 2.0

	inkBubbleRadius = 6.0
	inkBubbleWidth  = 0.8
	inkBubbleAlpha  = 0.7
)

// OrnateBorder frames the rectangle at (x, y) with a thin rounded inner line,
// an outer line whose corners curl outward by BorderOffset, and a small
// filled diamond centered on the top and bottom outer edges.
func (r *Renderer) OrnateBorder(x, y, w, h float64, c canvas.Color) {
	s := r.s
	s.SetDash()
	s.SetStrokeColor(c)
	s.SetLineWidth(borderInnerWidth)
	s.RoundRect(x, y, w, h, borderInnerRadius, canvas.Stroke)

	s.SetLineWidth(borderOuterWidth)
	s.DrawPath(outerFrame(x, y, w, h), canvas.Stroke)

	s.SetFillColor(c)
	mid := x + w/2
	s.DrawPath(diamond(mid, y+h+BorderOffset), canvas.Fill)
	s.DrawPath(diamond(mid, y-BorderOffset), canvas.Fill)
}

// outerFrame traces the outer line clockwise from the left edge. Each corner
// is a cubic whose two control points sit on the offset corner itself.
func outerFrame(x, y, w, h float64) *canvas.Path {
	const o, k = BorderOffset, borderCorner
	left, right := x-o, x+w+o
	bottom, top := y-o, y+h+o

	return canvas.NewPath().
		MoveTo(left, y+h-k).
		CurveTo(left, top, left, top, x+k, top).
		LineTo(x+w-k, top).
		CurveTo(right, top, right, top, right, y+h-k).
		LineTo(right, y+k).
		CurveTo(right, bottom, right, bottom, x+w-k, bottom).
		LineTo(x+k, bottom).
		CurveTo(left, bottom, left, bottom, left, y+k).
		Close()
}

func diamond(cx, cy float64) *canvas.Path {
	return canvas.NewPath().
		MoveTo(cx, cy+diamondHalfHeight).
		LineTo(cx+diamondHalfWidth, cy).
		LineTo(cx, cy-diamondHalfHeight).
		LineTo(cx-diamondHalfWidth, cy).
		Close()
}

// InkBubble draws a single smooth oval in watered-down ink: c at reduced
// opacity, no jitter.
func (r *Renderer) InkBubble(x, y, w, h float64, c canvas.Color) {
	s := r.s
	s.SetDash()
	s.SetLineWidth(inkBubbleWidth)
	s.SetStrokeColor(c.WithAlpha(c.A * inkBubbleAlpha))
	s.RoundRect(x, y, w, h, inkBubbleRadius, canvas.Stroke)
}
