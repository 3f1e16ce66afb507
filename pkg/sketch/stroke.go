package sketch

import "github.com/matzehuels/winesheet/pkg/canvas"

const (
	// LineJitter bounds the offset of the main stroke's endpoints.
	LineJitter = 0.5
	// ShadowJitter bounds the offset of the thinner second stroke.
	ShadowJitter = 1.0
	// ShadowWidthRatio scales the base width for the second stroke.
	ShadowWidthRatio = 0.6

	// Overshoot is how far rectangle edges run past the corners.
	Overshoot = 4.0

	// DefaultStrokeWidth is the pencil width used by Rect.
	DefaultStrokeWidth = 0.8

	bubbleRadius      = 4.0
	bubbleWidth       = 0.8
	bubbleShadowWidth = 0.5
)

// Line draws a pencil stroke from (x1, y1) to (x2, y2): once at width with
// endpoints moved by up to LineJitter on each axis, then again at
// ShadowWidthRatio × width moved by up to ShadowJitter.
func (r *Renderer) Line(x1, y1, x2, y2 float64, c canvas.Color, width float64) {
	s := r.s
	s.SetStrokeColor(c)
	s.SetDash()

	s.SetLineWidth(width)
	s.Line(x1+r.jitter(LineJitter), y1+r.jitter(LineJitter), x2+r.jitter(LineJitter), y2+r.jitter(LineJitter))

	s.SetLineWidth(width * ShadowWidthRatio)
	s.Line(x1+r.jitter(ShadowJitter), y1+r.jitter(ShadowJitter), x2+r.jitter(ShadowJitter), y2+r.jitter(ShadowJitter))
}

// Rect draws the four edges of the rectangle at (x, y) as pencil strokes.
// Every edge runs Overshoot past the corners, like a quick ruler sketch.
func (r *Renderer) Rect(x, y, w, h float64, c canvas.Color) {
	r.Line(x-Overshoot, y+h, x+w+Overshoot, y+h, c, DefaultStrokeWidth)
	r.Line(x-Overshoot, y, x+w+Overshoot, y, c, DefaultStrokeWidth)
	r.Line(x, y-Overshoot, x, y+h+Overshoot, c, DefaultStrokeWidth)
	r.Line(x+w, y-Overshoot, x+w, y+h+Overshoot, c, DefaultStrokeWidth)
}

// Bubble draws a hand-circled selection oval: the same rounded rectangle
// twice with independent offsets and two line widths.
func (r *Renderer) Bubble(x, y, w, h float64, c canvas.Color) {
	s := r.s
	s.SetStrokeColor(c)
	s.SetDash()

	s.SetLineWidth(bubbleWidth)
	s.RoundRect(x+r.jitter(LineJitter), y+r.jitter(LineJitter), w, h, bubbleRadius, canvas.Stroke)

	s.SetLineWidth(bubbleShadowWidth)
	s.RoundRect(x+r.jitter(ShadowJitter), y+r.jitter(ShadowJitter), w, h, bubbleRadius, canvas.Stroke)
}
