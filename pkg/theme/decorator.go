package theme

import (
	"github.com/matzehuels/winesheet/pkg/canvas"
	"github.com/matzehuels/winesheet/pkg/sketch"
)

// Decorator draws the theme-dependent parts of a sheet: the page
// background, box frames, selection bubbles and writing rules.
type Decorator struct {
	t *Theme
	r *sketch.Renderer
}

// Decorator binds the theme to a sketch renderer.
func (t *Theme) Decorator(r *sketch.Renderer) *Decorator {
	return &Decorator{t: t, r: r}
}

// Background paints the page. Plain themes leave it untouched.
func (d *Decorator) Background() {
	if d.t.Background != Aged {
		return
	}
	w, h := d.r.Surface().PageSize()
	tex := d.t.Texture
	d.r.AgedBackground(w, h, d.t.Paper(), &tex)
}

// Box frames the rectangle whose bottom-left corner is (x, y).
func (d *Decorator) Box(x, y, w, h float64) {
	if d.t.Stroke == Ink {
		d.r.OrnateBorder(x, y, w, h, d.t.Palette.Box)
		return
	}
	d.r.Rect(x, y, w, h, d.t.Palette.Box)
}

// Bubble draws a selection oval for the respondent to circle.
func (d *Decorator) Bubble(x, y, w, h float64) {
	if d.t.Stroke == Ink {
		d.r.InkBubble(x, y, w, h, d.t.Palette.Bubble)
		return
	}
	d.r.Bubble(x, y, w, h, d.t.Palette.Bubble)
}

// Rule draws a horizontal writing line from x1 to x2.
func (d *Decorator) Rule(x1, x2, y float64) {
	d.rule(x1, x2, y, d.t.Palette.Rule)
}

// NotesRule draws a writing line inside the notes box.
func (d *Decorator) NotesRule(x1, x2, y float64) {
	d.rule(x1, x2, y, d.t.Palette.NotesRule)
}

func (d *Decorator) rule(x1, x2, y float64, c canvas.Color) {
	s := d.r.Surface()
	s.SetStrokeColor(c)
	s.SetLineWidth(d.t.RuleWidth)
	s.SetDash(d.t.RuleDash...)
	s.Line(x1, y, x2, y)
	s.SetDash()
}
