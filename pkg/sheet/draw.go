package sheet

import (
	"strings"

	"github.com/matzehuels/winesheet/pkg/canvas"
	"github.com/matzehuels/winesheet/pkg/fonts"
	"github.com/matzehuels/winesheet/pkg/sketch"
	"github.com/matzehuels/winesheet/pkg/theme"
)

// drawer carries the state of one sheet render.
type drawer struct {
	s      canvas.Surface
	t      *theme.Theme
	d      *theme.Decorator
	sz     theme.Sizes
	g      Geometry
	header canvas.Font
	body   canvas.Font
}

// Draw renders a complete tasting sheet onto the renderer's surface and
// returns where its parts were placed. Passing nil content draws
// [DefaultContent].
func Draw(r *sketch.Renderer, t *theme.Theme, set fonts.Set, c *Content) (*Layout, error) {
	if c == nil {
		c = DefaultContent()
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	s := r.Surface()
	w, h := s.PageSize()
	dr := &drawer{
		s:      s,
		t:      t,
		d:      t.Decorator(r),
		sz:     t.SizesFor(set),
		g:      NewGeometry(w, h),
		header: set.Header.Font(),
		body:   set.Body.Font(),
	}
	return dr.draw(c), nil
}

func (dr *drawer) draw(c *Content) *Layout {
	g := dr.g
	out := &Layout{Geometry: g}

	dr.d.Background()

	y := g.Height - headerTopOffset
	for _, label := range c.HeaderFields {
		dr.headerRow(label, MarginLeft, y, g.HeaderW)
		y -= headerRowHeight
	}
	dateW := g.HeaderW * 0.4
	dr.headerRow(c.DateLabel, MarginLeft, y, dateW)
	dr.headerRow(c.VintageLabel, MarginLeft+dateW+20, y, g.HeaderW*0.25)

	out.Aroma = dr.aromaBox(c, g.Height-aromaTopOffset)

	y -= 30
	y = dr.section(c.Visual, y, out)
	y -= SectionSpacing

	notesTop := y + 10
	y = dr.section(c.Smell, y, out)
	y -= SectionSpacing
	y = dr.section(c.Taste, y, out)
	out.Notes = dr.notesBox(c.NotesTitle, notesTop, y+20)

	y -= SectionSpacing
	out.End = dr.verdict(c.Verdict, y, out)
	return out
}

func (dr *drawer) section(sec Section, y float64, out *Layout) float64 {
	top := y
	for _, row := range sec.Rows {
		y = dr.row(row, y)
	}
	span := Span{Title: sec.Title, Top: top, Bottom: y + sec.EndLift}
	dr.verticalHeader(span)
	out.Sections = append(out.Sections, span)
	return y
}

func (dr *drawer) row(row Row, y float64) float64 {
	switch row.Kind {
	case ThreeLevel:
		return dr.threeLevel(row.Label, y)
	case Input:
		return dr.input(row.Label, y)
	case Hue:
		return dr.hue(row, y)
	default:
		return dr.criteria(row, y)
	}
}

func (dr *drawer) label(s string, x, y, size float64) {
	dr.s.SetFillColor(dr.t.Palette.Text)
	dr.s.SetFont(dr.header, size)
	dr.s.Text(x, y, s)
}

// headerRow draws a field label and a writing line up to x+width.
func (dr *drawer) headerRow(s string, x, y, width float64) {
	dr.label(s, x, y, dr.sz.FieldLabel)
	lw := dr.s.StringWidth(s, dr.header, dr.sz.FieldLabel)
	dr.d.Rule(x+lw+5, x+width, y)
}

// criteria draws the label and its options, each centered over a bubble,
// with the theme separator between options. It returns the next row's y.
func (dr *drawer) criteria(row Row, y float64) float64 {
	g := dr.g
	dr.label(row.Label, g.ContentX, y, dr.sz.Label)

	dr.s.SetFont(dr.body, dr.sz.Option)
	spacing := row.Spacing
	if spacing == 0 {
		spacing = DefaultOptionSpacing
	}
	bubbles := !row.NoBubbles
	gap := 12.0
	if bubbles {
		gap = 25
	}

	x := g.ContentX + spacing
	for i, opt := range row.Options {
		dr.s.SetFillColor(dr.t.Palette.Text)
		dr.s.Text(x, y, opt)
		tw := dr.s.StringWidth(opt, dr.body, dr.sz.Option)
		if bubbles {
			dr.d.Bubble(x+tw/2-bubbleWidth/2, y-bubbleDrop, bubbleWidth, dr.t.BubbleHeight)
		}
		x += tw + gap
		if i < len(row.Options)-1 {
			dr.s.Text(x-gap/2-2, y, dr.t.Separator)
		}
	}
	if bubbles {
		return y - 28
	}
	return y - 22
}

// threeLevel draws a label with one sub-labelled writing line per level.
func (dr *drawer) threeLevel(s string, y float64) float64 {
	g := dr.g
	dr.label(s, g.ContentX, y, dr.sz.Label)
	dr.s.SetFont(dr.body, dr.sz.SubLabel)
	for _, sub := range dr.t.SubLabels {
		dr.s.SetFillColor(dr.t.Palette.Text)
		dr.s.Text(g.ContentX+80, y, sub+":")
		dr.d.Rule(g.ContentX+140, g.CriteriaRight, y)
		y -= 18
	}
	return y - 5
}

func (dr *drawer) input(s string, y float64) float64 {
	dr.label(s, dr.g.ContentX, y, dr.sz.Label)
	dr.d.Rule(dr.g.ContentX+110, dr.g.CriteriaRight, y)
	return y - 24
}

func (dr *drawer) hue(row Row, y float64) float64 {
	dr.label(row.Label, dr.g.ContentX, y, dr.sz.HueLabel)
	dr.s.SetFont(dr.body, dr.sz.HueText)
	for i, line := range row.Options {
		dr.s.Text(dr.g.ContentX+80, y, line)
		if i < len(row.Options)-1 {
			y -= 16
		} else {
			y -= 20
		}
	}
	return y
}

// verticalHeader draws the section title rotated a quarter turn in the
// left margin, centered on the span.
func (dr *drawer) verticalHeader(span Span) {
	s := dr.s
	s.SaveState()
	s.Translate(MarginLeft+10, span.Center())
	s.Rotate(90)
	s.SetFillColor(dr.t.Palette.Title)
	s.SetFont(dr.header, dr.sz.VerticalHeader)
	s.TextCentered(0, -3, strings.ToUpper(span.Title))
	s.RestoreState()
}

// aromaBox draws the descriptor reference in the right column. The frame
// is sized to the text, so it is drawn last.
func (dr *drawer) aromaBox(c *Content, start float64) Box {
	g := dr.g
	s := dr.s
	start += aromaLift
	titleY := start - 12

	s.SetFillColor(dr.t.Palette.Title)
	s.SetFont(dr.header, dr.sz.BoxTitle)
	s.TextCentered(g.RightColX+g.RightColW/2, titleY, c.AromaTitle)

	y := titleY - 12
	s.SetFillColor(dr.t.Palette.Text)
	for i, items := range c.AromaItems {
		s.SetFont(dr.header, dr.sz.Section)
		s.Text(g.RightColX+5, y, dr.t.AromaTitles[i])
		y -= 10
		s.SetFont(dr.body, dr.sz.Item)
		for _, item := range items {
			s.Text(g.RightColX+5, y, item)
			y -= 9
		}
		y -= 3
	}

	box := Box{X: g.RightColX, Y: y, W: g.RightColW, H: start - y + 5}
	dr.d.Box(box.X, box.Y, box.W, box.H)
	return box
}

// notesBox draws the free-writing box beside the smell and taste sections.
func (dr *drawer) notesBox(title string, start, end float64) Box {
	g := dr.g
	s := dr.s
	end -= 5

	s.SetFillColor(dr.t.Palette.Title)
	s.SetFont(dr.header, dr.sz.NotesTitle)
	s.TextCentered(g.NotesX+g.NotesW/2, start-10, title)

	top := start - 20
	box := Box{X: g.NotesX, Y: end, W: g.NotesW, H: top - end}
	dr.d.Box(box.X, box.Y, box.W, box.H)

	inset := dr.t.NotesInset
	for ly := top - 15; ly > end+5; ly -= 15 {
		dr.d.NotesRule(g.NotesX+inset, g.NotesX+g.NotesW-inset, ly)
	}
	return box
}

// verdict draws the closing scales and returns the y below them.
func (dr *drawer) verdict(v Verdict, y float64, out *Layout) float64 {
	g := dr.g
	top := y
	for i, scale := range v.Scales {
		dr.label(scale.Label, g.ContentX, y, dr.sz.VerdictLabel)
		dr.s.SetFont(dr.body, dr.sz.VerdictOption)
		x := g.ContentX + DefaultOptionSpacing
		for _, opt := range scale.Options {
			dr.s.SetFillColor(dr.t.Palette.Text)
			dr.s.Text(x, y, opt)
			tw := dr.s.StringWidth(opt, dr.body, dr.sz.VerdictOption)
			dr.d.Bubble(x+tw/2-bubbleWidth/2, y-bubbleDrop, bubbleWidth, dr.t.VerdictBubbleHeight)
			x += tw + 30
		}
		if i < len(v.Scales)-1 {
			y -= 30
		} else {
			y -= 25
		}
	}
	span := Span{Title: v.Title, Top: top, Bottom: y + 10}
	dr.verticalHeader(span)
	out.Sections = append(out.Sections, span)
	return y
}
