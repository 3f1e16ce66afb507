// Package svg implements [canvas.Surface] on top of ajstarks/svgo.
//
// svgo takes integer coordinates for its shape helpers, so all geometry is
// written as path data with full precision. Transforms open nested <g>
// groups that are closed again by RestoreState. Custom fonts are embedded
// as base64 @font-face rules so the file renders the same anywhere.
package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/matzehuels/winesheet/pkg/canvas"
	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/fonts"
)

// A4 page size in points.
const (
	A4Width  = 595.2756
	A4Height = 841.8898
)

// Options configures a new SVG surface.
type Options struct {
	Width, Height float64 // points; zero means A4
	Fonts         fonts.Set
	Title         string
	// Measurer provides text widths. Use pdf.NewMeasurer to match the PDF
	// layout exactly; nil falls back to a rough estimate.
	Measurer canvas.Measurer
}

type penState struct {
	stroke, fill canvas.Color
	width        float64
	dash         []float64
	font         canvas.Font
	size         float64
	groups       int
}

// Surface renders into an in-memory SVG document.
type Surface struct {
	buf     bytes.Buffer
	doc     *svgo.SVG
	w, h    float64
	pen     penState
	stack   []penState
	measure canvas.Measurer
	closed  bool
}

var _ canvas.Surface = (*Surface)(nil)

// New starts a document and embeds the custom faces in opts.Fonts.
func New(opts Options) *Surface {
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = A4Width, A4Height
	}
	s := &Surface{w: w, h: h, measure: opts.Measurer}
	if s.measure == nil {
		s.measure = estimate{}
	}
	s.pen = penState{stroke: canvas.RGB(0, 0, 0), fill: canvas.RGB(0, 0, 0), width: 1}

	s.doc = svgo.New(&s.buf)
	s.doc.Startraw(
		fmt.Sprintf(`width="%spt" height="%spt"`, num(w), num(h)),
		fmt.Sprintf(`viewBox="0 0 %s %s"`, num(w), num(h)),
	)
	if opts.Title != "" {
		s.doc.Title(opts.Title)
	}
	if css := fontFaces(opts.Fonts); css != "" {
		s.doc.Def()
		s.doc.Style("text/css", css)
		s.doc.DefEnd()
	}
	return s
}

func fontFaces(set fonts.Set) string {
	var b strings.Builder
	for _, face := range set.Faces() {
		if face.Builtin() {
			continue
		}
		fmt.Fprintf(&b, "@font-face { font-family: %q; src: url(data:font/ttf;base64,%s) format(\"truetype\"); }\n",
			face.Family, base64.StdEncoding.EncodeToString(face.Data))
	}
	return b.String()
}

func (s *Surface) PageSize() (float64, float64) { return s.w, s.h }

func (s *Surface) SetStrokeColor(c canvas.Color) { s.pen.stroke = c }
func (s *Surface) SetFillColor(c canvas.Color)   { s.pen.fill = c }
func (s *Surface) SetLineWidth(w float64)        { s.pen.width = w }

func (s *Surface) SetDash(pattern ...float64) {
	s.pen.dash = append([]float64(nil), pattern...)
}

func (s *Surface) Line(x1, y1, x2, y2 float64) {
	s.doc.Path(fmt.Sprintf("M%s %sL%s %s", num(x1), num(s.h-y1), num(x2), num(s.h-y2)), s.style(canvas.Stroke))
}

func (s *Surface) Rect(x, y, w, h float64, mode canvas.PaintMode) {
	top := s.h - (y + h)
	s.doc.Path(fmt.Sprintf("M%s %sh%sv%sh%sZ", num(x), num(top), num(w), num(h), num(-w)), s.style(mode))
}

func (s *Surface) RoundRect(x, y, w, h, r float64, mode canvas.PaintMode) {
	r = min(r, w/2, h/2)
	top := s.h - (y + h)
	d := fmt.Sprintf("M%s %sh%sa%s %s 0 0 1 %s %sv%sa%s %s 0 0 1 %s %sh%sa%s %s 0 0 1 %s %sv%sa%s %s 0 0 1 %s %sZ",
		num(x+r), num(top), num(w-2*r),
		num(r), num(r), num(r), num(r), num(h-2*r),
		num(r), num(r), num(-r), num(r), num(-(w - 2*r)),
		num(r), num(r), num(-r), num(-r), num(-(h - 2*r)),
		num(r), num(r), num(r), num(-r))
	s.doc.Path(d, s.style(mode))
}

func (s *Surface) Circle(x, y, r float64, mode canvas.PaintMode) {
	cy := s.h - y
	d := fmt.Sprintf("M%s %sa%s %s 0 1 0 %s 0a%s %s 0 1 0 %s 0Z",
		num(x-r), num(cy), num(r), num(r), num(2*r), num(r), num(r), num(-2*r))
	s.doc.Path(d, s.style(mode))
}

func (s *Surface) DrawPath(p *canvas.Path, mode canvas.PaintMode) {
	if p == nil || len(p.Segments) == 0 {
		return
	}
	var b strings.Builder
	for _, seg := range p.Segments {
		switch seg.Kind {
		case canvas.MoveTo:
			fmt.Fprintf(&b, "M%s %s", num(seg.Pts[0].X), num(s.h-seg.Pts[0].Y))
		case canvas.LineTo:
			fmt.Fprintf(&b, "L%s %s", num(seg.Pts[0].X), num(s.h-seg.Pts[0].Y))
		case canvas.CurveTo:
			c1, c2, end := seg.Pts[0], seg.Pts[1], seg.Pts[2]
			fmt.Fprintf(&b, "C%s %s %s %s %s %s",
				num(c1.X), num(s.h-c1.Y), num(c2.X), num(s.h-c2.Y), num(end.X), num(s.h-end.Y))
		case canvas.ClosePath:
			b.WriteString("Z")
		}
	}
	s.doc.Path(b.String(), s.style(mode))
}

func (s *Surface) SetFont(f canvas.Font, size float64) {
	s.pen.font, s.pen.size = f, size
}

func (s *Surface) Text(x, y float64, str string) {
	s.doc.Gtransform(fmt.Sprintf("translate(%s,%s)", num(x), num(s.h-y)))
	s.doc.Text(0, 0, str, s.textStyle())
	s.doc.Gend()
}

// TextCentered centers on the measured width rather than using
// text-anchor, so placement matches the PDF backend.
func (s *Surface) TextCentered(x, y float64, str string) {
	w := s.StringWidth(str, s.pen.font, s.pen.size)
	s.Text(x-w/2, y, str)
}

func (s *Surface) StringWidth(str string, f canvas.Font, size float64) float64 {
	return s.measure.StringWidth(str, f, size)
}

func (s *Surface) SaveState() {
	saved := s.pen
	s.stack = append(s.stack, saved)
	s.pen.groups = 0
}

func (s *Surface) RestoreState() {
	if len(s.stack) == 0 {
		return
	}
	for ; s.pen.groups > 0; s.pen.groups-- {
		s.doc.Gend()
	}
	s.pen = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate and Rotate are conjugated by the y flip: a canvas translation
// by (dx, dy) is an SVG translation by (dx, -dy), and a counterclockwise
// canvas rotation is a clockwise SVG rotation about (0, H).
func (s *Surface) Translate(dx, dy float64) {
	s.group(fmt.Sprintf("translate(%s,%s)", num(dx), num(-dy)))
}

func (s *Surface) Rotate(degrees float64) {
	s.group(fmt.Sprintf("rotate(%s 0 %s)", num(-degrees), num(s.h)))
}

func (s *Surface) group(transform string) {
	s.doc.Gtransform(transform)
	s.pen.groups++
}

// Bytes closes the document and returns it. Further drawing is ignored
// by the returned slice.
func (s *Surface) Bytes() []byte {
	if !s.closed {
		for len(s.stack) > 0 {
			s.RestoreState()
		}
		for ; s.pen.groups > 0; s.pen.groups-- {
			s.doc.Gend()
		}
		s.doc.End()
		s.closed = true
	}
	return s.buf.Bytes()
}

// WriteTo closes the document and writes it to w.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	if err != nil {
		return int64(n), errors.Wrap(errors.ErrCodeOutput, err, "write svg")
	}
	return int64(n), nil
}

func (s *Surface) style(mode canvas.PaintMode) string {
	var b strings.Builder
	if mode == canvas.Stroke {
		b.WriteString("fill:none;")
	} else {
		fmt.Fprintf(&b, "fill:%s;", colorHex(s.pen.fill))
		if !s.pen.fill.Opaque() {
			fmt.Fprintf(&b, "fill-opacity:%s;", num(s.pen.fill.A))
		}
	}
	if mode == canvas.Fill {
		b.WriteString("stroke:none")
		return b.String()
	}
	fmt.Fprintf(&b, "stroke:%s;stroke-width:%s", colorHex(s.pen.stroke), num(s.pen.width))
	if !s.pen.stroke.Opaque() {
		fmt.Fprintf(&b, ";stroke-opacity:%s", num(s.pen.stroke.A))
	}
	if len(s.pen.dash) > 0 {
		parts := make([]string, len(s.pen.dash))
		for i, d := range s.pen.dash {
			parts[i] = num(d)
		}
		fmt.Fprintf(&b, ";stroke-dasharray:%s", strings.Join(parts, ","))
	}
	return b.String()
}

func (s *Surface) textStyle() string {
	f := s.pen.font
	var b strings.Builder
	if f.Family == fonts.FallbackFamily {
		b.WriteString("font-family:Times,'Times New Roman',serif")
	} else {
		fmt.Fprintf(&b, "font-family:'%s'", f.Family)
	}
	fmt.Fprintf(&b, ";font-size:%spx", num(s.pen.size))
	if strings.Contains(f.Style, "B") {
		b.WriteString(";font-weight:bold")
	}
	if strings.Contains(f.Style, "I") {
		b.WriteString(";font-style:italic")
	}
	fmt.Fprintf(&b, ";fill:%s", colorHex(s.pen.fill))
	if !s.pen.fill.Opaque() {
		fmt.Fprintf(&b, ";fill-opacity:%s", num(s.pen.fill.A))
	}
	return b.String()
}

// colorHex drops the alpha channel; opacity is written separately.
func colorHex(c canvas.Color) string { return c.WithAlpha(1).Hex() }

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

// estimate approximates widths when no font metrics are available.
type estimate struct{}

func (estimate) StringWidth(s string, _ canvas.Font, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.5
}
