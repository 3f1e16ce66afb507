// Package pdf implements [canvas.Surface] on top of go-pdf/fpdf.
//
// fpdf works top-down; the surface flips every y coordinate so callers keep
// the bottom-left origin of the canvas package. Transforms are expressed
// around fpdf's (0, H), which is the canvas origin.
package pdf

import (
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/matzehuels/winesheet/pkg/canvas"
	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/fonts"
)

// DefaultPageSize is the fpdf size name used when Options.PageSize is empty.
const DefaultPageSize = "A4"

// Options configures a new PDF surface.
type Options struct {
	PageSize string    // fpdf size name: A4, Letter, ...
	Fonts    fonts.Set // faces to register; built-in faces need no data
	Title    string
	Creator  string
	// Uncompressed disables stream compression, which keeps the content
	// stream readable in tests.
	Uncompressed bool
}

type penState struct {
	stroke, fill canvas.Color
	width        float64
	dash         []float64
	font         canvas.Font
	size         float64
	alpha        float64 // opacity selected in the page, restored by Q
}

// Surface draws onto a single fpdf page.
type Surface struct {
	doc     *fpdf.Fpdf
	w, h    float64
	pen     penState
	stack   []penState
	alpha   float64
	measure *Measurer
	cp1252  func(string) string
}

var _ canvas.Surface = (*Surface)(nil)

// New creates a one-page document and registers the faces in opts.Fonts.
func New(opts Options) (*Surface, error) {
	size := opts.PageSize
	if size == "" {
		size = DefaultPageSize
	}
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        size,
	})
	doc.SetCompression(!opts.Uncompressed)
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	if opts.Title != "" {
		doc.SetTitle(opts.Title, true)
	}
	if opts.Creator != "" {
		doc.SetCreator(opts.Creator, true)
	}
	registerFaces(doc, opts.Fonts)
	doc.AddPage()
	if err := doc.Error(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutput, err, "create pdf (page size %q)", size)
	}

	w, h := doc.GetPageSize()
	s := &Surface{
		doc:     doc,
		w:       w,
		h:       h,
		alpha:   1,
		measure: NewMeasurer(opts.Fonts),
		cp1252:  doc.UnicodeTranslatorFromDescriptor(""),
	}
	s.pen = penState{stroke: canvas.RGB(0, 0, 0), fill: canvas.RGB(0, 0, 0), width: 1}
	s.apply(s.pen)
	return s, nil
}

func registerFaces(doc *fpdf.Fpdf, set fonts.Set) {
	for _, face := range set.Faces() {
		if face.Builtin() {
			continue
		}
		doc.AddUTF8FontFromBytes(face.Family, face.Style, face.Data)
	}
}

// PageSize returns the page dimensions in points.
func (s *Surface) PageSize() (float64, float64) { return s.w, s.h }

func (s *Surface) SetStrokeColor(c canvas.Color) {
	s.pen.stroke = c
	r, g, b := c.RGB255()
	s.doc.SetDrawColor(r, g, b)
}

// SetFillColor sets the fill color, which is also the text color.
func (s *Surface) SetFillColor(c canvas.Color) {
	s.pen.fill = c
	r, g, b := c.RGB255()
	s.doc.SetFillColor(r, g, b)
	s.doc.SetTextColor(r, g, b)
}

func (s *Surface) SetLineWidth(w float64) {
	s.pen.width = w
	s.doc.SetLineWidth(w)
}

func (s *Surface) SetDash(pattern ...float64) {
	s.pen.dash = append([]float64(nil), pattern...)
	s.doc.SetDashPattern(s.pen.dash, 0)
}

func (s *Surface) Line(x1, y1, x2, y2 float64) {
	s.setAlpha(s.pen.stroke.A)
	s.doc.Line(x1, s.h-y1, x2, s.h-y2)
}

func (s *Surface) Rect(x, y, w, h float64, mode canvas.PaintMode) {
	s.alphaFor(mode)
	s.doc.Rect(x, s.h-(y+h), w, h, style(mode))
}

func (s *Surface) RoundRect(x, y, w, h, r float64, mode canvas.PaintMode) {
	s.alphaFor(mode)
	s.doc.RoundedRect(x, s.h-(y+h), w, h, r, "1234", style(mode))
}

func (s *Surface) Circle(x, y, r float64, mode canvas.PaintMode) {
	s.alphaFor(mode)
	s.doc.Circle(x, s.h-y, r, style(mode))
}

func (s *Surface) DrawPath(p *canvas.Path, mode canvas.PaintMode) {
	if p == nil || len(p.Segments) == 0 {
		return
	}
	s.alphaFor(mode)
	for _, seg := range p.Segments {
		switch seg.Kind {
		case canvas.MoveTo:
			s.doc.MoveTo(seg.Pts[0].X, s.h-seg.Pts[0].Y)
		case canvas.LineTo:
			s.doc.LineTo(seg.Pts[0].X, s.h-seg.Pts[0].Y)
		case canvas.CurveTo:
			c1, c2, end := seg.Pts[0], seg.Pts[1], seg.Pts[2]
			s.doc.CurveBezierCubicTo(c1.X, s.h-c1.Y, c2.X, s.h-c2.Y, end.X, s.h-end.Y)
		case canvas.ClosePath:
			s.doc.ClosePath()
		}
	}
	s.doc.DrawPath(style(mode))
}

func (s *Surface) SetFont(f canvas.Font, size float64) {
	s.pen.font, s.pen.size = f, size
	s.doc.SetFont(f.Family, f.Style, size)
}

func (s *Surface) Text(x, y float64, str string) {
	s.setAlpha(s.pen.fill.A)
	s.doc.Text(x, s.h-y, s.encode(str))
}

func (s *Surface) TextCentered(x, y float64, str string) {
	w := s.StringWidth(str, s.pen.font, s.pen.size)
	s.Text(x-w/2, y, str)
}

// StringWidth measures with a separate document so measuring never writes
// font changes into the page.
func (s *Surface) StringWidth(str string, f canvas.Font, size float64) float64 {
	return s.measure.StringWidth(str, f, size)
}

func (s *Surface) SaveState() {
	saved := s.pen
	saved.alpha = s.alpha
	s.stack = append(s.stack, saved)
	s.doc.TransformBegin()
}

// RestoreState pops the transform and re-applies the saved pen, since fpdf
// does not track state across q/Q.
func (s *Surface) RestoreState() {
	if len(s.stack) == 0 {
		return
	}
	s.doc.TransformEnd()
	s.pen = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.alpha = s.pen.alpha
	s.apply(s.pen)
}

func (s *Surface) Translate(dx, dy float64) { s.doc.TransformTranslate(dx, -dy) }

func (s *Surface) Rotate(degrees float64) { s.doc.TransformRotate(degrees, 0, s.h) }

// WriteTo serializes the document.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	for len(s.stack) > 0 {
		s.RestoreState()
	}
	cw := &countingWriter{w: w}
	if err := s.doc.Output(cw); err != nil {
		return cw.n, errors.Wrap(errors.ErrCodeOutput, err, "write pdf")
	}
	return cw.n, nil
}

func (s *Surface) apply(p penState) {
	s.SetStrokeColor(p.stroke)
	s.SetFillColor(p.fill)
	s.SetLineWidth(p.width)
	s.SetDash(p.dash...)
	if p.font.Family != "" {
		s.SetFont(p.font, p.size)
	}
}

// alphaFor selects the opacity for a paint mode. fpdf has one alpha for
// both stroking and filling, so fill wins when both are painted.
func (s *Surface) alphaFor(mode canvas.PaintMode) {
	if mode == canvas.Stroke {
		s.setAlpha(s.pen.stroke.A)
		return
	}
	s.setAlpha(s.pen.fill.A)
}

func (s *Surface) setAlpha(a float64) {
	if a == s.alpha {
		return
	}
	s.alpha = a
	s.doc.SetAlpha(a, "Normal")
}

// encode converts text for core fonts, which use cp1252.
func (s *Surface) encode(str string) string {
	if s.measure.isUTF8(s.pen.font) {
		return str
	}
	return s.cp1252(str)
}

func style(mode canvas.PaintMode) string {
	switch mode {
	case canvas.Fill:
		return "F"
	case canvas.FillStroke:
		return "FD"
	default:
		return "D"
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
