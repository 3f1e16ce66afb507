package canvas

// PaintMode selects whether a shape is outlined, filled, or both.
type PaintMode int

const (
	Stroke PaintMode = iota
	Fill
	FillStroke
)

func (m PaintMode) String() string {
	switch m {
	case Fill:
		return "fill"
	case FillStroke:
		return "fill+stroke"
	default:
		return "stroke"
	}
}

// Font names a registered font face. Style follows the fpdf convention:
// "" for regular, "B", "I" or "BI".
type Font struct {
	Family string
	Style  string
}

// Surface is a single page canvas. See the package documentation for the
// coordinate system and pen state rules.
type Surface interface {
	// PageSize returns the page dimensions in points.
	PageSize() (width, height float64)

	SetStrokeColor(c Color)
	SetFillColor(c Color)
	SetLineWidth(w float64)
	// SetDash sets the dash pattern. No arguments means a solid line.
	SetDash(pattern ...float64)

	Line(x1, y1, x2, y2 float64)
	// Rect draws a rectangle whose bottom-left corner is at (x, y).
	Rect(x, y, w, h float64, mode PaintMode)
	RoundRect(x, y, w, h, r float64, mode PaintMode)
	Circle(x, y, r float64, mode PaintMode)
	DrawPath(p *Path, mode PaintMode)

	SetFont(f Font, size float64)
	// Text draws s with its baseline starting at (x, y) using the fill color.
	Text(x, y float64, s string)
	// TextCentered draws s horizontally centered on x.
	TextCentered(x, y float64, s string)
	Measurer

	// SaveState pushes the graphics state; RestoreState pops it.
	// Translate and Rotate affect everything drawn until the matching
	// RestoreState.
	SaveState()
	RestoreState()
	Translate(dx, dy float64)
	// Rotate rotates the coordinate system counterclockwise by degrees.
	Rotate(degrees float64)
}

// Measurer reports the advance width of text in points.
type Measurer interface {
	StringWidth(s string, f Font, size float64) float64
}
