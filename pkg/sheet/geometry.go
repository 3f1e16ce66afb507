package sheet

// Layout constants in points. They are shared by every theme.
const (
	MarginLeft       = 15.0
	HeaderColumn     = 25.0 // width of the rotated section titles
	RightMargin      = 15.0
	RightColumnRatio = 0.58 // right column starts at this fraction of the width
	NotesWidthRatio  = 0.75 // notes box width as a fraction of the right column

	DefaultOptionSpacing = 80.0
	SectionSpacing       = 15.0

	headerTopOffset = 40.0
	headerRowHeight = 24.0
	aromaTopOffset  = 45.0
	aromaLift       = 15.0

	bubbleWidth = 30.0
	bubbleDrop  = 12.0
)

// Geometry holds the column positions derived from the page size.
type Geometry struct {
	Width, Height float64

	ContentX      float64 // left edge of labels
	RightColX     float64
	RightColW     float64
	NotesX        float64
	NotesW        float64
	CriteriaRight float64 // writing lines stop here, clear of the notes box
	HeaderW       float64 // width of the header rows left of the aroma box
}

// NewGeometry computes the layout columns for a page.
func NewGeometry(width, height float64) Geometry {
	g := Geometry{Width: width, Height: height}
	g.ContentX = MarginLeft + HeaderColumn + 10
	g.RightColX = width * RightColumnRatio
	g.RightColW = width - g.RightColX - RightMargin
	g.NotesW = g.RightColW * NotesWidthRatio
	g.NotesX = width - g.NotesW - RightMargin
	g.CriteriaRight = g.NotesX - 15
	g.HeaderW = g.RightColX - MarginLeft - 20
	return g
}

// Box is a rectangle with its bottom-left corner at (X, Y).
type Box struct {
	X, Y, W, H float64
}

// Top returns the y coordinate of the upper edge.
func (b Box) Top() float64 { return b.Y + b.H }

// Span is the vertical extent of a titled section.
type Span struct {
	Title       string
	Top, Bottom float64
}

// Center returns the y coordinate the rotated title is centered on.
func (s Span) Center() float64 { return (s.Top + s.Bottom) / 2 }

// Layout reports where the parts of a drawn sheet ended up. It depends
// only on the page, theme and fonts, never on the random source.
type Layout struct {
	Geometry Geometry
	Aroma    Box
	Notes    Box
	Sections []Span
	// End is the y coordinate below the last verdict row.
	End float64
}
