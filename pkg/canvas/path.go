package canvas

// Point is a position in page coordinates.
type Point struct{ X, Y float64 }

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point { return Point{p.X + dx, p.Y + dy} }

// SegmentKind identifies a path segment.
type SegmentKind int

const (
	MoveTo SegmentKind = iota
	LineTo
	CurveTo
	ClosePath
)

// Segment is one path command. CurveTo carries two control points followed
// by the end point; MoveTo and LineTo carry one point; ClosePath none.
type Segment struct {
	Kind SegmentKind
	Pts  []Point
}

// Path is a sequence of line and cubic Bézier segments.
type Path struct {
	Segments []Segment
}

// NewPath returns an empty path.
func NewPath() *Path { return &Path{} }

func (p *Path) MoveTo(x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Kind: MoveTo, Pts: []Point{{x, y}}})
	return p
}

func (p *Path) LineTo(x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Kind: LineTo, Pts: []Point{{x, y}}})
	return p
}

// CurveTo appends a cubic Bézier with control points (x1, y1), (x2, y2)
// ending at (x3, y3).
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) *Path {
	p.Segments = append(p.Segments, Segment{Kind: CurveTo, Pts: []Point{{x1, y1}, {x2, y2}, {x3, y3}}})
	return p
}

func (p *Path) Close() *Path {
	p.Segments = append(p.Segments, Segment{Kind: ClosePath})
	return p
}

// Points returns every point referenced by the path in order.
func (p *Path) Points() []Point {
	var pts []Point
	for _, s := range p.Segments {
		pts = append(pts, s.Pts...)
	}
	return pts
}

// Count returns the number of segments of the given kind.
func (p *Path) Count(kind SegmentKind) int {
	n := 0
	for _, s := range p.Segments {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
