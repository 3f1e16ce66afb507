package pdf

import (
	"strings"
	"sync"

	"github.com/go-pdf/fpdf"

	"github.com/matzehuels/winesheet/pkg/canvas"
	"github.com/matzehuels/winesheet/pkg/fonts"
)

// Measurer reports text widths using fpdf font metrics. It lets non-PDF
// backends lay text out exactly as the PDF backend does.
type Measurer struct {
	mu     sync.Mutex
	doc    *fpdf.Fpdf
	utf8   map[string]bool
	cp1252 func(string) string
}

var _ canvas.Measurer = (*Measurer)(nil)

// NewMeasurer returns a measurer that knows the faces in set plus the
// built-in PDF fonts.
func NewMeasurer(set fonts.Set) *Measurer {
	doc := fpdf.New("P", "pt", DefaultPageSize, "")
	registerFaces(doc, set)
	m := &Measurer{
		doc:    doc,
		utf8:   make(map[string]bool),
		cp1252: doc.UnicodeTranslatorFromDescriptor(""),
	}
	for _, face := range set.Faces() {
		if !face.Builtin() {
			m.utf8[strings.ToLower(face.Family)] = true
		}
	}
	return m
}

// StringWidth returns the advance width of s in points. Unknown fonts
// measure as zero.
func (m *Measurer) StringWidth(s string, f canvas.Font, size float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.doc.Err() {
		return 0
	}
	m.doc.SetFont(f.Family, f.Style, size)
	if m.doc.Err() {
		m.doc.ClearError()
		return 0
	}
	if !m.isUTF8(f) {
		s = m.cp1252(s)
	}
	return m.doc.GetStringWidth(s)
}

func (m *Measurer) isUTF8(f canvas.Font) bool { return m.utf8[strings.ToLower(f.Family)] }
