// Package fonts resolves the typefaces a tasting sheet is set in.
//
// A theme names a TrueType file for its handwriting font. [Load] reads and
// validates that file; when it is missing or unreadable the sheet falls back
// to the built-in Times italic pair and rendering continues. [Download]
// fetches the files listed in the [Catalog].
package fonts

import (
	"encoding/binary"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font/sfnt"

	"github.com/matzehuels/winesheet/pkg/canvas"
	"github.com/matzehuels/winesheet/pkg/errors"
)

// Built-in fallback faces. Every PDF viewer ships these.
const (
	FallbackFamily      = "Times"
	FallbackHeaderStyle = "BI"
	FallbackBodyStyle   = "I"
)

// Face is a font family and style, with TrueType data for custom fonts.
type Face struct {
	Family string
	Style  string
	Data   []byte // nil for built-in faces
}

// Font returns the surface-level name of the face.
func (f Face) Font() canvas.Font { return canvas.Font{Family: f.Family, Style: f.Style} }

// Builtin reports whether the face is one of the standard PDF fonts.
func (f Face) Builtin() bool { return f.Data == nil }

// Set is the header and body face pair a sheet is drawn with.
type Set struct {
	Header Face
	Body   Face
	// Custom is true when a handwriting font file was registered.
	Custom bool
}

// Faces returns the distinct faces of the set.
func (s Set) Faces() []Face {
	if s.Header.Family == s.Body.Family && s.Header.Style == s.Body.Style {
		return []Face{s.Header}
	}
	return []Face{s.Header, s.Body}
}

// Fallback returns the built-in Times Bold Italic / Times Italic pair.
func Fallback() Set {
	return Set{
		Header: Face{Family: FallbackFamily, Style: FallbackHeaderStyle},
		Body:   Face{Family: FallbackFamily, Style: FallbackBodyStyle},
	}
}

// Custom returns a set using one TrueType font for both header and body.
func Custom(family string, data []byte) Set {
	face := Face{Family: family, Data: data}
	return Set{Header: face, Body: face, Custom: true}
}

// Load registers the TrueType font at path under family. If path is empty,
// missing or not a valid font, Load logs a notice and returns [Fallback].
// It never fails.
func Load(path, family string, logger *log.Logger) Set {
	if logger == nil {
		logger = log.Default()
	}
	data, err := Read(path)
	if err != nil {
		logger.Warn("custom font not available, using Times italic fallback", "path", path, "err", errors.UserMessage(err))
		return Fallback()
	}
	logger.Debug("registered custom font", "family", family, "path", path, "bytes", len(data))
	return Custom(family, data)
}

// Read loads and validates a font file. Only TrueType outlines can be
// embedded, so OpenType files with CFF outlines are rejected here.
func Read(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeFontNotFound, "no font file configured")
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFontNotFound, "font file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "read font %s", path)
	}
	if _, err := sfnt.Parse(data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "invalid font file %s", path)
	}
	if !hasTable(data, "glyf") {
		return nil, errors.New(errors.ErrCodeUnsupported, "font %s has no TrueType outlines", path)
	}
	return data, nil
}

// hasTable reports whether the sfnt table directory of data lists tag.
func hasTable(data []byte, tag string) bool {
	if len(data) < 12 {
		return false
	}
	n := int(binary.BigEndian.Uint16(data[4:6]))
	for i := range n {
		rec := 12 + 16*i
		if rec+16 > len(data) {
			return false
		}
		if string(data[rec:rec+4]) == tag {
			return true
		}
	}
	return false
}
