package canvas

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/winesheet/pkg/errors"
)

// Color is an RGB color with opacity. Components are in [0, 1].
type Color struct {
	R, G, B float64
	A       float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b, A: 1} }

// RGBA returns a color with the given opacity.
func RGBA(r, g, b, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

// WithAlpha returns c with its opacity replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGB255 returns the color components scaled to 0-255.
func (c Color) RGB255() (r, g, b int) {
	return to255(c.R), to255(c.G), to255(c.B)
}

// Opaque reports whether the color has full opacity.
func (c Color) Opaque() bool { return c.A >= 1 }

// Hex formats the color as #rrggbb, or #rrggbbaa when translucent.
func (c Color) Hex() string {
	r, g, b := c.RGB255()
	if c.Opaque() {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, to255(c.A))
}

func (c Color) String() string { return c.Hex() }

// MarshalText implements encoding.TextMarshaler for theme files.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler for theme files.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid color %q (want #rrggbb or #rrggbbaa)", s)
	}
	var comps [4]float64
	comps[3] = 1
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
		}
		comps[i] = float64(v) / 255
	}
	return Color{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, nil
}

func to255(v float64) int {
	return int(math.Round(max(0, min(1, v)) * 255))
}
