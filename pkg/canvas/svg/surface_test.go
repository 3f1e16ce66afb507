package svg

import (
	"encoding/xml"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/winesheet/pkg/canvas"
	"github.com/matzehuels/winesheet/pkg/fonts"
)

func TestNew_Header(t *testing.T) {
	s := New(Options{Title: "Tasting sheet"})
	out := string(s.Bytes())
	for _, want := range []string{`viewBox="0 0 595.276 841.89"`, `width="595.276pt"`, "<title>Tasting sheet</title>", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSurface_FlipsY(t *testing.T) {
	s := New(Options{})
	s.Line(0, 0, 10, 10)
	s.Rect(10, 20, 30, 40, canvas.Stroke)
	out := string(s.Bytes())

	for _, want := range []string{"M0 841.89L10 831.89", "M10 781.89h30v40h-30Z"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing path %q", want)
		}
	}
}

func TestSurface_Style(t *testing.T) {
	s := New(Options{})
	s.SetStrokeColor(canvas.RGBA(0.7, 0.7, 0.7, 0.5))
	s.SetLineWidth(0.5)
	s.SetDash(1, 4)
	s.Line(0, 0, 1, 1)
	s.SetFillColor(canvas.RGB(1, 0, 0))
	s.Circle(50, 50, 5, canvas.Fill)
	out := string(s.Bytes())

	for _, want := range []string{
		"fill:none;stroke:#b3b3b3;stroke-width:0.5;stroke-opacity:0.5;stroke-dasharray:1,4",
		"fill:#ff0000;stroke:none",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing style %q", want)
		}
	}
}

func TestSurface_GroupsBalanced(t *testing.T) {
	s := New(Options{})
	s.SaveState()
	s.Translate(25, 400)
	s.Rotate(90)
	s.SetFont(canvas.Font{Family: "Times", Style: "BI"}, 12)
	s.TextCentered(0, -3, "SIGHT")
	s.RestoreState()
	s.SaveState()
	s.Translate(1, 1)
	out := string(s.Bytes())

	if open, closed := strings.Count(out, "<g "), strings.Count(out, "</g>"); open != closed {
		t.Errorf("unbalanced groups: %d open, %d closed", open, closed)
	}
	if !strings.Contains(out, `transform="rotate(-90 0 841.89)"`) {
		t.Error("rotation should be conjugated by the y flip")
	}
	if !strings.Contains(out, `transform="translate(25,-400)"`) {
		t.Error("translation should negate dy")
	}
	if err := xml.Unmarshal([]byte(out), new(struct{})); err != nil {
		t.Errorf("output is not well-formed XML: %v", err)
	}
}

func TestSurface_TextEscaped(t *testing.T) {
	s := New(Options{})
	s.SetFont(canvas.Font{Family: "Times", Style: "I"}, 9)
	s.Text(50, 700, "Fruit & Floral <Base>")
	out := string(s.Bytes())
	if !strings.Contains(out, "Fruit &amp; Floral &lt;Base&gt;") {
		t.Error("text content should be XML escaped")
	}
	if !strings.Contains(out, "font-style:italic") {
		t.Error("italic style missing")
	}
}

func TestSurface_EmbedsCustomFont(t *testing.T) {
	s := New(Options{Fonts: fonts.Custom("InkFont", goregular.TTF)})
	out := string(s.Bytes())
	if !strings.Contains(out, `@font-face { font-family: "InkFont"; src: url(data:font/ttf;base64,`) {
		t.Error("custom font should be embedded as @font-face")
	}

	plain := string(New(Options{Fonts: fonts.Fallback()}).Bytes())
	if strings.Contains(plain, "@font-face") {
		t.Error("built-in fonts should not be embedded")
	}
}

type fixedMeasurer float64

func (m fixedMeasurer) StringWidth(string, canvas.Font, float64) float64 { return float64(m) }

func TestSurface_TextCenteredUsesMeasurer(t *testing.T) {
	s := New(Options{Measurer: fixedMeasurer(40)})
	s.TextCentered(100, 0, "x")
	if out := string(s.Bytes()); !strings.Contains(out, "translate(80,841.89)") {
		t.Error("centered text should start half the measured width left of x")
	}
}
