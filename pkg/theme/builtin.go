package theme

import (
	"slices"

	"github.com/matzehuels/winesheet/pkg/canvas"
	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/fonts"
	"github.com/matzehuels/winesheet/pkg/sketch"
)

// Built-in theme names.
const (
	Handwritten = "handwritten"
	Vintage     = "vintage"
)

var (
	pencilGrey = canvas.RGB(0.2, 0.2, 0.2)
	wineRed    = canvas.RGB(0.55, 0.15, 0.2)
	lightGrey  = canvas.RGB(0.7, 0.7, 0.7)

	sepiaInk = canvas.RGB(0.25, 0.15, 0.10)
)

var handwrittenSizes = Sizes{
	VerticalHeader: 12, Label: 9, Option: 8.5, FieldLabel: 9, SubLabel: 8.5,
	BoxTitle: 11, NotesTitle: 10, Section: 7.5, Item: 6.5,
	HueLabel: 9, HueText: 8.5, VerdictLabel: 9, VerdictOption: 8.5,
}

var builtins = map[string]*Theme{
	Handwritten: {
		Name:        Handwritten,
		Description: "Modern minimalist pencil sketch on white paper",
		Output:      "Generic_Handwritten_Tasting_Card.pdf",
		Stroke:      Pencil,
		Background:  Plain,
		Palette: Palette{
			Text:      pencilGrey,
			Title:     wineRed,
			Box:       wineRed,
			Rule:      lightGrey,
			NotesRule: lightGrey,
			Bubble:    lightGrey,
			Paper:     canvas.RGB(1, 1, 1),
		},
		Texture:             sketch.DefaultTexture(),
		Font:                FontSpec{File: fonts.PatrickHand.File, Family: "Handwritten", URL: fonts.PatrickHand.URL},
		Sizes:               handwrittenSizes,
		FallbackSizes:       handwrittenSizes,
		Separator:           "-",
		SubLabels:           []string{"Grapes", "Winemaking", "Maturation"},
		AromaTitles:         []string{"Grapes (Fruit/Floral)", "Winemaking (Process)", "Maturation (Aging)"},
		RuleDash:            []float64{1, 4},
		RuleWidth:           0.5,
		BubbleHeight:        10,
		VerdictBubbleHeight: 9,
		NotesInset:          3,
	},
	Vintage: {
		Name:        Vintage,
		Description: "Sepia ink on aged parchment with ornate frames",
		Output:      "Vintage_Tasting_Card.pdf",
		Stroke:      Ink,
		Background:  Aged,
		Palette: Palette{
			Text:       sepiaInk,
			Title:      sepiaInk,
			Box:        sepiaInk,
			Rule:       sepiaInk.WithAlpha(0.5),
			NotesRule:  sepiaInk.WithAlpha(0.3),
			Bubble:     sepiaInk,
			Paper:      canvas.RGB(0.96, 0.93, 0.85),
			StainDark:  canvas.RGBA(0.85, 0.80, 0.70, 0.3),
			StainLight: canvas.RGBA(1, 1, 0.95, 0.4),
			Ring:       canvas.RGBA(0.6, 0.2, 0.2, 0.15),
			Splatter:   sepiaInk.WithAlpha(0.6),
		},
		Texture: sketch.DefaultTexture(),
		Font:    FontSpec{File: fonts.GreatVibes.File, Family: "InkFont", URL: fonts.GreatVibes.URL},
		Sizes: Sizes{
			VerticalHeader: 16, Label: 12, Option: 11, FieldLabel: 12, SubLabel: 11,
			BoxTitle: 14, NotesTitle: 12, Section: 9, Item: 8,
			HueLabel: 12, HueText: 11, VerdictLabel: 12, VerdictOption: 11,
		},
		FallbackSizes: Sizes{
			VerticalHeader: 14, Label: 10, Option: 9, FieldLabel: 10, SubLabel: 9,
			BoxTitle: 12, NotesTitle: 10, Section: 7.5, Item: 6.5,
			HueLabel: 9, HueText: 8.5, VerdictLabel: 9, VerdictOption: 8.5,
		},
		Separator:           "~",
		SubLabels:           []string{"Grapes", "Process", "Maturing"},
		AromaTitles:         []string{"FRUIT & FLORAL (Base)", "WINEMAKING (Process)", "MATURATION (Age)"},
		RuleWidth:           0.5,
		BubbleHeight:        11,
		VerdictBubbleHeight: 11,
		NotesInset:          5,
	},
}

// Names returns the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Builtin returns a copy of the named built-in theme.
func Builtin(name string) (*Theme, error) {
	t, ok := builtins[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q (available: %v)", name, Names())
	}
	return t.Clone(), nil
}

// All returns copies of every built-in theme, sorted by name.
func All() []*Theme {
	out := make([]*Theme, 0, len(builtins))
	for _, name := range Names() {
		out = append(out, builtins[name].Clone())
	}
	return out
}
