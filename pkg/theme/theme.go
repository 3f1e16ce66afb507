package theme

import (
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/winesheet/pkg/canvas"
	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/fonts"
	"github.com/matzehuels/winesheet/pkg/sketch"
)

// StrokeStyle selects how boxes and bubbles are drawn.
type StrokeStyle string

const (
	// Pencil draws jittered double strokes with overshooting corners.
	Pencil StrokeStyle = "pencil"
	// Ink draws ornate framed boxes and smooth translucent ovals.
	Ink StrokeStyle = "ink"
)

// BackgroundStyle selects what is painted before the layout.
type BackgroundStyle string

const (
	// Plain leaves the page white.
	Plain BackgroundStyle = "plain"
	// Aged paints parchment with stains and splatter before the layout.
	Aged BackgroundStyle = "aged"
)

// Palette holds every color a sheet uses.
type Palette struct {
	Text      canvas.Color `toml:"text"`       // labels, options, aroma items
	Title     canvas.Color `toml:"title"`      // vertical headers and box titles
	Box       canvas.Color `toml:"box"`        // aroma and notes frames
	Rule      canvas.Color `toml:"rule"`       // writing lines
	NotesRule canvas.Color `toml:"notes_rule"` // lines inside the notes box
	Bubble    canvas.Color `toml:"bubble"`

	// Aged background only.
	Paper      canvas.Color `toml:"paper"`
	StainDark  canvas.Color `toml:"stain_dark"`
	StainLight canvas.Color `toml:"stain_light"`
	Ring       canvas.Color `toml:"ring"`
	Splatter   canvas.Color `toml:"splatter"`
}

// FontSpec names the handwriting font a theme wants.
type FontSpec struct {
	File   string `toml:"file"`   // file name inside the font directory
	Family string `toml:"family"` // name the face is registered under
	URL    string `toml:"url"`    // where `winesheet fonts` downloads it from
}

// Sizes is the font size table of a sheet, in points.
type Sizes struct {
	VerticalHeader float64 `toml:"vertical_header"`
	Label          float64 `toml:"label"`
	Option         float64 `toml:"option"`
	FieldLabel     float64 `toml:"field_label"`
	SubLabel       float64 `toml:"sub_label"`
	BoxTitle       float64 `toml:"box_title"`
	NotesTitle     float64 `toml:"notes_title"`
	Section        float64 `toml:"section"`
	Item           float64 `toml:"item"`
	HueLabel       float64 `toml:"hue_label"`
	HueText        float64 `toml:"hue_text"`
	VerdictLabel   float64 `toml:"verdict_label"`
	VerdictOption  float64 `toml:"verdict_option"`
}

func (s Sizes) values() []float64 {
	return []float64{
		s.VerticalHeader, s.Label, s.Option, s.FieldLabel, s.SubLabel, s.BoxTitle,
		s.NotesTitle, s.Section, s.Item, s.HueLabel, s.HueText, s.VerdictLabel, s.VerdictOption,
	}
}

// Theme is the complete visual description of a tasting sheet. The layout
// is the same for every theme; only the look changes.
type Theme struct {
	Name        string `toml:"name"`
	Base        string `toml:"base"` // built-in theme this one extends
	Description string `toml:"description"`
	Output      string `toml:"output"` // default PDF file name

	Stroke     StrokeStyle           `toml:"stroke"`
	Background BackgroundStyle       `toml:"background"`
	Palette    Palette               `toml:"palette"`
	Texture    sketch.TextureOptions `toml:"texture"`

	Font FontSpec `toml:"font"`
	// Sizes applies when the handwriting font registered; FallbackSizes
	// when the sheet is set in Times.
	Sizes         Sizes `toml:"sizes"`
	FallbackSizes Sizes `toml:"fallback_sizes"`

	Separator   string    `toml:"separator"`    // between criteria options
	SubLabels   []string  `toml:"sub_labels"`   // three-level input rows
	AromaTitles []string  `toml:"aroma_titles"` // aroma box section headings
	RuleDash    []float64 `toml:"rule_dash"`    // empty for solid rules
	RuleWidth   float64   `toml:"rule_width"`

	BubbleHeight        float64 `toml:"bubble_height"`
	VerdictBubbleHeight float64 `toml:"verdict_bubble_height"`
	NotesInset          float64 `toml:"notes_inset"`
}

// Levels is the number of sub-labels and aroma sections a theme provides.
const Levels = 3

// Validate checks that the theme can be drawn.
func (t *Theme) Validate() error {
	if err := errors.ValidateThemeName(t.Name); err != nil {
		return err
	}
	switch t.Stroke {
	case Pencil, Ink:
	default:
		return errors.New(errors.ErrCodeInvalidTheme, "theme %s: unknown stroke style %q (want pencil or ink)", t.Name, t.Stroke)
	}
	switch t.Background {
	case Plain, Aged:
	default:
		return errors.New(errors.ErrCodeInvalidTheme, "theme %s: unknown background %q (want plain or aged)", t.Name, t.Background)
	}
	if len(t.SubLabels) != Levels || len(t.AromaTitles) != Levels {
		return errors.New(errors.ErrCodeInvalidTheme, "theme %s: sub_labels and aroma_titles need exactly %d entries", t.Name, Levels)
	}
	for _, sizes := range []Sizes{t.Sizes, t.FallbackSizes} {
		if slices.ContainsFunc(sizes.values(), func(v float64) bool { return v <= 0 }) {
			return errors.New(errors.ErrCodeInvalidTheme, "theme %s: font sizes must be positive", t.Name)
		}
	}
	if t.BubbleHeight <= 0 || t.VerdictBubbleHeight <= 0 || t.RuleWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidTheme, "theme %s: bubble heights and rule width must be positive", t.Name)
	}
	if t.Font.File != "" && filepath.Base(t.Font.File) != t.Font.File {
		return errors.New(errors.ErrCodeInvalidTheme, "theme %s: font file must be a bare file name, got %q", t.Name, t.Font.File)
	}
	if t.Font.File != "" && t.Font.Family == "" {
		return errors.New(errors.ErrCodeInvalidTheme, "theme %s: font family is required with a font file", t.Name)
	}
	return nil
}

// LoadFonts loads the theme's handwriting font from dir, falling back to
// Times when it is missing.
func (t *Theme) LoadFonts(dir string, logger *log.Logger) fonts.Set {
	if t.Font.File == "" {
		return fonts.Fallback()
	}
	return fonts.Load(filepath.Join(dir, t.Font.File), t.Font.Family, logger)
}

// SizesFor returns the size table matching the registered fonts.
func (t *Theme) SizesFor(set fonts.Set) Sizes {
	if set.Custom {
		return t.Sizes
	}
	return t.FallbackSizes
}

// Paper returns the aged background colors.
func (t *Theme) Paper() sketch.Paper {
	p := t.Palette
	return sketch.Paper{
		Base:       p.Paper,
		StainDark:  p.StainDark,
		StainLight: p.StainLight,
		Ring:       p.Ring,
		Splatter:   p.Splatter,
	}
}

// Clone returns a deep copy.
func (t *Theme) Clone() *Theme {
	c := *t
	c.SubLabels = slices.Clone(t.SubLabels)
	c.AromaTitles = slices.Clone(t.AromaTitles)
	c.RuleDash = slices.Clone(t.RuleDash)
	return &c
}
