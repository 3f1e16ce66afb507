package sheet

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/theme"
)

// RowKind selects how a section row is drawn.
type RowKind string

const (
	// Criteria is a label followed by options, each with a bubble to circle.
	Criteria RowKind = "criteria"
	// ThreeLevel is a label with one writing line per theme sub-label.
	ThreeLevel RowKind = "three-level"
	// Input is a label followed by a single writing line.
	Input RowKind = "input"
	// Hue is a label followed by reference lines of plain text.
	Hue RowKind = "hue"
)

// Row is one line group inside a section.
type Row struct {
	Kind  RowKind `toml:"kind"`
	Label string  `toml:"label"`
	// Options are the choices of a criteria row or the lines of a hue row.
	Options []string `toml:"options"`
	// Spacing is the offset of the first option from the label. Zero
	// means DefaultOptionSpacing.
	Spacing   float64 `toml:"spacing"`
	NoBubbles bool    `toml:"no_bubbles"`
}

// Section is a group of rows with a rotated title in the left margin.
type Section struct {
	Title string `toml:"title"`
	Rows  []Row  `toml:"rows"`
	// EndLift moves the bottom of the title span back up from the last
	// row, so the rotated title centers on the ink rather than the gap.
	EndLift float64 `toml:"end_lift"`
}

// Scale is a verdict question answered by circling one option.
type Scale struct {
	Label   string   `toml:"label"`
	Options []string `toml:"options"`
}

// Content is every piece of text printed on a sheet. Themes decide how it
// looks; Content decides what it says.
type Content struct {
	HeaderFields []string `toml:"header_fields"`
	DateLabel    string   `toml:"date_label"`
	VintageLabel string   `toml:"vintage_label"`

	AromaTitle string `toml:"aroma_title"`
	// AromaItems lists the descriptors under each aroma section. Section
	// titles come from the theme.
	AromaItems [][]string `toml:"aroma_items"`

	NotesTitle string `toml:"notes_title"`

	Visual  Section `toml:"visual"`
	Smell   Section `toml:"smell"`
	Taste   Section `toml:"taste"`
	Verdict Verdict `toml:"verdict"`
}

// Verdict is the closing block of scales below the taste section.
type Verdict struct {
	Title  string  `toml:"title"`
	Scales []Scale `toml:"scales"`
}

// OptionSeparator separates options in the compact string form accepted by
// [SplitOptions].
const OptionSeparator = "–"

// SplitOptions splits "Clear – Hazy" into its trimmed options.
func SplitOptions(s string) []string {
	parts := strings.Split(s, OptionSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func criteria(label, options string) Row {
	return Row{Kind: Criteria, Label: label, Options: SplitOptions(options)}
}

// DefaultContent returns the standard tasting sheet text.
func DefaultContent() *Content {
	c := &Content{
		HeaderFields: []string{"Wine Name:", "Producer:", "Region:", "Varietals:"},
		DateLabel:    "Date:",
		VintageLabel: "Vintage:",
		AromaTitle:   "AROMAS & FLAVORS",
		AromaItems: [][]string{
			{
				"Flowers: blossom, rose, violet, jasmine",
				"Orchard: apple, pear, quince, grape",
				"Citrus: lemon, lime, grapefruit, orange, zest",
				"Stone Fruit: peach, apricot, nectarine",
				"Tropical: banana, pineapple, mango, lychee, melon",
				"Berries: raspberry, strawberry, cranberry, currant",
				"Dark Fruit: blackberry, plum, blueberry, black cherry",
				"Vegetal: grass, bell pepper, asparagus, leaf",
				"Herbal: mint, eucalyptus, dill, fennel",
				"Spice: pepper, licorice, anise, cinnamon",
				"Ripeness: tart, ripe, jammy, baked, dried",
				"Minerality: stone, chalk, saline, flint",
			},
			{
				"Yeast: dough, biscuit, bread, toast, pastry",
				"Dairy/MLF: butter, cream, yogurt, cheese",
				"Wood: vanilla, coconut, cedar, smoke, clove, coffee",
			},
			{
				"Earth: mushroom, forest floor, leather, game",
				"Bottle Age: honey, nut, ginger, petrol, marmalade",
				"Oxidation: almond, walnut, caramel, toffee, cocoa",
			},
		},
		NotesTitle: "NOTES",
		Visual: Section{
			Title: "Visual",
			Rows: []Row{
				criteria("Clarity", "Clear – Hazy"),
				criteria("Depth", "Pale – Medium – Dark"),
				{Kind: Hue, Label: "Hue", Options: []string{
					"White: Straw – Yellow – Gold – Amber",
					"Rosé: Pink – Salmon – Copper",
					"Red: Purple – Ruby – Garnet – Brick",
				}},
			},
			EndLift: 18,
		},
		Smell: Section{
			Title: "Smell",
			Rows: []Row{
				criteria("Condition", "Clean – Faulty?"),
				criteria("Strength", "Light – Moderate – Powerful"),
				{Kind: ThreeLevel, Label: "Aromas"},
				criteria("Aging", "Young – Developing – Peak – Past Peak"),
			},
			EndLift: 20,
		},
		Taste: Section{
			Title: "Taste",
			Rows: []Row{
				{Kind: Criteria, Label: "Sweetness", Options: SplitOptions("Bone Dry – Dry – Semi-Dry – Semi-Sweet – Sweet"), Spacing: 60},
				criteria("Tartness", "Low – Moderate – Crisp – High"),
				criteria("Tannins", "Low – Moderate – Chewy – High"),
				criteria("Alcohol", "Low – Moderate – High"),
				criteria("Body", "Light – Medium – Full"),
				criteria("Bubbles", "Still – Gentle – Aggressive"),
				criteria("Intensity", "Subtle – Moderate – Intense"),
				{Kind: ThreeLevel, Label: "Flavors"},
				criteria("Finish", "Short – Moderate – Long – Persistent"),
			},
			EndLift: 20,
		},
		Verdict: Verdict{
			Title: "Verdict",
			Scales: []Scale{
				{Label: "Rating", Options: []string{"Flawed", "Below Avg", "Average", "Good", "Excellent", "Exceptional"}},
				{Label: "Status", Options: []string{"Needs Time", "Ready to Drink", "At Peak", "Declining"}},
			},
		},
	}
	return c
}

// Validate checks that the content fits the fixed layout.
func (c *Content) Validate() error {
	if len(c.AromaItems) != theme.Levels {
		return errors.New(errors.ErrCodeInvalidInput, "content needs exactly %d aroma sections, got %d", theme.Levels, len(c.AromaItems))
	}
	for _, sec := range []Section{c.Visual, c.Smell, c.Taste} {
		if len(sec.Rows) == 0 {
			return errors.New(errors.ErrCodeInvalidInput, "section %q has no rows", sec.Title)
		}
		for _, row := range sec.Rows {
			switch row.Kind {
			case Criteria, Hue:
				if len(row.Options) == 0 {
					return errors.New(errors.ErrCodeInvalidInput, "row %q in %q needs options", row.Label, sec.Title)
				}
			case ThreeLevel, Input:
			default:
				return errors.New(errors.ErrCodeInvalidInput, "row %q in %q: unknown kind %q", row.Label, sec.Title, row.Kind)
			}
		}
	}
	if len(c.Verdict.Scales) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "verdict needs at least one scale")
	}
	return nil
}

// LoadContent reads sheet text from a TOML file. Keys the file leaves out
// keep their default text.
func LoadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeNotFound, "content file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read content %s", path)
	}
	c := DefaultContent()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse content %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "content %s: unknown key %s", path, undecoded[0])
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
