package fonts

// Entry describes a downloadable font file.
type Entry struct {
	Name string // display name
	File string // local file name
	URL  string // download source
}

// Fonts used by the built-in themes, served from the Google Fonts repository.
var (
	PatrickHand = Entry{
		Name: "Patrick Hand",
		File: "PatrickHand.ttf",
		URL:  "https://github.com/google/fonts/raw/main/ofl/patrickhand/PatrickHand-Regular.ttf",
	}
	GreatVibes = Entry{
		Name: "Great Vibes",
		File: "GreatVibes-Regular.ttf",
		URL:  "https://github.com/google/fonts/raw/main/ofl/greatvibes/GreatVibes-Regular.ttf",
	}
)

// Catalog lists every font the built-in themes can use.
var Catalog = []Entry{PatrickHand, GreatVibes}
