// Package pipeline turns a theme name into rendered tasting sheets.
//
// The CLI and the render service both go through a [Runner], so theme
// resolution, font fallback, seeding and caching behave the same
// everywhere.
//
// # Stages
//
//  1. Resolve: pick a built-in theme or load a TOML theme file
//  2. Fonts: register the theme's handwriting font or fall back to Times
//  3. Render: draw the sheet once per requested format (PDF, SVG, PNG)
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Theme:   "vintage",
//	    Formats: []string{"pdf"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf := result.Artifacts["pdf"]
//
// Renders without a seed draw a fresh texture every time. The seed that
// was used is reported in [Result.Seed] so a sheet can be reproduced.
package pipeline

import (
	"io"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/winesheet/pkg/cache"
	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/fonts"
	"github.com/matzehuels/winesheet/pkg/render"
	"github.com/matzehuels/winesheet/pkg/sheet"
	"github.com/matzehuels/winesheet/pkg/theme"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultTheme is rendered when neither a theme name nor a file is given.
	DefaultTheme = theme.Handwritten

	// DefaultFormat is the output format when none is requested.
	DefaultFormat = string(render.PDF)

	// DefaultFontDir is where font files are looked up: the working
	// directory, next to the rendered sheets.
	DefaultFontDir = "."

	// DefaultScale is the PNG rasterization factor.
	DefaultScale = 2.0
)

// =============================================================================
// Options
// =============================================================================

// Options configures one pipeline run.
// This struct supports JSON serialization for service requests.
type Options struct {
	Theme   string   `json:"theme,omitempty"`
	Formats []string `json:"formats,omitempty"`
	// Seed fixes the random texture. Nil picks a random seed and disables
	// caching.
	Seed  *uint64 `json:"seed,omitempty"`
	Scale float64 `json:"scale,omitempty"`

	// Refresh re-renders even when a cached artifact exists.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	ThemeFile   string         `json:"-"`
	FontDir     string         `json:"-"`
	ContentFile string         `json:"-"`
	Content     *sheet.Content `json:"-"`
	Logger      *log.Logger    `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Seed returns a pointer to s, for [Options.Seed] literals.
func Seed(s uint64) *uint64 { return &s }

// ValidateAndSetDefaults checks the options and fills in defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Theme != "" && o.ThemeFile != "" {
		return errors.New(errors.ErrCodeInvalidInput, "theme and theme file are mutually exclusive")
	}
	if o.Theme == "" && o.ThemeFile == "" {
		o.Theme = DefaultTheme
	}
	if o.Content != nil && o.ContentFile != "" {
		return errors.New(errors.ErrCodeInvalidInput, "content and content file are mutually exclusive")
	}

	formats, err := normalizeFormats(o.Formats)
	if err != nil {
		return err
	}
	o.Formats = formats

	switch {
	case o.Scale < 0:
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	case o.Scale == 0:
		o.Scale = DefaultScale
	}
	if o.FontDir == "" {
		o.FontDir = DefaultFontDir
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// normalizeFormats lowercases, validates and dedupes format names while
// keeping their order. An empty list yields the default format.
func normalizeFormats(in []string) ([]string, error) {
	if len(in) == 0 {
		return []string{DefaultFormat}, nil
	}
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		f, err := render.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		if !seen[string(f)] {
			seen[string(f)] = true
			out = append(out, string(f))
		}
	}
	return out, nil
}

// pickSeed returns the seed to draw with and whether it was fixed by the
// caller.
func (o *Options) pickSeed() (uint64, bool) {
	if o.Seed != nil {
		return *o.Seed, true
	}
	return rand.Uint64(), false
}

// ArtifactKeyOpts returns cache key options for one format. Custom fonts
// are keyed by their bytes, so replacing a font file under the same name
// draws the sheet again.
func (o *Options) ArtifactKeyOpts(format string, seed uint64, set fonts.Set, contentHash string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:      format,
		Seed:        seed,
		FontsCustom: set.Custom,
		FontHash:    fontHash(set),
		ContentHash: contentHash,
	}
	if format == string(render.PNG) {
		opts.Scale = o.Scale
	}
	return opts
}

func fontHash(set fonts.Set) string {
	if !set.Custom {
		return ""
	}
	var data []byte
	for _, f := range set.Faces() {
		data = append(data, f.Data...)
	}
	return cache.Hash(data)
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies this run in logs and service responses.
	ID string

	// Theme is the resolved theme, including any file overrides.
	Theme *theme.Theme

	// Seed drew the texture. Seeded reports whether the caller chose it.
	Seed   uint64
	Seeded bool

	// FontsCustom is false when the sheet fell back to Times.
	FontsCustom bool

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Filename returns the file name an artifact is saved under: the theme's
// output name with the extension of the format.
func (r *Result) Filename(format string) string {
	base := r.Theme.Output
	if base == "" {
		base = r.Theme.Name
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + format
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FontTime   time.Duration
	RenderTime time.Duration
	Bytes      int
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	Hits      []string // formats served from the cache
	RenderHit bool     // whether every artifact came from the cache
}
