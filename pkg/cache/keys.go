package cache

import "fmt"

// ArtifactKeyOpts holds everything besides the theme that changes a
// rendered file.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Seed        uint64  `json:"seed"`
	FontsCustom bool    `json:"fonts_custom"`
	FontHash    string  `json:"font_hash,omitempty"` // digest of the embedded font files
	ContentHash string  `json:"content_hash,omitempty"`
	Scale       float64 `json:"scale,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of a rendered sheet. themeHash identifies
	// the complete theme definition, not just its name, so editing a theme
	// file never serves a stale render.
	ArtifactKey(themeHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(themeHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), themeHash, opts)
}
