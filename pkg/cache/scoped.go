package cache

// ScopedKeyer wraps a Keyer with a prefix. The CLI and the render service
// scope keys by build version, so a new drawing engine never serves sheets
// cached by an old one.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), buildinfo.Version+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(themeHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(themeHash, opts)
}
