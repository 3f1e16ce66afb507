package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/winesheet/pkg/cache"
	"github.com/matzehuels/winesheet/pkg/observability"
	"github.com/matzehuels/winesheet/pkg/render"
	"github.com/matzehuels/winesheet/pkg/sheet"
	"github.com/matzehuels/winesheet/pkg/theme"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner holds no per-run state. Multiple goroutines can safely use
// the same Runner with different options; every render owns its surface
// and its random source.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute resolves the theme, loads its fonts and renders every requested
// format.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	t, err := ResolveTheme(opts)
	if err != nil {
		return nil, err
	}
	content, err := resolveContent(opts)
	if err != nil {
		return nil, err
	}

	fontStart := time.Now()
	set := t.LoadFonts(opts.FontDir, opts.Logger)
	observability.Pipeline().OnFontsLoaded(ctx, t.Name, set.Custom)

	seed, seeded := opts.pickSeed()
	result := &Result{
		ID:          uuid.NewString(),
		Theme:       t,
		Seed:        seed,
		Seeded:      seeded,
		FontsCustom: set.Custom,
		Artifacts:   make(map[string][]byte, len(opts.Formats)),
	}
	result.Stats.FontTime = time.Since(fontStart)

	req := render.Request{Theme: t, Fonts: set, Seed: seed, Content: content, Scale: opts.Scale}
	keys, err := r.artifactKeys(opts, req)
	if err != nil {
		return nil, err
	}

	renderStart := time.Now()
	for _, format := range opts.Formats {
		data, hit, err := r.renderFormat(ctx, render.Format(format), req, keys[format], opts.Refresh)
		if err != nil {
			return nil, fmt.Errorf("render %s %s: %w", t.Name, format, err)
		}
		result.Artifacts[format] = data
		result.Stats.Bytes += len(data)
		if hit {
			result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = len(result.CacheInfo.Hits) == len(opts.Formats)

	r.Logger.Info("rendered sheet",
		"id", result.ID,
		"theme", t.Name,
		"seed", seed,
		"formats", opts.Formats,
		"custom_font", set.Custom,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ResolveTheme returns the theme named by the options: a built-in by name
// or a TOML theme file.
func ResolveTheme(opts Options) (*theme.Theme, error) {
	if opts.ThemeFile != "" {
		return theme.Load(opts.ThemeFile)
	}
	name := opts.Theme
	if name == "" {
		name = DefaultTheme
	}
	return theme.Builtin(name)
}

func resolveContent(opts Options) (*sheet.Content, error) {
	if opts.ContentFile != "" {
		return sheet.LoadContent(opts.ContentFile)
	}
	if opts.Content != nil {
		if err := opts.Content.Validate(); err != nil {
			return nil, err
		}
	}
	return opts.Content, nil
}

// artifactKeys returns one cache key per format. Unseeded renders get no
// keys: their output is never drawn again.
func (r *Runner) artifactKeys(opts Options, req render.Request) (map[string]string, error) {
	if opts.Seed == nil {
		return nil, nil
	}
	themeHash, err := cache.HashValue(req.Theme)
	if err != nil {
		return nil, fmt.Errorf("hash theme: %w", err)
	}
	var contentHash string
	if req.Content != nil {
		if contentHash, err = cache.HashValue(req.Content); err != nil {
			return nil, fmt.Errorf("hash content: %w", err)
		}
	}
	keys := make(map[string]string, len(opts.Formats))
	for _, format := range opts.Formats {
		keys[format] = r.Keyer.ArtifactKey(themeHash, opts.ArtifactKeyOpts(format, req.Seed, req.Fonts, contentHash))
	}
	return keys, nil
}

// renderFormat renders one format, going through the cache when key is
// set. Cache failures are logged and never fail the render.
func (r *Runner) renderFormat(ctx context.Context, format render.Format, req render.Request, key string, refresh bool) ([]byte, bool, error) {
	hooks := observability.Cache()
	if key != "" && !refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("cache read failed", "format", format, "err", err)
		case hit:
			hooks.OnCacheHit(ctx, "artifact")
			return data, true, nil
		default:
			hooks.OnCacheMiss(ctx, "artifact")
		}
	}

	data, err := r.Render(ctx, format, req)
	if err != nil {
		return nil, false, err
	}

	if key != "" {
		if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
		} else {
			hooks.OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return data, false, nil
}

// Render draws a single format without touching the cache.
func (r *Runner) Render(ctx context.Context, format render.Format, req render.Request) ([]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, req.Theme.Name, string(format))
	start := time.Now()
	data, err := render.Sheet(ctx, format, req)
	hooks.OnRenderComplete(ctx, req.Theme.Name, string(format), len(data), time.Since(start), err)
	return data, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
