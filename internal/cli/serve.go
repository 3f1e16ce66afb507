package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/winesheet/pkg/cache"
	"github.com/matzehuels/winesheet/pkg/pipeline"
	"github.com/matzehuels/winesheet/pkg/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr        string
	redisURL    string
	redisPrefix string
	fontDir     string
	timeout     time.Duration
	noCache     bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:        ":8080",
		redisPrefix: appName + ":",
		fontDir:     pipeline.DefaultFontDir,
		timeout:     server.DefaultTimeout,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

  GET /healthz
  GET /themes
  GET /sheets/{theme}?format=pdf|svg|png&seed=N

Seeded sheets are cached in Redis when --redis is set, and in the local
cache directory otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "Redis URL for the shared cache (redis://host:port/db)")
	cmd.Flags().StringVar(&opts.redisPrefix, "redis-prefix", opts.redisPrefix, "key prefix in Redis")
	cmd.Flags().StringVar(&opts.fontDir, "font-dir", opts.fontDir, "directory holding the handwriting fonts")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "per-request timeout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	store, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, versionKeyer(), c.Logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Runner:  runner,
		Logger:  c.Logger,
		FontDir: opts.fontDir,
		Timeout: opts.timeout,
	})
	printSuccess("Render service listening")
	printKeyValue("Address", StyleLink.Render("http://"+displayAddr(opts.addr)))
	printKeyValue("Fonts", opts.fontDir)
	printKeyValue("Cache", cacheKind(store))

	err = srv.ListenAndServe(ctx, opts.addr)
	if err == context.Canceled {
		c.Logger.Info("shut down")
		return nil
	}
	return err
}

func (c *CLI) serveCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	if opts.noCache || opts.redisURL == "" {
		return c.newCache(opts.noCache), nil
	}
	rc, err := cache.NewRedisCache(ctx, opts.redisURL, opts.redisPrefix)
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func cacheKind(c cache.Cache) string {
	switch c := c.(type) {
	case *cache.RedisCache:
		return "redis"
	case *cache.FileCache:
		return c.Dir()
	}
	return "off"
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
