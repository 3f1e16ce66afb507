package cli

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/fonts"
	"github.com/matzehuels/winesheet/pkg/pipeline"
)

// fontsCommand creates the fonts download command.
func (c *CLI) fontsCommand() *cobra.Command {
	var (
		dir     string
		only    []string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "Download the handwriting fonts",
		Long: `Download the handwriting fonts the built-in themes are set in.

Files that already exist are left alone. A font that fails to download is
reported and the others are still fetched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := selectFonts(only)
			if err != nil {
				return err
			}
			client := &http.Client{Timeout: timeout}
			return c.runFonts(cmd.Context(), client, entries, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", pipeline.DefaultFontDir, "directory to save fonts in")
	cmd.Flags().StringSliceVar(&only, "font", nil, "font file(s) to fetch (default: all)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-request timeout")

	return cmd
}

// selectFonts returns the catalog entries named by files, or the whole
// catalog when files is empty.
func selectFonts(files []string) ([]fonts.Entry, error) {
	if len(files) == 0 {
		return fonts.Catalog, nil
	}
	var out []fonts.Entry
	for _, f := range files {
		found := false
		for _, e := range fonts.Catalog {
			if strings.EqualFold(e.File, f) || strings.EqualFold(e.Name, f) {
				out = append(out, e)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.New(errors.ErrCodeNotFound, "unknown font %q", f)
		}
	}
	return out, nil
}

func (c *CLI) runFonts(ctx context.Context, client *http.Client, entries []fonts.Entry, dir string) error {
	prog := newProgress(loggerFromContext(ctx))
	var failed []string
	fetched := 0
	for _, e := range entries {
		dest := filepath.Join(dir, e.File)
		spinner := newSpinnerWithContext(ctx, "Fetching "+e.Name+"...")
		spinner.Start()
		downloaded, err := fonts.DownloadEntry(ctx, client, e, dir)
		switch {
		case err != nil:
			spinner.StopWithError(fmt.Sprintf("%s: %s", e.Name, errors.UserMessage(err)))
			c.Logger.Debug("font download failed", "font", e.File, "url", e.URL, "err", err)
			failed = append(failed, e.File)
		case downloaded:
			spinner.StopWithSuccess("Downloaded " + e.Name)
			printFile(dest)
			fetched++
		default:
			spinner.Stop()
			printInfo("%s already present", e.Name)
			printDetail("%s", dest)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	prog.done(fmt.Sprintf("Fetched %d of %d fonts", fetched, len(entries)))

	if len(failed) > 0 {
		return errors.New(errors.ErrCodeNetwork, "could not download %s", strings.Join(failed, ", "))
	}
	return nil
}
