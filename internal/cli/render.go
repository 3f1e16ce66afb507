package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/winesheet/pkg/errors"
	"github.com/matzehuels/winesheet/pkg/pipeline"
	"github.com/matzehuels/winesheet/pkg/theme"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	themes      []string // built-in theme names
	themeFiles  []string // TOML theme files
	contentFile string   // TOML sheet text
	formats     string   // comma-separated output formats
	output      string   // output file (single artifact) or directory
	seed        uint64
	seeded      bool // --seed was given
	scale       float64
	fontDir     string
	noCache     bool
	refresh     bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{fontDir: pipeline.DefaultFontDir}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw tasting sheets",
		Long: `Draw tasting sheets as PDF, SVG or PNG.

Without --theme or --theme-file every built-in theme is rendered, each to
its own default file name in the current directory. With a single theme
and format, --output names the file; otherwise it names a directory.

Each run draws a fresh paper texture and reports its seed. Pass --seed to
reproduce a sheet; seeded renders are cached locally.

The handwriting fonts are looked up in --font-dir (see 'winesheet fonts').
When a font file is missing the sheet is set in Times italic instead.`,
		Example: `  winesheet render
  winesheet render --theme vintage --format pdf,svg
  winesheet render --theme-file rose.toml --seed 42 -o rose.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seeded = cmd.Flags().Changed("seed")
			return c.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.themes, "theme", "t", nil, "built-in theme(s): "+fmt.Sprint(theme.Names()))
	cmd.Flags().StringArrayVar(&opts.themeFiles, "theme-file", nil, "TOML theme file (repeatable)")
	cmd.Flags().StringVar(&opts.contentFile, "content", "", "TOML file overriding the sheet text")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", pipeline.DefaultFormat, "output format(s): pdf, svg, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single theme and format) or directory")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for the paper texture and stroke jitter")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().StringVar(&opts.fontDir, "font-dir", opts.fontDir, "directory holding the handwriting fonts")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached sheet exists")

	_ = cmd.RegisterFlagCompletionFunc("theme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return theme.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// jobs expands the theme flags into one pipeline run per theme.
func (o renderOpts) jobs() []pipeline.Options {
	base := pipeline.Options{
		Formats:     parseList(o.formats),
		Scale:       o.scale,
		FontDir:     o.fontDir,
		ContentFile: o.contentFile,
		Refresh:     o.refresh,
	}
	if o.seeded {
		base.Seed = pipeline.Seed(o.seed)
	}

	names := o.themes
	if len(names) == 0 && len(o.themeFiles) == 0 {
		names = theme.Names()
	}
	jobs := make([]pipeline.Options, 0, len(names)+len(o.themeFiles))
	for _, name := range names {
		job := base
		job.Theme = name
		jobs = append(jobs, job)
	}
	for _, file := range o.themeFiles {
		job := base
		job.ThemeFile = file
		jobs = append(jobs, job)
	}
	return jobs
}

func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	jobs := opts.jobs()
	for i := range jobs {
		jobs[i].Logger = c.Logger
		if err := jobs[i].ValidateAndSetDefaults(); err != nil {
			return err
		}
	}
	single := len(jobs) == 1 && len(jobs[0].Formats) == 1

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	for _, job := range jobs {
		spinner := newSpinnerWithContext(ctx, "Drawing "+jobName(job)+"...")
		spinner.Start()
		res, err := runner.Execute(ctx, job)
		if err != nil {
			spinner.StopWithError("Rendering " + jobName(job) + " failed")
			return err
		}
		spinner.Stop()

		printSuccess("Rendered %s", StyleHighlight.Render(res.Theme.Name))
		printRenderStats(res)
		if !res.FontsCustom && res.Theme.Font.File != "" {
			printWarning("%s not found in %s, set in Times italic", res.Theme.Font.File, job.FontDir)
			printNextStep("Download it", "winesheet fonts --dir "+job.FontDir)
		}
		if err := writeArtifacts(res, job.Formats, opts.output, single); err != nil {
			return err
		}
	}
	return nil
}

func jobName(o pipeline.Options) string {
	if o.ThemeFile != "" {
		return filepath.Base(o.ThemeFile)
	}
	return o.Theme
}

// writeArtifacts saves each rendered format. With a single artifact,
// output is the file path; otherwise it is a directory.
func writeArtifacts(res *pipeline.Result, formats []string, output string, single bool) error {
	for _, format := range formats {
		path := res.Filename(format)
		switch {
		case output != "" && single:
			path = output
		case output != "":
			path = filepath.Join(output, path)
		}
		if err := errors.ValidateOutputPath(path); err != nil {
			return err
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrap(errors.ErrCodeOutput, err, "create %s", dir)
			}
		}
		if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeOutput, err, "write %s", path)
		}
		printFile(path)
	}
	return nil
}
