package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/winesheet/pkg/buildinfo"
	"github.com/matzehuels/winesheet/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The --verbose flag raises the shared logger to debug level before any
// subcommand runs, and the logger is attached to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Winesheet draws printable wine tasting sheets",
		Long: `Winesheet draws printable wine tasting sheets in a hand-sketched look.

Every line is drawn with a little jitter, so no two sheets are alike unless
they share a seed. Two themes are built in: a pencil-on-paper "handwritten"
sheet and an ink-on-aged-paper "vintage" card.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			observability.NewLogHooks(c.Logger).Register()
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.fontsCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
