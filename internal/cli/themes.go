package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/winesheet/pkg/pipeline"
	"github.com/matzehuels/winesheet/pkg/theme"
)

// themesCommand creates the themes command.
func (c *CLI) themesCommand() *cobra.Command {
	var (
		pick    bool
		fontDir string
	)

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		Long: `List the built-in themes.

With --pick, choose a theme interactively and render it as a PDF in the
current directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !pick {
				fmt.Fprintln(stdout, themeTable(theme.All()))
				printNextStep("Render one", "winesheet render --theme "+theme.Names()[0])
				return nil
			}
			return c.runPick(cmd.Context(), fontDir)
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "choose a theme interactively and render it")
	cmd.Flags().StringVar(&fontDir, "font-dir", pipeline.DefaultFontDir, "directory holding the handwriting fonts")

	cmd.AddCommand(c.themesExportCommand())
	return cmd
}

// themesExportCommand prints a built-in theme as TOML, as a starting point
// for a theme file.
func (c *CLI) themesExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "export [theme]",
		Short:     "Print a built-in theme as TOML",
		Args:      cobra.ExactArgs(1),
		ValidArgs: theme.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := theme.Builtin(args[0])
			if err != nil {
				return err
			}
			text, err := theme.Encode(t)
			if err != nil {
				return err
			}
			fmt.Fprint(stdout, text)
			return nil
		},
	}
}

// themeTable renders the theme list as a bordered table.
func themeTable(themes []*theme.Theme) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorPencil).Bold(true)
	rows := make([][]string, 0, len(themes))
	for _, t := range themes {
		font := t.Font.File
		if font == "" {
			font = "Times"
		}
		rows = append(rows, []string{t.Name, string(t.Stroke), string(t.Background), font, t.Output, t.Description})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaded)).
		Headers("Theme", "Stroke", "Paper", "Font", "Output", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col >= 4:
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}

func (c *CLI) runPick(ctx context.Context, fontDir string) error {
	m, err := tea.NewProgram(NewThemeListModel(theme.All()), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("theme picker: %w", err)
	}
	selected := m.(ThemeListModel).Selected
	if selected == nil {
		printInfo("No theme selected")
		return nil
	}
	return c.runRender(ctx, renderOpts{
		themes:  []string{selected.Name},
		formats: pipeline.DefaultFormat,
		scale:   pipeline.DefaultScale,
		fontDir: fontDir,
	})
}
