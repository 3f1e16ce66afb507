package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/winesheet/pkg/theme"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWine)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorPaper)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorFaded)
)

// =============================================================================
// ThemeListModel - Interactive theme selection
// =============================================================================

// ThemeListModel is the bubbletea model for interactive theme selection.
type ThemeListModel struct {
	Themes   []*theme.Theme
	Cursor   int
	Selected *theme.Theme
}

// NewThemeListModel creates a new theme list model.
func NewThemeListModel(themes []*theme.Theme) ThemeListModel {
	return ThemeListModel{Themes: themes}
}

func (m ThemeListModel) Init() tea.Cmd {
	return nil
}

func (m ThemeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Themes)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Themes) > 0 {
				m.Selected = m.Themes[m.Cursor]
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ThemeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Theme"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  q quit"))
	b.WriteString("\n\n")

	for i, t := range m.Themes {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-12s %s", cursor, t.Name, listDimStyle.Render(t.Description))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.Themes) > 0 {
		t := m.Themes[m.Cursor]
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s strokes on %s paper  →  %s", t.Stroke, t.Background, t.Output)))
		b.WriteString("\n")
	}
	return b.String()
}
