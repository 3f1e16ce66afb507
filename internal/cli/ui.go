package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/winesheet/pkg/pipeline"
)

// Terminal colors borrow from the sheet's own palette: wine reds for
// emphasis, sage for success, ochre for warnings.
var (
	colorWine   = lipgloss.Color("131") // accents and titles
	colorSage   = lipgloss.Color("108") // success
	colorOchre  = lipgloss.Color("179") // warnings
	colorRed    = lipgloss.Color("167") // errors
	colorSlate  = lipgloss.Color("110") // commands and links
	colorPaper  = lipgloss.Color("230") // values
	colorPencil = lipgloss.Color("246") // secondary text
	colorFaded  = lipgloss.Color("240") // muted text
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorWine)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorWine)
	StyleLink      = lipgloss.NewStyle().Foreground(colorSlate).Underline(true)
	StyleDim       = lipgloss.NewStyle().Foreground(colorFaded)
	StyleValue     = lipgloss.NewStyle().Foreground(colorPaper)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorWine)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorSage)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorOchre)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorWine)
	styleCached      = lipgloss.NewStyle().Foreground(colorSage)
	styleFresh       = lipgloss.NewStyle().Foreground(colorPencil)
	styleCommand     = lipgloss.NewStyle().Foreground(colorSlate)
	styleKey         = lipgloss.NewStyle().Foreground(colorPencil).Width(12)
)

// statusIcons prefix one-line status messages.
var statusIcons = map[string]string{
	"success": lipgloss.NewStyle().Foreground(colorSage).Render("✓"),
	"error":   lipgloss.NewStyle().Foreground(colorRed).Render("✗"),
	"warning": lipgloss.NewStyle().Foreground(colorOchre).Render("!"),
	"info":    lipgloss.NewStyle().Foreground(colorPencil).Render("›"),
}

// stdout is where status lines go. Tests swap it out.
var stdout io.Writer = os.Stdout

func status(kind, msg string) {
	fmt.Fprintln(stdout, statusIcons[kind]+" "+msg)
}

func printSuccess(format string, args ...any) { status("success", fmt.Sprintf(format, args...)) }
func printError(format string, args ...any)   { status("error", fmt.Sprintf(format, args...)) }
func printInfo(format string, args ...any)    { status("info", fmt.Sprintf(format, args...)) }

func printWarning(format string, args ...any) {
	status("warning", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, muted line under a status message.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written file.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printRenderStats prints the seed, size and cache status of a render on a
// single line.
func printRenderStats(res *pipeline.Result) {
	parts := []string{
		"seed " + StyleNumber.Render(strconv.FormatUint(res.Seed, 10)),
		fmt.Sprintf("%d KB", (res.Stats.Bytes+1023)/1024),
	}
	if !res.FontsCustom {
		parts = append(parts, StyleWarning.Render("times fallback"))
	}

	if res.CacheInfo.RenderHit {
		parts = append(parts, styleCached.Render("cached"))
	} else {
		parts = append(parts, styleFresh.Render("fresh"))
	}
	fmt.Fprintln(stdout, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}
