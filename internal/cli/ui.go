package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styled terminal output for the human-facing commands. Machine output
// (graph JSON, scene JSON, DOT, completion scripts) stays unstyled on
// stdout; these helpers carry the status lines around it.

// palette is the one place terminal colors are defined.
var palette = struct {
	accent, ok, warn, fail, link, value, muted, faint lipgloss.Color
}{
	accent: lipgloss.Color("36"),
	ok:     lipgloss.Color("35"),
	warn:   lipgloss.Color("220"),
	fail:   lipgloss.Color("167"),
	link:   lipgloss.Color("75"),
	value:  lipgloss.Color("255"),
	muted:  lipgloss.Color("245"),
	faint:  lipgloss.Color("240"),
}

// Styles shared with the interactive explorer and command output.
var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(palette.accent)

	// StyleHighlight for emphasized values such as the matched symbol.
	StyleHighlight = lipgloss.NewStyle().Foreground(palette.accent)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(palette.link).Underline(true)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(palette.faint)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(palette.value)
)

var (
	styleSpinner  = lipgloss.NewStyle().Foreground(palette.accent)
	styleRestored = lipgloss.NewStyle().Foreground(palette.ok)
	styleFresh    = lipgloss.NewStyle().Foreground(palette.muted)
	styleCommand  = lipgloss.NewStyle().Foreground(palette.link)
	styleKey      = lipgloss.NewStyle().Foreground(palette.muted).Width(12)
)

const iconArrow = "→"

// statusLine prints a glyph-prefixed line, the shape every status
// message shares.
func statusLine(color lipgloss.Color, glyph, format string, args ...any) {
	prefix := lipgloss.NewStyle().Foreground(color).Render(glyph)
	fmt.Println(prefix + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) {
	statusLine(palette.ok, "✓", format, args...)
}

func printError(format string, args ...any) {
	statusLine(palette.fail, "✗", format, args...)
}

func printWarning(format string, args ...any) {
	msg := lipgloss.NewStyle().Foreground(palette.warn).Render(fmt.Sprintf(format, args...))
	statusLine(palette.warn, "!", "%s", msg)
}

func printInfo(format string, args ...any) {
	statusLine(palette.muted, "›", format, args...)
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path a command wrote.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value in aligned columns.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printGraphStats prints a one-line graph summary: node and edge counts
// plus any pre-styled notes, dot-separated.
func printGraphStats(nodes, edges int, notes ...string) {
	parts := make([]string, 0, 2+len(notes))
	if nodes > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d nodes", nodes)))
	}
	if edges > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d edges", edges)))
	}
	parts = append(parts, notes...)
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// layoutNote describes where a scene's arrangement came from.
func layoutNote(restored bool) string {
	if restored {
		return styleRestored.Render("restored positions")
	}
	return styleFresh.Render("fresh layout")
}

// printNextStep suggests the command that typically follows.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
