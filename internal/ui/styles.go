package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

func OK(msg string) {
	fmt.Println(successStyle.Render("✔ " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+msg))
}

func Hint(msg string) {
	fmt.Fprintln(os.Stderr, mutedStyle.Render(msg))
}

// KeyValue renders an aligned "key  value" line for Panel.
func KeyValue(key, value string, width int) string {
	pad := width - len(key)
	if pad < 1 {
		pad = 1
	}
	return accentStyle.Render(key) + strings.Repeat(" ", pad) + value
}

// Panel prints lines inside a rounded border, with an optional bold title.
func Panel(title string, lines []string) {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	if title != "" {
		lines = append([]string{titleStyle.Render(title), ""}, lines...)
	}
	fmt.Println(border.Render(strings.Join(lines, "\n")))
}
