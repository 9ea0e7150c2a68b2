package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning box on w and reads a yes/no answer from r.
// Anything other than "y" or "yes" counts as no, including EOF.
func Confirm(r io.Reader, w io.Writer, title string, warnings []string) bool {
	width := GetTerminalWidth()

	lines := []string{"", WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, title)), ""}

	bulletStyle := lipgloss.NewStyle().Foreground(TextColor)
	for _, warning := range warnings {
		lines = append(lines, bulletStyle.Render("   • "+warning))
	}
	lines = append(lines, "")

	box := ResultBoxStyle(width, WarningColor).Render(strings.Join(lines, "\n"))
	fmt.Fprintln(w, box)

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	fmt.Fprint(w, promptStyle.Render("Continue? [y/N]: "))

	input, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && input == "" {
		fmt.Fprintln(w)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}

	cancelStyle := lipgloss.NewStyle().Foreground(MutedColor)
	fmt.Fprintln(w, cancelStyle.Render("  Operation cancelled."))
	return false
}
