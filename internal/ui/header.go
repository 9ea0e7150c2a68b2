package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one "key: value" line of a header or result box
type Param struct {
	Key   string
	Value string
}

// Header represents a command header with title, command, and parameters.
// Parameters are rendered in the order given.
type Header struct {
	Title   string  // e.g., "ENCODE"
	Command string  // e.g., "sezir encode --mode cool"
	Params  []Param // e.g., {"Tolerance", "±25%"}
	Width   int     // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title, command string, params ...Param) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := clampWidth(h.Width)

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	commandLine := HeaderCommandStyle.Render(h.Command)
	topSection := lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)

	content := topSection
	if len(h.Params) > 0 {
		dividerWidth := width - 6 // Account for border and padding
		if dividerWidth < 10 {
			dividerWidth = 10
		}
		divider := RenderHorizontalDivider(dividerWidth, "─")

		paramLines := make([]string, 0, len(h.Params))
		for _, p := range h.Params {
			keyStyled := HeaderParamKeyStyle.Render(p.Key + ":")
			valueStyled := HeaderParamValueStyle.Render(p.Value)
			paramLines = append(paramLines, keyStyled+" "+valueStyled)
		}

		content = lipgloss.JoinVertical(lipgloss.Left, topSection, divider, strings.Join(paramLines, "\n"))
	}

	return HeaderBorderStyle(width).Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
