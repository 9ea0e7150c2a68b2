package remote

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/sezir/internal/ui"
	"github.com/muurk/sezir/internal/version"
)

// AppName is shown in the remote's header
const AppName = "SEZ-KD VIRTUAL REMOTE"

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor)

	PayloadStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ui.SuccessColor)
)

// RenderContainer wraps content in the bordered frame with a title header
// and a help footer
func RenderContainer(content, footer string, width int) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		TitleStyle.Render(AppName),
		"  ",
		VersionStyle.Render(version.Version),
	)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(ui.PrimaryColor).
		Width(width-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(ui.PrimaryColor).
		Width(width-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(width-4).
		Padding(1, 1)

	inner := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(footer),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ui.PrimaryColor).
		Width(width - 2).
		Render(inner)
}
