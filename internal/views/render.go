// Package views renders the tracker's frame. Every function is a pure
// projection from a plain data struct to a string; nothing here holds state
// between frames or mutates its input.
package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Selector   string
	Heatmap    string
	StatusLine string
	Footer     string
	// Popup, when non-empty, is centered over the panel area instead of the
	// panels themselves.
	Popup  string
	Width  int
	Height int
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func RenderApp(data AppData) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(data.Selector),
		panelStyle.Render(data.Heatmap),
	)
	if data.Popup != "" {
		width := lipgloss.Width(body)
		height := lipgloss.Height(body)
		if data.Width > 0 {
			width = data.Width
		}
		body = lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, data.Popup)
	}

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		body,
	}
	if data.StatusLine != "" {
		lines = append(lines, status)
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
