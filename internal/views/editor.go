package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type EditorData struct {
	// InputView is the rendered textinput for the new activity name.
	InputView string
	Err       string
}

var (
	editorBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	editorTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	editorHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	editorErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RenderActivityEditor draws the new-activity popup.
func RenderActivityEditor(data EditorData) string {
	lines := []string{
		editorTitleStyle.Render("new activity"),
		data.InputView,
	}
	if data.Err != "" {
		lines = append(lines, editorErrStyle.Render(data.Err))
	}
	lines = append(lines, editorHintStyle.Render("enter: create  esc: close"))
	return editorBoxStyle.Render(strings.Join(lines, "\n"))
}
