package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type SelectorItem struct {
	// Index is the 1-based digit key that toggles the item; 0 when the item
	// is beyond the nine digit-addressable slots.
	Index     int
	Name      string
	Completed bool
	// OnHeatmap marks the activity whose history the heat-map is showing.
	OnHeatmap bool
}

type SelectorData struct {
	Title string
	Items []SelectorItem
}

var (
	selectorTitleStyle = lipgloss.NewStyle().Bold(true)
	completedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	heatmapMarkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
)

// RenderSelector draws the day view: one line per activity option in catalog
// order, with its digit key, completion mark, and the heat-map cursor.
func RenderSelector(data SelectorData) string {
	var b strings.Builder
	b.WriteString(selectorTitleStyle.Render(data.Title))
	b.WriteString("\n")
	if len(data.Items) == 0 {
		b.WriteString("(no activities)")
		return b.String()
	}
	for _, item := range data.Items {
		key := "[ ]"
		if item.Index >= 1 && item.Index <= 9 {
			key = fmt.Sprintf("[%d]", item.Index)
		}
		mark := "☐"
		if item.Completed {
			mark = completedStyle.Render("☑")
		}
		cursor := " "
		if item.OnHeatmap {
			cursor = heatmapMarkStyle.Render("▸")
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n", cursor, key, mark, item.Name))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
