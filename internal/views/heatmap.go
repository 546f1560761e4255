package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type HeatmapData struct {
	Title string
	// Today and ActiveDay are YYYY-MM-DD; Completed is keyed the same way.
	Today     string
	ActiveDay string
	Completed map[string]bool
	// Weeks is the number of grid columns ending at the current week.
	Weeks       int
	FilledColor string // hex, brightest shade of the ramp
	EmptyColor  string // hex, shade for days without a record
}

const (
	heatmapDayLayout   = "2006-01-02"
	defaultHeatmapSpan = 26
	maxStreakShade     = 5
)

var heatmapTitleStyle = lipgloss.NewStyle().Bold(true)

// RenderHeatmap draws the completion history as a weeks-by-weekdays grid
// ending at today, GitHub-contribution style. Completed days are shaded by
// the length of the run of consecutive completed days ending there; the
// active day is drawn inverted.
func RenderHeatmap(data HeatmapData) string {
	weeks := data.Weeks
	if weeks <= 0 {
		weeks = defaultHeatmapSpan
	}
	today, err := time.Parse(heatmapDayLayout, data.Today)
	if err != nil {
		today = time.Now()
	}
	base, err := colorful.Hex(data.FilledColor)
	if err != nil {
		base, _ = colorful.Hex("#39d353")
	}
	empty := data.EmptyColor
	if _, err := colorful.Hex(empty); err != nil {
		empty = "#3a3f44"
	}
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(empty))

	// Columns are whole weeks starting on Sunday; the last column holds today.
	start := today.AddDate(0, 0, -7*(weeks-1))
	start = start.AddDate(0, 0, -int(start.Weekday()))

	var b strings.Builder
	b.WriteString(heatmapTitleStyle.Render(data.Title))
	b.WriteString("\n")
	b.WriteString(monthLabelRow(start, weeks))
	b.WriteString("\n")

	gutters := map[int]string{1: "Mon", 3: "Wed", 5: "Fri"}
	for weekday := 0; weekday < 7; weekday++ {
		label, ok := gutters[weekday]
		if !ok {
			label = "   "
		}
		b.WriteString(label + " ")
		for week := 0; week < weeks; week++ {
			day := start.AddDate(0, 0, 7*week+weekday)
			b.WriteString(renderHeatmapCell(day, today, data, base, emptyStyle))
		}
		b.WriteString("\n")
	}
	b.WriteString(heatmapLegend(base, emptyStyle))
	return strings.TrimSuffix(b.String(), "\n")
}

func renderHeatmapCell(day, today time.Time, data HeatmapData, base colorful.Color, emptyStyle lipgloss.Style) string {
	if day.After(today) {
		return "  "
	}
	key := day.Format(heatmapDayLayout)
	style := emptyStyle
	glyph := "·"
	if data.Completed[key] {
		glyph = "■"
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(streakShade(base, streakEndingAt(day, data.Completed))))
	}
	if key == data.ActiveDay {
		style = style.Reverse(true)
	}
	return style.Render(glyph) + " "
}

// streakEndingAt counts the consecutive completed days ending at day,
// capped at the deepest shade of the ramp.
func streakEndingAt(day time.Time, completed map[string]bool) int {
	streak := 0
	for streak < maxStreakShade {
		if !completed[day.AddDate(0, 0, -streak).Format(heatmapDayLayout)] {
			break
		}
		streak++
	}
	return streak
}

// streakShade maps a streak length onto the lightness ramp of the base color.
func streakShade(base colorful.Color, streak int) string {
	if streak < 1 {
		streak = 1
	}
	if streak > maxStreakShade {
		streak = maxStreakShade
	}
	t := float64(streak-1) / float64(maxStreakShade-1)
	h, s, _ := base.Hsl()
	return colorful.Hsl(h, s, 0.30+0.35*t).Hex()
}

func monthLabelRow(start time.Time, weeks int) string {
	var b strings.Builder
	b.WriteString("    ")
	prev := time.Month(0)
	for week := 0; week < weeks; week++ {
		month := start.AddDate(0, 0, 7*week).Month()
		if month != prev {
			b.WriteString(month.String()[:2])
			prev = month
		} else {
			b.WriteString("  ")
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func heatmapLegend(base colorful.Color, emptyStyle lipgloss.Style) string {
	var b strings.Builder
	b.WriteString("    less ")
	b.WriteString(emptyStyle.Render("·"))
	b.WriteString(" ")
	for streak := 1; streak <= maxStreakShade; streak++ {
		cell := lipgloss.NewStyle().Foreground(lipgloss.Color(streakShade(base, streak)))
		b.WriteString(cell.Render("■"))
		b.WriteString(" ")
	}
	b.WriteString("more")
	return b.String()
}
