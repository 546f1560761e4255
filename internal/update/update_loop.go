package update

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kjellner/habitd/internal/model"
	"github.com/kjellner/habitd/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes one message and applies at most one state transition or
// store mutation. Unrecognized input is ignored.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.helpModel.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		if m.PopupVisible {
			return m.handleEditorKey(typed)
		}
		return m.handleSessionKey(typed)
	}
	return m, nil
}

func (m Model) handleSessionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		// Quit without saving: unsaved mutations are discarded.
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.SaveQuit):
		return m.saveAndQuit()
	case key.Matches(msg, m.keys.Toggle):
		m.toggleOption(int(msg.String()[0] - '0'))
		return m, nil
	case key.Matches(msg, m.keys.PrevDay):
		m.ActiveDate = m.ActiveDate.Prev()
		return m, nil
	case key.Matches(msg, m.keys.NextDay):
		m.ActiveDate = m.ActiveDate.Next()
		return m, nil
	case key.Matches(msg, m.keys.Today):
		m.ActiveDate = model.DateOf(m.opts.Now())
		return m, nil
	case key.Matches(msg, m.keys.PrevActivity):
		m.stepHeatmapType(-1)
		return m, nil
	case key.Matches(msg, m.keys.NextActivity):
		m.stepHeatmapType(1)
		return m, nil
	case key.Matches(msg, m.keys.NewActivity):
		m.PopupVisible = true
		m.editorErr = ""
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Help):
		m.HelpVisible = !m.HelpVisible
		return m, nil
	}
	return m, nil
}

// toggleOption flips completion of the d-th option (1-indexed) for the
// active date. Digits beyond the option count are stale input and do
// nothing.
func (m *Model) toggleOption(d int) {
	options := m.options()
	idx := d - 1
	if idx < 0 || idx >= len(options) {
		return
	}
	record := model.NewCompletion(options[idx].TypeID, m.ActiveDate)
	if options[idx].Completed {
		m.log.Remove(record)
	} else {
		m.log.Add(record)
	}
}

// stepHeatmapType moves the heat-map cursor through the current day-option
// order, wrapping at either end. The position is recomputed by scanning for
// the current id, never cached, since the catalog can grow between steps.
func (m *Model) stepHeatmapType(delta int) {
	options := m.options()
	if len(options) == 0 {
		return
	}
	idx := 0
	for i, opt := range options {
		if opt.TypeID == m.HeatmapType.ID {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	if next, ok := m.catalog.Lookup(options[idx].TypeID); ok {
		m.HeatmapType = next
	}
}

// saveAndQuit persists both stores and exits. A failed save keeps the
// session alive with the error on the status line; exiting while the data
// did not persist would be silent loss.
func (m Model) saveAndQuit() (tea.Model, tea.Cmd) {
	ctx := context.Background()
	if err := m.catalog.Save(ctx); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("save failed: %v", err), IsError: true}
		return m, nil
	}
	if err := m.log.Save(ctx); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("save failed: %v", err), IsError: true}
		return m, nil
	}
	m.Quitting = true
	return m, tea.Quit
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "esc":
		m.PopupVisible = false
		m.editorErr = ""
		m.nameInput.Blur()
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		created, err := m.catalog.CreateActivityType(name)
		if err != nil {
			m.editorErr = "a name is required"
			return m, nil
		}
		m.PopupVisible = false
		m.editorErr = ""
		m.nameInput.Blur()
		m.Status = StatusBar{Text: fmt.Sprintf("added %q", created.Name)}
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	// Recomputed every frame: a toggle or a new activity must show up on
	// the very next render and the very next digit dispatch.
	options := m.options()

	items := make([]views.SelectorItem, 0, len(options))
	for i, opt := range options {
		index := i + 1
		if index > 9 {
			index = 0
		}
		items = append(items, views.SelectorItem{
			Index:     index,
			Name:      opt.Name,
			Completed: opt.Completed,
			OnHeatmap: opt.TypeID == m.HeatmapType.ID,
		})
	}

	completed := make(map[string]bool)
	for _, day := range m.log.DatesFor(m.HeatmapType.ID) {
		completed[day.String()] = true
	}

	status := m.Status.Text
	if m.Status.IsError && status != "" {
		status = "error: " + status
	}

	popup := ""
	if m.PopupVisible {
		popup = views.RenderActivityEditor(views.EditorData{
			InputView: m.nameInput.View(),
			Err:       m.editorErr,
		})
	} else if m.HelpVisible {
		popup = views.RenderMarkdown(helpText)
	}

	return views.RenderApp(views.AppData{
		Header:   m.ActiveDate.Format("Monday, 2 January 2006"),
		Selector: views.RenderSelector(views.SelectorData{Title: "activities", Items: items}),
		Heatmap: views.RenderHeatmap(views.HeatmapData{
			Title:       m.HeatmapType.Name,
			Today:       model.DateOf(m.opts.Now()).String(),
			ActiveDay:   m.ActiveDate.String(),
			Completed:   completed,
			Weeks:       m.opts.HeatmapWeeks,
			FilledColor: m.opts.HeatmapFilledColor,
			EmptyColor:  m.opts.HeatmapEmptyColor,
		}),
		StatusLine: status,
		Footer:     m.helpModel.View(m.keys),
		Popup:      popup,
		Width:      m.width,
		Height:     m.height,
	})
}
