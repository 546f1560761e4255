// Package update owns the interactive session: the active day, the
// heat-map cursor, the editor popup, and the dispatch of key commands
// against the catalog and the completion log.
package update

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/kjellner/habitd/internal/habit"
	"github.com/kjellner/habitd/internal/model"
)

const fallbackActivityName = "🏞️  Meditate"

type StatusBar struct {
	Text    string
	IsError bool
}

// Options tunes a session without reaching into the model afterwards.
type Options struct {
	// DefaultActivityName seeds an empty catalog before the first render.
	DefaultActivityName string
	HeatmapWeeks        int
	HeatmapFilledColor  string
	HeatmapEmptyColor   string
	// Now is the session clock; the "jump to today" command re-evaluates it
	// at keypress time. Defaults to time.Now.
	Now func() time.Time
}

// Model is the session controller. It is the only writer of the two stores
// and of the cursors; views receive read-only projections each frame.
type Model struct {
	catalog *habit.Catalog
	log     *habit.Log

	// ActiveDate is the day shown in the selector and targeted by toggles.
	ActiveDate model.Date
	// HeatmapType is the activity whose history the heat-map renders. It
	// always names a catalog entry; the catalog is never empty once a
	// session exists.
	HeatmapType  model.ActivityType
	PopupVisible bool
	HelpVisible  bool

	Status   StatusBar
	Quitting bool

	opts      Options
	keys      KeyMap
	nameInput textinput.Model
	helpModel help.Model
	editorErr string
	width     int
	height    int
}

// NewModel builds a session over a loaded catalog and log. An empty catalog
// is seeded with one default activity type here, as part of session
// initialization, so the non-empty-catalog invariant holds before the first
// render.
func NewModel(catalog *habit.Catalog, log *habit.Log, opts Options) (Model, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if catalog.Len() == 0 {
		name := strings.TrimSpace(opts.DefaultActivityName)
		if name == "" {
			name = fallbackActivityName
		}
		if _, err := catalog.CreateActivityType(name); err != nil {
			return Model{}, err
		}
	}

	input := textinput.New()
	input.Placeholder = "activity name"
	input.CharLimit = 64
	input.Width = 32

	m := Model{
		catalog:    catalog,
		log:        log,
		ActiveDate: model.DateOf(opts.Now()),
		opts:       opts,
		keys:       DefaultKeyMap(),
		nameInput:  input,
		helpModel:  help.New(),
	}
	m.HeatmapType = lowestIDType(catalog)
	return m, nil
}

// lowestIDType scans for the entry with the smallest id; catalog order is
// insertion order, not id order.
func lowestIDType(catalog *habit.Catalog) model.ActivityType {
	types := catalog.ActivityTypes()
	lowest := types[0]
	for _, t := range types[1:] {
		if t.ID < lowest.ID {
			lowest = t
		}
	}
	return lowest
}

func (m Model) options() []habit.Option {
	return habit.Options(m.catalog, m.log, m.ActiveDate)
}
