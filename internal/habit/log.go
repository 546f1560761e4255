package habit

import (
	"context"
	"fmt"
	"sort"

	"github.com/kjellner/habitd/internal/model"
	"github.com/kjellner/habitd/internal/storage"
)

// Log is the set of (activity type, day) completion facts. Presence means
// completed; toggling is add/remove, never an in-place update.
type Log struct {
	repo storage.Repository
	set  map[model.Completion]struct{}
}

// LoadLog reconstructs the completion set from storage, empty when nothing
// was persisted. Rows that do not parse are an error, not silently dropped.
func LoadLog(ctx context.Context, repo storage.Repository) (*Log, error) {
	rows, err := repo.LoadCompletions(ctx)
	if err != nil {
		return nil, fmt.Errorf("habit: load completion log: %w", err)
	}
	set := make(map[model.Completion]struct{}, len(rows))
	for _, row := range rows {
		day, err := model.ParseDate(row.Day)
		if err != nil {
			return nil, fmt.Errorf("habit: completion for type %d: %w", row.TypeID, err)
		}
		set[model.NewCompletion(row.TypeID, day)] = struct{}{}
	}
	return &Log{repo: repo, set: set}, nil
}

// Add inserts a completion record. Adding one that is already present is a
// no-op, keeping the at-most-one-per-pair invariant.
func (l *Log) Add(c model.Completion) {
	l.set[c] = struct{}{}
}

// Remove deletes the matching record; absent records are a no-op, not an
// error.
func (l *Log) Remove(c model.Completion) {
	delete(l.set, c)
}

func (l *Log) Completed(typeID int64, date model.Date) bool {
	_, ok := l.set[model.NewCompletion(typeID, date)]
	return ok
}

func (l *Log) Len() int {
	return len(l.set)
}

// DatesFor lists every day the given activity type was completed, ascending.
// The slice is derived fresh on every call.
func (l *Log) DatesFor(typeID int64) []model.Date {
	out := make([]model.Date, 0)
	for c := range l.set {
		if c.TypeID == typeID {
			out = append(out, c.Date)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Save overwrites the persisted completion set with the in-memory one,
// in a deterministic order.
func (l *Log) Save(ctx context.Context) error {
	rows := make([]storage.Completion, 0, len(l.set))
	for c := range l.set {
		rows = append(rows, storage.Completion{TypeID: c.TypeID, Day: c.Date.String()})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Day != rows[j].Day {
			return rows[i].Day < rows[j].Day
		}
		return rows[i].TypeID < rows[j].TypeID
	})
	if err := l.repo.ReplaceCompletions(ctx, rows); err != nil {
		return fmt.Errorf("habit: save completion log: %w", err)
	}
	return nil
}
