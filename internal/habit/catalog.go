// Package habit holds the tracker's in-memory state: the activity-type
// catalog, the completion log, and the per-day option projection. Both
// stores load wholesale at startup and persist wholesale on save; nothing
// in between touches storage.
package habit

import (
	"context"
	"fmt"

	"github.com/kjellner/habitd/internal/model"
	"github.com/kjellner/habitd/internal/storage"
)

// Catalog is the set of defined activity types, kept in insertion order.
// IDs are allocated monotonically and never reused; entries are never
// deleted or renamed.
type Catalog struct {
	repo  storage.Repository
	types []model.ActivityType
}

// LoadCatalog reconstructs the catalog from storage. Missing storage yields
// an empty catalog; an unreadable one is an error the caller treats as fatal.
func LoadCatalog(ctx context.Context, repo storage.Repository) (*Catalog, error) {
	rows, err := repo.LoadActivityTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("habit: load catalog: %w", err)
	}
	types := make([]model.ActivityType, 0, len(rows))
	for _, row := range rows {
		types = append(types, model.ActivityType{ID: row.ID, Name: row.Name})
	}
	return &Catalog{repo: repo, types: types}, nil
}

// CreateActivityType appends a new activity type with a freshly allocated
// id, one greater than the current maximum. The change is in-memory only
// until Save.
func (c *Catalog) CreateActivityType(name string) (model.ActivityType, error) {
	next := int64(1)
	for _, t := range c.types {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	created := model.ActivityType{ID: next, Name: name}
	if err := created.Validate(); err != nil {
		return model.ActivityType{}, err
	}
	c.types = append(c.types, created)
	return created, nil
}

// ActivityTypes is a read view of all entries in insertion order. The order
// is not guaranteed to be sorted by id; callers wanting the lowest id scan.
func (c *Catalog) ActivityTypes() []model.ActivityType {
	out := make([]model.ActivityType, len(c.types))
	copy(out, c.types)
	return out
}

func (c *Catalog) Len() int {
	return len(c.types)
}

// Lookup finds an activity type by id.
func (c *Catalog) Lookup(id int64) (model.ActivityType, bool) {
	for _, t := range c.types {
		if t.ID == id {
			return t, true
		}
	}
	return model.ActivityType{}, false
}

// Save overwrites the persisted catalog with the in-memory one.
func (c *Catalog) Save(ctx context.Context) error {
	rows := make([]storage.ActivityType, 0, len(c.types))
	for _, t := range c.types {
		rows = append(rows, storage.ActivityType{ID: t.ID, Name: t.Name})
	}
	if err := c.repo.ReplaceActivityTypes(ctx, rows); err != nil {
		return fmt.Errorf("habit: save catalog: %w", err)
	}
	return nil
}
