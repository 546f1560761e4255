package habit

import "github.com/kjellner/habitd/internal/model"

// Option is the derived per-day completion state of one activity type. Its
// position in the slice is the ordinal used for digit-key selection and for
// heat-map cursor stepping.
type Option struct {
	TypeID    int64
	Name      string
	Completed bool
}

// Options projects the catalog and the log onto a single day, in catalog
// iteration order. It is recomputed every frame; callers must not cache the
// result across a catalog or log mutation.
func Options(catalog *Catalog, log *Log, date model.Date) []Option {
	types := catalog.ActivityTypes()
	out := make([]Option, 0, len(types))
	for _, t := range types {
		out = append(out, Option{
			TypeID:    t.ID,
			Name:      t.Name,
			Completed: log.Completed(t.ID, date),
		})
	}
	return out
}
