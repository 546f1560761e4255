package habit

import (
	"context"
	"errors"
	"testing"

	"github.com/kjellner/habitd/internal/model"
	"github.com/kjellner/habitd/internal/storage"
)

func loadTestCatalog(t *testing.T, repo storage.Repository) *Catalog {
	t.Helper()
	catalog, err := LoadCatalog(context.Background(), repo)
	if err != nil {
		t.Fatalf("LoadCatalog error: %v", err)
	}
	return catalog
}

func TestLoadCatalogEmpty(t *testing.T) {
	catalog := loadTestCatalog(t, storage.NewMemory())
	if catalog.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d entries", catalog.Len())
	}
}

func TestCreateActivityTypeAllocatesMonotonicIDs(t *testing.T) {
	catalog := loadTestCatalog(t, storage.NewMemory())

	first, err := catalog.CreateActivityType("Meditate")
	if err != nil {
		t.Fatalf("CreateActivityType error: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("expected first id 1, got %d", first.ID)
	}

	second, err := catalog.CreateActivityType("Run")
	if err != nil {
		t.Fatalf("CreateActivityType error: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("expected second id 2, got %d", second.ID)
	}
}

func TestCreateActivityTypeSkipsPastMaxID(t *testing.T) {
	repo := storage.NewMemory()
	ctx := context.Background()
	seed := []storage.ActivityType{{ID: 7, Name: "Read"}, {ID: 3, Name: "Swim"}}
	if err := repo.ReplaceActivityTypes(ctx, seed); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	catalog := loadTestCatalog(t, repo)
	created, err := catalog.CreateActivityType("Row")
	if err != nil {
		t.Fatalf("CreateActivityType error: %v", err)
	}
	if created.ID != 8 {
		t.Fatalf("expected id 8 (max+1), got %d", created.ID)
	}
}

func TestCreateActivityTypeRejectsBlankName(t *testing.T) {
	catalog := loadTestCatalog(t, storage.NewMemory())
	if _, err := catalog.CreateActivityType("   "); !errors.Is(err, model.ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if catalog.Len() != 0 {
		t.Fatalf("rejected create must not grow the catalog, got %d entries", catalog.Len())
	}
}

func TestActivityTypesPreservesInsertionOrder(t *testing.T) {
	repo := storage.NewMemory()
	ctx := context.Background()
	seed := []storage.ActivityType{{ID: 5, Name: "Read"}, {ID: 2, Name: "Swim"}, {ID: 9, Name: "Run"}}
	if err := repo.ReplaceActivityTypes(ctx, seed); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	catalog := loadTestCatalog(t, repo)
	got := catalog.ActivityTypes()
	for i, want := range seed {
		if got[i].ID != want.ID || got[i].Name != want.Name {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], want)
		}
	}
}

func TestCatalogSaveRoundTrip(t *testing.T) {
	repo := storage.NewMemory()
	ctx := context.Background()

	catalog := loadTestCatalog(t, repo)
	if _, err := catalog.CreateActivityType("Meditate"); err != nil {
		t.Fatalf("CreateActivityType error: %v", err)
	}
	if _, err := catalog.CreateActivityType("Run"); err != nil {
		t.Fatalf("CreateActivityType error: %v", err)
	}
	if err := catalog.Save(ctx); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	reloaded := loadTestCatalog(t, repo)
	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 entries after reload, got %d", reloaded.Len())
	}
	if got, ok := reloaded.Lookup(1); !ok || got.Name != "Meditate" {
		t.Fatalf("unexpected entry for id 1: %+v ok=%v", got, ok)
	}
	if got, ok := reloaded.Lookup(2); !ok || got.Name != "Run" {
		t.Fatalf("unexpected entry for id 2: %+v ok=%v", got, ok)
	}
}
