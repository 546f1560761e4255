package habit

import (
	"context"
	"testing"
	"time"

	"github.com/kjellner/habitd/internal/model"
	"github.com/kjellner/habitd/internal/storage"
)

func loadTestLog(t *testing.T, repo storage.Repository) *Log {
	t.Helper()
	log, err := LoadLog(context.Background(), repo)
	if err != nil {
		t.Fatalf("LoadLog error: %v", err)
	}
	return log
}

func TestLogToggleSemantics(t *testing.T) {
	log := loadTestLog(t, storage.NewMemory())
	day := model.NewDate(2024, time.March, 1)
	record := model.NewCompletion(0, day)

	log.Add(record)
	if !log.Completed(0, day) {
		t.Fatal("expected record present after add")
	}
	if log.Len() != 1 {
		t.Fatalf("expected exactly one record, got %d", log.Len())
	}

	// Adding again must not create a duplicate.
	log.Add(record)
	if log.Len() != 1 {
		t.Fatalf("expected idempotent add, got %d records", log.Len())
	}

	log.Remove(record)
	if log.Completed(0, day) {
		t.Fatal("expected record absent after remove")
	}
	if log.Len() != 0 {
		t.Fatalf("expected empty log, got %d records", log.Len())
	}

	// Removing an absent record is a no-op, not an error.
	log.Remove(record)
	if log.Len() != 0 {
		t.Fatalf("expected empty log after redundant remove, got %d", log.Len())
	}
}

func TestDatesForSortedAndScoped(t *testing.T) {
	log := loadTestLog(t, storage.NewMemory())
	log.Add(model.NewCompletion(1, model.NewDate(2024, time.March, 5)))
	log.Add(model.NewCompletion(1, model.NewDate(2024, time.February, 29)))
	log.Add(model.NewCompletion(1, model.NewDate(2024, time.March, 1)))
	log.Add(model.NewCompletion(2, model.NewDate(2024, time.March, 2)))

	got := log.DatesFor(1)
	want := []model.Date{
		model.NewDate(2024, time.February, 29),
		model.NewDate(2024, time.March, 1),
		model.NewDate(2024, time.March, 5),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("date %d = %s, want %s", i, got[i], want[i])
		}
	}
	if n := len(log.DatesFor(3)); n != 0 {
		t.Fatalf("expected no dates for unknown type, got %d", n)
	}
}

func TestDatesForIsRestartable(t *testing.T) {
	log := loadTestLog(t, storage.NewMemory())
	log.Add(model.NewCompletion(1, model.NewDate(2024, time.March, 1)))

	first := log.DatesFor(1)
	second := log.DatesFor(1)
	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Fatalf("expected identical re-derived sequences, got %v and %v", first, second)
	}
}

func TestLogSaveRoundTrip(t *testing.T) {
	repo := storage.NewMemory()
	ctx := context.Background()

	log := loadTestLog(t, repo)
	log.Add(model.NewCompletion(1, model.NewDate(2024, time.March, 1)))
	log.Add(model.NewCompletion(2, model.NewDate(2024, time.December, 31)))
	if err := log.Save(ctx); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	reloaded := loadTestLog(t, repo)
	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 records after reload, got %d", reloaded.Len())
	}
	if !reloaded.Completed(1, model.NewDate(2024, time.March, 1)) {
		t.Fatal("missing (1, 2024-03-01) after reload")
	}
	if !reloaded.Completed(2, model.NewDate(2024, time.December, 31)) {
		t.Fatal("missing (2, 2024-12-31) after reload")
	}
}

func TestLoadLogRejectsCorruptDay(t *testing.T) {
	repo := storage.NewMemory()
	ctx := context.Background()
	if err := repo.ReplaceCompletions(ctx, []storage.Completion{{TypeID: 1, Day: "garbage"}}); err != nil {
		t.Fatalf("seed error: %v", err)
	}
	if _, err := LoadLog(ctx, repo); err == nil {
		t.Fatal("expected error loading unparseable completion day")
	}
}
