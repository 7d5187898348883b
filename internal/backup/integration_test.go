package backup

import (
	"testing"
	"time"

	"github.com/chrisjoiner1989/bible-steps/internal/catalog"
	"github.com/chrisjoiner1989/bible-steps/internal/models"
	"github.com/chrisjoiner1989/bible-steps/internal/storage"
	"github.com/chrisjoiner1989/bible-steps/internal/streak"
)

// Exercises the full lifecycle against a real on-disk store: build up state
// through the tracker and catalog, export, wipe, restore, and verify the
// streak engine picks up exactly where it left off.
func TestLifecycleAcrossRestore(t *testing.T) {
	store := storage.NewJSONStore(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("store init: %v", err)
	}

	tracker := streak.NewTracker(store)
	cat := catalog.New(store)
	mgr := NewManager(store)

	day1 := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)

	devotion := models.Devotion{
		ID:            "d1",
		Title:         "Be Still",
		ScheduledDate: "2025-06-10",
		Category:      models.CategoryAnxietyPeace,
		Scripture: models.ScriptureReference{
			Book: "Psalms", Chapter: 46, VerseStart: 10,
			Translation: models.TranslationNIV,
		},
	}
	if err := cat.Add(devotion); err != nil {
		t.Fatalf("add devotion: %v", err)
	}

	tracker.RecordCompletion("d1", day1)
	tracker.RecordCompletion("d1", day2)

	path, err := mgr.ExportToFile(day2)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	mgr.Reset()
	if p := tracker.Progress(day2); p.CurrentStreak != 0 || p.TotalCompleted != 0 {
		t.Fatalf("progress after reset = %+v, want zero value", p)
	}
	if _, ok := cat.Today(day2); ok {
		t.Fatal("catalog not empty after reset")
	}

	if err := mgr.RestoreFromFile(path, day2); err != nil {
		t.Fatalf("restore: %v", err)
	}

	p := tracker.Progress(day2)
	if p.CurrentStreak != 2 || p.TotalCompleted != 2 || p.LastCompletedDate != "2025-06-11" {
		t.Fatalf("restored progress = %+v, want streak 2 ending 2025-06-11", p)
	}

	today, ok := cat.Today(day2)
	if !ok || today.ID != "d1" {
		t.Fatalf("Today() after restore = %+v, %v; want d1", today, ok)
	}

	// The streak continues across the restore boundary.
	p = tracker.RecordCompletion("d1", day3)
	if p.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", p.CurrentStreak)
	}
}
