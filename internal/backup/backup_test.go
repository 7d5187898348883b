package backup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chrisjoiner1989/bible-steps/internal/constants"
	"github.com/chrisjoiner1989/bible-steps/internal/models"
	"github.com/chrisjoiner1989/bible-steps/internal/storage"
)

var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func seededStore() storage.Provider {
	store := storage.NewMemoryStore()
	store.Set(constants.KeyProgress, models.Progress{
		CurrentStreak:     4,
		LongestStreak:     9,
		TotalCompleted:    30,
		LastCompletedDate: "2025-06-10",
	})
	store.Set(constants.KeyCompletedDevotions, []models.Completion{
		{DevotionID: "d1", CompletedAt: testNow, Date: "2025-06-10"},
	})
	store.Set(constants.KeyUserDevotions, []models.Devotion{
		{
			ID:       "d1",
			Title:    "Still Waters",
			Category: models.CategoryGeneral,
			Scripture: models.ScriptureReference{
				Book: "Psalms", Chapter: 23, VerseStart: 1,
				Translation: models.TranslationNIV,
			},
		},
	})
	store.Set(constants.KeyProfile, models.Profile{DisplayName: "Chris"})
	return store
}

func TestExportRestoreRoundTrip(t *testing.T) {
	store := seededStore()
	m := NewManager(store)

	doc := m.Export(testNow)
	if doc.Version != constants.BackupVersion {
		t.Errorf("Version = %d, want %d", doc.Version, constants.BackupVersion)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	m.Reset()
	if got := len(store.Keys()); got != 0 {
		t.Fatalf("len(Keys()) after reset = %d, want 0", got)
	}

	if !m.Restore(data) {
		t.Fatal("Restore() = false, want true")
	}

	var progress models.Progress
	if !store.Get(constants.KeyProgress, &progress) {
		t.Fatal("progress missing after restore")
	}
	if progress.CurrentStreak != 4 || progress.LongestStreak != 9 || progress.TotalCompleted != 30 {
		t.Errorf("restored progress = %+v", progress)
	}

	var devotions []models.Devotion
	store.Get(constants.KeyUserDevotions, &devotions)
	if len(devotions) != 1 || devotions[0].ID != "d1" {
		t.Errorf("restored devotions = %v, want the seeded single record", devotions)
	}

	var profile models.Profile
	store.Get(constants.KeyProfile, &profile)
	if profile.DisplayName != "Chris" {
		t.Errorf("restored profile name = %q, want Chris", profile.DisplayName)
	}
}

func TestRestoreMalformedLeavesStoreUntouched(t *testing.T) {
	store := seededStore()
	m := NewManager(store)
	keysBefore := len(store.Keys())

	if m.Restore([]byte("{not json")) {
		t.Error("Restore() on malformed input = true, want false")
	}

	var progress models.Progress
	store.Get(constants.KeyProgress, &progress)
	if progress.CurrentStreak != 4 {
		t.Errorf("CurrentStreak = %d, want 4 (store must be untouched)", progress.CurrentStreak)
	}
	if got := len(store.Keys()); got != keysBefore {
		t.Errorf("len(Keys()) = %d, want %d", got, keysBefore)
	}
}

func TestRestorePartialDocument(t *testing.T) {
	store := seededStore()
	m := NewManager(store)

	// Only progress is present; everything else must be left alone.
	partial := []byte(`{"version":1,"progress":{"current_streak":1,"longest_streak":1,"total_completed":1,"last_completed_date":"2025-01-01","grace_period_active":false}}`)
	if !m.Restore(partial) {
		t.Fatal("Restore() = false, want true")
	}

	var progress models.Progress
	store.Get(constants.KeyProgress, &progress)
	if progress.CurrentStreak != 1 || progress.LastCompletedDate != "2025-01-01" {
		t.Errorf("progress not overwritten: %+v", progress)
	}

	var devotions []models.Devotion
	if !store.Get(constants.KeyUserDevotions, &devotions) || len(devotions) != 1 {
		t.Errorf("devotions changed by a document that did not carry them: %v", devotions)
	}
}

func TestRestoreEmptyCollectionOverwrites(t *testing.T) {
	store := seededStore()
	m := NewManager(store)

	// A present-but-empty collection clears the stored one.
	partial := []byte(`{"version":1,"user_devotions":[]}`)
	if !m.Restore(partial) {
		t.Fatal("Restore() = false, want true")
	}

	var devotions []models.Devotion
	store.Get(constants.KeyUserDevotions, &devotions)
	if len(devotions) != 0 {
		t.Errorf("len(devotions) = %d, want 0", len(devotions))
	}
}

func fileManager(t *testing.T) (*Manager, storage.Provider, string) {
	t.Helper()
	dir := t.TempDir()
	store := storage.NewJSONStore(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("store init: %v", err)
	}
	return NewManager(store), store, dir
}

func TestExportToFileAndList(t *testing.T) {
	m, store, dir := fileManager(t)
	store.Set(constants.KeyProgress, models.Progress{CurrentStreak: 2})

	path, err := m.ExportToFile(testNow)
	if err != nil {
		t.Fatalf("ExportToFile() returned unexpected error: %v", err)
	}
	wantDir := filepath.Join(dir, constants.BackupDirName)
	if filepath.Dir(path) != wantDir {
		t.Errorf("backup written to %s, want directory %s", path, wantDir)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() returned unexpected error: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("len(ListBackups()) = %d, want 1", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("listed path = %s, want %s", backups[0].Path, path)
	}
}

func TestExportToFileCollisionNames(t *testing.T) {
	m, _, _ := fileManager(t)

	first, err := m.ExportToFile(testNow)
	if err != nil {
		t.Fatalf("first export: %v", err)
	}
	second, err := m.ExportToFile(testNow)
	if err != nil {
		t.Fatalf("second export: %v", err)
	}
	third, err := m.ExportToFile(testNow)
	if err != nil {
		t.Fatalf("third export: %v", err)
	}

	if first == second || second == third || first == third {
		t.Errorf("backup names collide: %s, %s, %s", first, second, third)
	}
}

func TestRotateBackups(t *testing.T) {
	m, _, _ := fileManager(t)

	// One file per minute so names never collide.
	for i := 0; i < constants.MaxBackups+3; i++ {
		if _, err := m.ExportToFile(testNow.Add(time.Duration(i) * time.Minute)); err != nil {
			t.Fatalf("export %d: %v", i, err)
		}
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() returned unexpected error: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("len(ListBackups()) = %d, want %d", len(backups), constants.MaxBackups)
	}
	// Newest first; the oldest three were rotated away.
	wantNewest := testNow.Add(time.Duration(constants.MaxBackups+2) * time.Minute)
	if !backups[0].Timestamp.Equal(wantNewest) {
		t.Errorf("newest timestamp = %v, want %v", backups[0].Timestamp, wantNewest)
	}
}

func TestRestoreFromFile(t *testing.T) {
	m, store, _ := fileManager(t)
	store.Set(constants.KeyProgress, models.Progress{CurrentStreak: 7, LongestStreak: 7})

	path, err := m.ExportToFile(testNow)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	store.Set(constants.KeyProgress, models.Progress{CurrentStreak: 0})

	if err := m.RestoreFromFile(path, testNow.Add(time.Hour)); err != nil {
		t.Fatalf("RestoreFromFile() returned unexpected error: %v", err)
	}

	var progress models.Progress
	store.Get(constants.KeyProgress, &progress)
	if progress.CurrentStreak != 7 {
		t.Errorf("CurrentStreak = %d, want 7", progress.CurrentStreak)
	}

	// The pre-restore snapshot is a second backup file.
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() returned unexpected error: %v", err)
	}
	if len(backups) != 2 {
		t.Errorf("len(ListBackups()) = %d, want 2 (export plus pre-restore snapshot)", len(backups))
	}
}

func TestRestoreFromFileRejectsCorrupt(t *testing.T) {
	m, store, _ := fileManager(t)
	store.Set(constants.KeyProgress, models.Progress{CurrentStreak: 3})

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("not a backup"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := m.RestoreFromFile(bad, testNow); err == nil {
		t.Error("RestoreFromFile() on corrupt file = nil, want error")
	}

	var progress models.Progress
	store.Get(constants.KeyProgress, &progress)
	if progress.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3 (store must be untouched)", progress.CurrentStreak)
	}
}
