package storage

import (
	"path/filepath"
	"testing"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "steps.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() returned unexpected error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreLoadUninitialized(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on missing database = nil, want error")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := setupSQLiteStore(t)

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	store.Set("progress", record{Name: "x", Count: 3})

	var got record
	if !store.Get("progress", &got) {
		t.Fatal("Get() = false, want true")
	}
	if got.Name != "x" || got.Count != 3 {
		t.Errorf("Get() = %+v, want {x 3}", got)
	}
}

func TestSQLiteStoreUpsert(t *testing.T) {
	store := setupSQLiteStore(t)

	store.Set("progress", 1)
	store.Set("progress", 2)

	var got int
	if !store.Get("progress", &got) {
		t.Fatal("Get() = false, want true")
	}
	if got != 2 {
		t.Errorf("Get() = %d, want 2 (second write wins)", got)
	}
	if keys := store.Keys(); len(keys) != 1 {
		t.Errorf("Keys() = %v, want one entry", keys)
	}
}

func TestSQLiteStoreDeleteAndClear(t *testing.T) {
	store := setupSQLiteStore(t)

	store.Set("a", 1)
	store.Set("b", 2)

	store.Delete("a")
	var out int
	if store.Get("a", &out) {
		t.Error("Get(a) after Delete = true, want false")
	}

	store.Delete("never-stored")

	store.Clear()
	if keys := store.Keys(); len(keys) != 0 {
		t.Errorf("Keys() after Clear = %v, want empty", keys)
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.db")

	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() returned unexpected error: %v", err)
	}
	store.Set("progress", 42)
	if err := store.Close(); err != nil {
		t.Fatalf("Close() returned unexpected error: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	defer reopened.Close()

	var got int
	if !reopened.Get("progress", &got) {
		t.Fatal("Get() after reopen = false, want true")
	}
	if got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}
}
