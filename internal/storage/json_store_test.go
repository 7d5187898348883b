package storage

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/chrisjoiner1989/bible-steps/internal/constants"
)

func setupJSONStore(t *testing.T) (*JSONStore, string) {
	t.Helper()
	dir := t.TempDir()
	store := NewJSONStore(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() returned unexpected error: %v", err)
	}
	return store, dir
}

func TestJSONStoreLoadUninitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "does-not-exist"))
	if err := store.Load(); err == nil {
		t.Error("Load() on missing directory = nil, want error")
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store, dir := setupJSONStore(t)

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

	// The document lands in its own namespaced file.
	wantFile := filepath.Join(dir, constants.Namespace+"progress.json")
	if _, err := os.Stat(wantFile); err != nil {
		t.Errorf("expected file %s: %v", wantFile, err)
	}
}

func TestJSONStoreGetMissingKey(t *testing.T) {
	store, _ := setupJSONStore(t)

	var out map[string]any
	if store.Get("missing", &out) {
		t.Error("Get(missing) = true, want false")
	}
}

func TestJSONStoreGetMalformedDocument(t *testing.T) {
	store, dir := setupJSONStore(t)

	path := filepath.Join(dir, constants.Namespace+"progress.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out map[string]any
	if store.Get("progress", &out) {
		t.Error("Get() on malformed document = true, want false")
	}
}

func TestJSONStoreDeleteAbsentKey(t *testing.T) {
	store, _ := setupJSONStore(t)
	store.Delete("never-stored")
}

func TestJSONStoreKeysAndClear(t *testing.T) {
	store, dir := setupJSONStore(t)

	store.Set("progress", 1)
	store.Set("settings", 2)

	// Files outside the namespace are invisible to Keys and survive Clear.
	foreign := filepath.Join(dir, "other-app.json")
	if err := os.WriteFile(foreign, []byte("{}"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	keys := store.Keys()
	sort.Strings(keys)
	want := []string{"progress", "settings"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	store.Clear()
	if got := store.Keys(); len(got) != 0 {
		t.Errorf("Keys() after Clear = %v, want empty", got)
	}
	if _, err := os.Stat(foreign); err != nil {
		t.Errorf("Clear removed a file outside the namespace: %v", err)
	}
}

func TestJSONStoreUnloadedIsSoftFail(t *testing.T) {
	store := NewJSONStore(t.TempDir())

	store.Set("progress", 1)
	var out int
	if store.Get("progress", &out) {
		t.Error("Get() before Load = true, want false")
	}
}
