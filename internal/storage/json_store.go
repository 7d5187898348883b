package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chrisjoiner1989/bible-steps/internal/constants"
	"github.com/chrisjoiner1989/bible-steps/internal/logger"
)

// JSONStore persists each namespaced key as its own JSON document inside a
// directory: <dir>/bible-steps-<key>.json. One file per key keeps restore's
// per-field overwrite semantics trivial and lets reset enumerate the
// namespace by filename.
type JSONStore struct {
	dir    string
	loaded bool
}

func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{dir: dir}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	s.loaded = true
	return nil
}

func (s *JSONStore) Load() error {
	info, err := os.Stat(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to access data directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path %s is not a directory", s.dir)
	}
	s.loaded = true
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) keyPath(key string) string {
	return filepath.Join(s.dir, namespaced(key)+".json")
}

func (s *JSONStore) Get(key string, out any) bool {
	if !s.loaded {
		logger.Warn("Read from unloaded storage", "key", key)
		return false
	}

	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read stored document", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("Stored document is malformed, falling back to defaults", "key", key, "error", err)
		return false
	}

	return true
}

func (s *JSONStore) Set(key string, value any) {
	if !s.loaded {
		logger.Warn("Write to unloaded storage dropped", "key", key)
		return
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		logger.Warn("Failed to serialize document", "key", key, "error", err)
		return
	}

	if err := os.WriteFile(s.keyPath(key), data, 0600); err != nil {
		logger.Warn("Failed to persist document", "key", key, "error", err)
	}
}

func (s *JSONStore) Delete(key string) {
	if err := os.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to delete stored document", "key", key, "error", err)
	}
}

func (s *JSONStore) Keys() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to enumerate storage keys", "error", err)
		}
		return nil
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, constants.Namespace) || !strings.HasSuffix(name, ".json") {
			continue
		}
		key := strings.TrimSuffix(strings.TrimPrefix(name, constants.Namespace), ".json")
		keys = append(keys, key)
	}
	return keys
}

func (s *JSONStore) Clear() {
	for _, key := range s.Keys() {
		s.Delete(key)
	}
}

func (s *JSONStore) GetConfigPath() string {
	return s.dir
}
