package storage

import (
	"encoding/json"

	"github.com/chrisjoiner1989/bible-steps/internal/logger"
)

// MemoryStore is an in-memory Provider used by tests. Values round-trip
// through JSON so stored documents behave like the file-backed providers
// (no shared references, same decode failures).
type MemoryStore struct {
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Init() error  { return nil }
func (s *MemoryStore) Load() error  { return nil }
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Get(key string, out any) bool {
	data, ok := s.data[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("Stored document is malformed, falling back to defaults", "key", key, "error", err)
		return false
	}
	return true
}

func (s *MemoryStore) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to serialize document", "key", key, "error", err)
		return
	}
	s.data[key] = data
}

func (s *MemoryStore) Delete(key string) {
	delete(s.data, key)
}

func (s *MemoryStore) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	return keys
}

func (s *MemoryStore) Clear() {
	s.data = make(map[string][]byte)
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}
