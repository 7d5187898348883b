package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/chrisjoiner1989/bible-steps/internal/constants"
	"github.com/chrisjoiner1989/bible-steps/internal/logger"
)

// SQLiteStore is the key-value store backed by a single SQLite database.
// Values are stored as JSON text in a two-column kv table, so both providers
// share one wire shape and backups restore identically against either.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to access database: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	// Init may not have run against an externally supplied database file.
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to verify kv table: %w", err)
	}

	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) Get(key string, out any) bool {
	if s.db == nil {
		logger.Warn("Read from unloaded storage", "key", key)
		return false
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", namespaced(key)).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Warn("Failed to read stored document", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(value), out); err != nil {
		logger.Warn("Stored document is malformed, falling back to defaults", "key", key, "error", err)
		return false
	}

	return true
}

func (s *SQLiteStore) Set(key string, value any) {
	if s.db == nil {
		logger.Warn("Write to unloaded storage dropped", "key", key)
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to serialize document", "key", key, "error", err)
		return
	}

	_, err = s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		namespaced(key), string(data),
	)
	if err != nil {
		logger.Warn("Failed to persist document", "key", key, "error", err)
	}
}

func (s *SQLiteStore) Delete(key string) {
	if s.db == nil {
		return
	}
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", namespaced(key)); err != nil {
		logger.Warn("Failed to delete stored document", "key", key, "error", err)
	}
}

func (s *SQLiteStore) Keys() []string {
	if s.db == nil {
		return nil
	}

	rows, err := s.db.Query("SELECT key FROM kv WHERE key LIKE ?", constants.Namespace+"%")
	if err != nil {
		logger.Warn("Failed to enumerate storage keys", "error", err)
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			logger.Warn("Failed to scan storage key", "error", err)
			continue
		}
		keys = append(keys, strings.TrimPrefix(key, constants.Namespace))
	}
	if err := rows.Err(); err != nil {
		logger.Warn("Failed to enumerate storage keys", "error", err)
	}
	return keys
}

func (s *SQLiteStore) Clear() {
	if s.db == nil {
		return
	}
	if _, err := s.db.Exec("DELETE FROM kv WHERE key LIKE ?", constants.Namespace+"%"); err != nil {
		logger.Warn("Failed to clear storage", "error", err)
	}
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
