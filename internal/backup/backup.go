// Package backup serializes the whole persisted state into one versioned
// JSON document and restores from it. File management (timestamped names,
// rotation, pre-restore snapshots) wraps the document logic so users can keep
// a short history of exports beside the store.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/chrisjoiner1989/bible-steps/internal/constants"
	"github.com/chrisjoiner1989/bible-steps/internal/logger"
	"github.com/chrisjoiner1989/bible-steps/internal/models"
	"github.com/chrisjoiner1989/bible-steps/internal/storage"
)

// Document is a full snapshot of the persisted state. Fields are pointers so
// restore can distinguish an absent field (left untouched in the store) from
// a present-but-empty one (overwrites the store key wholesale).
type Document struct {
	Version            int                       `json:"version"`
	ExportedAt         time.Time                 `json:"exported_at"`
	Profile            *models.Profile           `json:"profile,omitempty"`
	Settings           *models.Settings          `json:"settings,omitempty"`
	NotificationPrefs  *models.NotificationPrefs `json:"notification_preferences,omitempty"`
	Progress           *models.Progress          `json:"progress,omitempty"`
	CompletedDevotions *[]models.Completion      `json:"completed_devotions,omitempty"`
	UserDevotions      *[]models.Devotion        `json:"user_devotions,omitempty"`
}

// Info describes one backup file on disk
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles export, restore, and reset against a store
type Manager struct {
	store     storage.Provider
	backupDir string
}

// NewManager creates a backup manager whose backup directory sits beside the
// store (inside a JSON store's directory, next to a SQLite store's file).
func NewManager(store storage.Provider) *Manager {
	configPath := store.GetConfigPath()
	base := configPath
	if info, err := os.Stat(configPath); err != nil || !info.IsDir() {
		base = filepath.Dir(configPath)
	}
	return &Manager{
		store:     store,
		backupDir: filepath.Join(base, constants.BackupDirName),
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// Export snapshots every persisted collection and record into one document.
// It is a pure read; nothing in the store changes.
func (m *Manager) Export(now time.Time) Document {
	var progress models.Progress
	m.store.Get(constants.KeyProgress, &progress)

	var completed []models.Completion
	m.store.Get(constants.KeyCompletedDevotions, &completed)
	if completed == nil {
		completed = []models.Completion{}
	}

	var devotions []models.Devotion
	m.store.Get(constants.KeyUserDevotions, &devotions)
	if devotions == nil {
		devotions = []models.Devotion{}
	}

	profile := storage.LoadProfile(m.store)
	settings := storage.LoadSettings(m.store)
	prefs := storage.LoadNotificationPrefs(m.store)

	return Document{
		Version:            constants.BackupVersion,
		ExportedAt:         now,
		Profile:            &profile,
		Settings:           &settings,
		NotificationPrefs:  &prefs,
		Progress:           &progress,
		CompletedDevotions: &completed,
		UserDevotions:      &devotions,
	}
}

// Restore overwrites store keys from a serialized document. Parsing happens
// before any write: malformed input returns false with the store unmodified.
// A well-formed document restores only the fields it carries, each one
// wholesale (no merging); absent fields leave the store untouched.
func (m *Manager) Restore(data []byte) bool {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("Backup document is malformed, nothing restored", "error", err)
		return false
	}

	if doc.Profile != nil {
		m.store.Set(constants.KeyProfile, doc.Profile)
	}
	if doc.Settings != nil {
		m.store.Set(constants.KeySettings, doc.Settings)
	}
	if doc.NotificationPrefs != nil {
		m.store.Set(constants.KeyNotificationPrefs, doc.NotificationPrefs)
	}
	if doc.Progress != nil {
		m.store.Set(constants.KeyProgress, doc.Progress)
	}
	if doc.CompletedDevotions != nil {
		m.store.Set(constants.KeyCompletedDevotions, doc.CompletedDevotions)
	}
	if doc.UserDevotions != nil {
		m.store.Set(constants.KeyUserDevotions, doc.UserDevotions)
	}

	logger.Info("Restored backup", "version", doc.Version, "exported_at", doc.ExportedAt)
	return true
}

// Reset deletes every namespaced key. Irreversible; callers are expected to
// have offered an export first.
func (m *Manager) Reset() {
	m.store.Clear()
	logger.Info("All user data reset")
}

func (m *Manager) ensureBackupDir() error {
	return os.MkdirAll(m.backupDir, 0700)
}

// ExportToFile writes the current snapshot to a timestamped file in the
// backup directory and rotates old backups beyond the retention limit.
func (m *Manager) ExportToFile(now time.Time) (string, error) {
	return m.exportToFile(now, false)
}

func (m *Manager) exportToFile(now time.Time, skipRotation bool) (string, error) {
	if err := m.ensureBackupDir(); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	doc := m.Export(now)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize backup: %w", err)
	}

	// Minute precision first; fall back to seconds, then a counter, when a
	// name is already taken.
	timestamp := now.Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+constants.BackupFileSuffix)
	if _, err := os.Stat(backupPath); err == nil {
		timestamp = now.Format("20060102-150405")
		backupPath = filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+constants.BackupFileSuffix)

		counter := 1
		for {
			if _, err := os.Stat(backupPath); os.IsNotExist(err) {
				break
			}
			name := fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter, constants.BackupFileSuffix)
			backupPath = filepath.Join(m.backupDir, name)
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
		}
	}

	if err := os.WriteFile(backupPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}

	return backupPath, nil
}

// ListBackups returns all backups in the backup directory, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, constants.BackupFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, constants.BackupFileSuffix)

		// Strip a trailing collision counter; 4 and 6 digit tails are the
		// time component itself.
		parts := strings.Split(timestampStr, "-")
		if len(parts) > 2 {
			last := parts[len(parts)-1]
			if len(last) != 4 && len(last) != 6 {
				isCounter := true
				for _, c := range last {
					if c < '0' || c > '9' {
						isCounter = false
						break
					}
				}
				if isCounter {
					timestampStr = strings.Join(parts[:len(parts)-1], "-")
				}
			}
		}

		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) <= constants.MaxBackups {
		return nil
	}

	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// RestoreFromFile restores the store from a backup file. The file is parsed
// before anything is written, and the current state is snapshotted to a new
// backup first so a bad restore can be undone.
func (m *Manager) RestoreFromFile(path string, now time.Time) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	// skipRotation so the safety snapshot cannot rotate away the file the
	// user is restoring from.
	snapshot, err := m.exportToFile(now, true)
	if err != nil {
		return fmt.Errorf("failed to snapshot current data before restore: %w", err)
	}
	logger.Info("Snapshotted current data before restore", "path", snapshot)

	if !m.Restore(data) {
		return fmt.Errorf("backup file is corrupted or invalid")
	}

	return nil
}
