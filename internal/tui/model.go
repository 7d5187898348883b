package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chrisjoiner1989/bible-steps/internal/catalog"
	"github.com/chrisjoiner1989/bible-steps/internal/models"
	"github.com/chrisjoiner1989/bible-steps/internal/storage"
	"github.com/chrisjoiner1989/bible-steps/internal/streak"
	"github.com/chrisjoiner1989/bible-steps/internal/utils"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateDevotions
	StateProgress

	tabCount = 3
)

type Model struct {
	store   storage.Provider
	tracker *streak.Tracker
	catalog *catalog.Catalog

	state     SessionState
	keys      KeyMap
	help      help.Model
	devotions []models.Devotion
	cursor    int
	reading   *models.Devotion
	progress  models.Progress
	statusMsg string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, tracker *streak.Tracker, cat *catalog.Catalog) Model {
	now := currentTime(store)
	tracker.Reconcile(now)

	return Model{
		store:     store,
		tracker:   tracker,
		catalog:   cat,
		state:     StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		devotions: cat.List(),
		progress:  tracker.Progress(now),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// now returns the current time in the configured timezone.
func (m Model) now() time.Time {
	return currentTime(m.store)
}

func currentTime(store storage.Provider) time.Time {
	settings := storage.LoadSettings(store)
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return time.Now()
	}
	return now
}

// refresh re-reads the collections the views render.
func (m *Model) refresh(now time.Time) {
	m.devotions = m.catalog.List()
	m.progress = m.tracker.Progress(now)
	if m.cursor >= len(m.devotions) {
		m.cursor = len(m.devotions) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
