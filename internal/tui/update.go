package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		// A devotion being read swallows every key except quit.
		if m.reading != nil {
			if key.Matches(msg, m.keys.Quit) {
				m.quitting = true
				return m, tea.Quit
			}
			m.reading = nil
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusMsg = ""

		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusMsg = ""

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Up):
			if m.state == StateDevotions && m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.state == StateDevotions && m.cursor < len(m.devotions)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Enter):
			if m.state == StateDevotions && len(m.devotions) > 0 {
				devotion := m.devotions[m.cursor]
				m.reading = &devotion
			}

		case key.Matches(msg, m.keys.Complete):
			m.completeSelected()
		}
	}

	return m, nil
}

// completeSelected marks the relevant devotion complete: the selected one on
// the devotions tab, today's devotion elsewhere.
func (m *Model) completeSelected() {
	now := m.now()

	var id, title string
	if m.state == StateDevotions && len(m.devotions) > 0 {
		id = m.devotions[m.cursor].ID
		title = m.devotions[m.cursor].Title
	} else if devotion, ok := m.catalog.Today(now); ok {
		id = devotion.ID
		title = devotion.Title
	} else {
		m.statusMsg = "No devotions to complete."
		return
	}

	already := m.tracker.HasCompletedToday(now)
	progress := m.tracker.RecordCompletion(id, now)
	m.refresh(now)

	if already {
		m.statusMsg = fmt.Sprintf("Logged %q again; streak stays at %d.", title, progress.CurrentStreak)
	} else {
		m.statusMsg = fmt.Sprintf("Completed %q! Streak: %d day(s).", title, progress.CurrentStreak)
	}
}
