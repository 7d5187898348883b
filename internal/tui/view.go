package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/chrisjoiner1989/bible-steps/internal/models"
)

var tabNames = [tabCount]string{"Today", "Devotions", "Progress"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.reading != nil {
		return docStyle.Render(m.viewReader(*m.reading))
	}

	var sections []string
	sections = append(sections, m.viewTabs())

	now := m.now()
	switch m.state {
	case StateToday:
		sections = append(sections, m.viewToday(now))
	case StateDevotions:
		sections = append(sections, m.viewDevotions(now))
	case StateProgress:
		sections = append(sections, m.viewProgress(now))
	}

	if m.statusMsg != "" {
		sections = append(sections, statusStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if SessionState(i) == m.state {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m Model) viewToday(now time.Time) string {
	devotion, ok := m.catalog.Today(now)
	if !ok {
		return dimStyle.Render("No devotions yet. Press tab and add some with 'steps devotion add'.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(devotion.Title) + "\n")
	if devotion.Scripture.Book != "" {
		b.WriteString(scriptureStyle.Render(devotion.Scripture.Reference()) + "\n")
	}
	if devotion.ReadingTimeMin > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d min read", devotion.ReadingTimeMin)) + "\n")
	}
	b.WriteString("\n")

	if m.tracker.IsDevotionCompleted(devotion.ID, now) {
		b.WriteString(doneStyle.Render("✓ Completed today") + "\n")
	} else {
		b.WriteString(dimStyle.Render("Press c to mark complete") + "\n")
	}
	return b.String()
}

func (m Model) viewDevotions(now time.Time) string {
	if len(m.devotions) == 0 {
		return dimStyle.Render("No devotions in your catalog.")
	}

	var b strings.Builder
	for i, devotion := range m.devotions {
		line := devotionLine(devotion)
		if m.tracker.IsDevotionCompleted(devotion.ID, now) {
			line = doneStyle.Render("✓ ") + line
		} else {
			line = "  " + line
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func devotionLine(devotion models.Devotion) string {
	when := "unscheduled"
	if devotion.Scheduled() {
		when = devotion.ScheduledDate
	}
	return fmt.Sprintf("%s  %s  %s", when, devotion.Title, dimStyle.Render(string(devotion.Category)))
}

func (m Model) viewProgress(now time.Time) string {
	var b strings.Builder
	b.WriteString(streakStyle.Render(fmt.Sprintf("🔥 Current streak: %d day(s)", m.progress.CurrentStreak)) + "\n")
	b.WriteString(fmt.Sprintf("Longest streak: %d day(s)\n", m.progress.LongestStreak))
	b.WriteString(fmt.Sprintf("Total completed: %d\n", m.progress.TotalCompleted))
	if m.progress.LastCompletedDate != "" {
		b.WriteString(fmt.Sprintf("Last completed: %s\n", m.progress.LastCompletedDate))
	}
	if m.progress.GracePeriodActive && m.progress.GracePeriodEndsAt != nil {
		remaining := m.progress.GracePeriodEndsAt.Sub(now).Round(time.Minute)
		b.WriteString(graceStyle.Render(fmt.Sprintf("⚠ Grace period active: %s left to keep your streak", remaining)) + "\n")
	}
	return b.String()
}

func (m Model) viewReader(devotion models.Devotion) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(devotion.Title) + "\n")
	if devotion.Scripture.Book != "" {
		b.WriteString(scriptureStyle.Render(devotion.Scripture.Reference()) + "\n")
	}
	b.WriteString("\n")
	if devotion.Scripture.Text != "" {
		b.WriteString(scriptureStyle.Render(devotion.Scripture.Text) + "\n\n")
	}
	if devotion.Body != "" {
		b.WriteString(devotion.Body + "\n\n")
	}
	if devotion.ReflectionPrompt != "" {
		b.WriteString(titleStyle.Render("Reflect") + "\n" + devotion.ReflectionPrompt + "\n\n")
	}
	if devotion.ActionStep != "" {
		b.WriteString(titleStyle.Render("Act") + "\n" + devotion.ActionStep + "\n\n")
	}
	b.WriteString(dimStyle.Render("Press any key to go back"))
	return b.String()
}
