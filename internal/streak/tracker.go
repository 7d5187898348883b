// Package streak implements the day-streak state machine: consecutive-day
// counting, the 24h grace window after exactly one missed day, and the
// time-based decay applied when the application was closed while days passed.
//
// All streak math compares calendar date keys (YYYY-MM-DD in the user's
// timezone), never elapsed durations. Every operation takes an explicit now
// so callers and tests control the clock.
package streak

import (
	"time"

	"github.com/chrisjoiner1989/bible-steps/internal/constants"
	"github.com/chrisjoiner1989/bible-steps/internal/logger"
	"github.com/chrisjoiner1989/bible-steps/internal/models"
	"github.com/chrisjoiner1989/bible-steps/internal/storage"
	"github.com/chrisjoiner1989/bible-steps/internal/utils"
)

// Tracker owns the progress ledger and the completion log. It is the only
// writer of the ledger.
type Tracker struct {
	store storage.Provider
}

func NewTracker(store storage.Provider) *Tracker {
	return &Tracker{store: store}
}

// Progress returns the current ledger, substituting zero-value defaults when
// nothing has been saved. An overdue grace window is expired lazily on read,
// so a ledger read after a long absence never reports a streak the user has
// already lost.
func (t *Tracker) Progress(now time.Time) models.Progress {
	var p models.Progress
	t.store.Get(constants.KeyProgress, &p)

	if p.GracePeriodActive && p.GracePeriodEndsAt != nil && now.After(*p.GracePeriodEndsAt) {
		logger.Info("Grace period expired, resetting streak",
			"ended_at", p.GracePeriodEndsAt, "lost_streak", p.CurrentStreak)
		p.CurrentStreak = 0
		p.GracePeriodActive = false
		p.GracePeriodEndsAt = nil
		t.store.Set(constants.KeyProgress, p)
	}

	// An active grace window must carry an end time; a document that lost it
	// cannot be honored.
	if p.GracePeriodActive && p.GracePeriodEndsAt == nil {
		p.GracePeriodActive = false
		t.store.Set(constants.KeyProgress, p)
	}

	return p
}

// Completions returns the append-only completion log, oldest first.
func (t *Tracker) Completions() []models.Completion {
	var entries []models.Completion
	t.store.Get(constants.KeyCompletedDevotions, &entries)
	return entries
}

// HasCompletedToday reports whether any completion was logged on now's
// calendar day.
func (t *Tracker) HasCompletedToday(now time.Time) bool {
	today := utils.DateKey(now)
	for _, entry := range t.Completions() {
		if entry.Date == today {
			return true
		}
	}
	return false
}

// IsDevotionCompleted reports whether the given devotion was completed on
// now's calendar day.
func (t *Tracker) IsDevotionCompleted(devotionID string, now time.Time) bool {
	today := utils.DateKey(now)
	for _, entry := range t.Completions() {
		if entry.DevotionID == devotionID && entry.Date == today {
			return true
		}
	}
	return false
}

// RecordCompletion logs a completion event and advances the streak.
//
// The entry is always appended and TotalCompleted always increments, but the
// streak only advances on the first completion of a calendar day; repeat
// completions on the same day touch the count and nothing else.
//
// Advancement rules, in order: a first-ever completion starts the streak at
// one; a completion the day after the last one extends it; a completion
// inside an unexpired grace window extends it across the gap; anything else
// restarts it at one. Advancing always stamps today, bumps the longest-streak
// high-water mark, and closes any grace window.
func (t *Tracker) RecordCompletion(devotionID string, now time.Time) models.Progress {
	today := utils.DateKey(now)
	yesterday := utils.DateKeyDaysAgo(now, 1)

	entries := t.Completions()
	completedToday := false
	for _, entry := range entries {
		if entry.Date == today {
			completedToday = true
			break
		}
	}

	entries = append(entries, models.Completion{
		DevotionID:  devotionID,
		CompletedAt: now,
		Date:        today,
	})
	t.store.Set(constants.KeyCompletedDevotions, entries)

	p := t.Progress(now)
	p.TotalCompleted++

	advanced := true
	switch {
	case completedToday || p.LastCompletedDate == today:
		advanced = false
	case p.LastCompletedDate == "":
		p.CurrentStreak = 1
	case p.LastCompletedDate == yesterday:
		p.CurrentStreak++
	case p.GracePeriodActive:
		// The grace window forgives the gap regardless of its width; the
		// prior streak continues instead of restarting.
		p.CurrentStreak++
	default:
		p.CurrentStreak = 1
	}

	if advanced {
		if p.CurrentStreak > p.LongestStreak {
			p.LongestStreak = p.CurrentStreak
		}
		p.LastCompletedDate = today
		p.GracePeriodActive = false
		p.GracePeriodEndsAt = nil
	}

	t.store.Set(constants.KeyProgress, p)
	logger.Debug("Recorded completion",
		"devotion", devotionID, "date", today, "streak", p.CurrentStreak, "advanced", advanced)
	return p
}

// Reconcile applies time-based transitions that no user action triggers:
// grace activation after exactly one missed day, streak loss once the grace
// window lapses, and streak loss for arbitrarily stale state. It must be safe
// to call redundantly; nothing tracks whether it already ran.
func (t *Tracker) Reconcile(now time.Time) models.Progress {
	var p models.Progress
	if !t.store.Get(constants.KeyProgress, &p) {
		return p
	}

	if p.LastCompletedDate == "" {
		return p
	}

	today := utils.DateKey(now)
	yesterday := utils.DateKeyDaysAgo(now, 1)
	twoDaysAgo := utils.DateKeyDaysAgo(now, 2)

	// Streak is current; nothing to do.
	if p.LastCompletedDate == today || p.LastCompletedDate == yesterday {
		return p
	}

	// Exactly one missed day: open the grace window instead of resetting.
	// The window is anchored to when the miss was noticed, not to the
	// missed calendar day.
	if p.LastCompletedDate == twoDaysAgo && !p.GracePeriodActive {
		endsAt := now.Add(constants.GracePeriodDuration)
		p.GracePeriodActive = true
		p.GracePeriodEndsAt = &endsAt
		t.store.Set(constants.KeyProgress, p)
		logger.Info("Grace period activated", "ends_at", endsAt, "streak", p.CurrentStreak)
		return p
	}

	if p.GracePeriodActive {
		if p.GracePeriodEndsAt == nil || now.After(*p.GracePeriodEndsAt) {
			logger.Info("Grace period expired, resetting streak", "lost_streak", p.CurrentStreak)
			p.CurrentStreak = 0
			p.GracePeriodActive = false
			p.GracePeriodEndsAt = nil
			t.store.Set(constants.KeyProgress, p)
		}
		return p
	}

	// More than two days lapsed and grace never activated. Reconcile may not
	// have run on the days in between, so resolve the whole gap in one call.
	if p.CurrentStreak != 0 || p.GracePeriodEndsAt != nil {
		logger.Info("Streak lapsed without grace", "last_completed", p.LastCompletedDate,
			"lost_streak", p.CurrentStreak)
		p.CurrentStreak = 0
		p.GracePeriodEndsAt = nil
		t.store.Set(constants.KeyProgress, p)
	}
	return p
}
