package models

import "time"

// Progress is the singleton streak ledger. It is mutated exclusively by the
// streak tracker and never deleted except by a full reset.
type Progress struct {
	CurrentStreak     int        `json:"current_streak"`
	LongestStreak     int        `json:"longest_streak"`
	TotalCompleted    int        `json:"total_completed"`
	LastCompletedDate string     `json:"last_completed_date,omitempty"` // YYYY-MM-DD; empty means no completions yet
	GracePeriodActive bool       `json:"grace_period_active"`
	GracePeriodEndsAt *time.Time `json:"grace_period_ends_at,omitempty"`
}

// Completion records a single devotion completion event. The log is
// append-only; entries survive deletion of the devotion they reference.
type Completion struct {
	DevotionID  string    `json:"devotion_id"`
	CompletedAt time.Time `json:"completed_at"`
	Date        string    `json:"date"` // YYYY-MM-DD derived from CompletedAt in local time
}
