package models

import "github.com/chrisjoiner1989/bible-steps/internal/constants"

// Profile holds locally stored identity details for display purposes only.
// This is not an account; there is no server and no authentication.
type Profile struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	JoinDate    string `json:"join_date,omitempty"` // YYYY-MM-DD
}

// QuietHours is a daily window during which reminders are suppressed
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // HH:MM
	End     string `json:"end"`   // HH:MM
}

// NotificationPrefs holds reminder preferences. The application stores these
// for export and future use; it does not run a notification daemon.
type NotificationPrefs struct {
	Enabled          bool       `json:"enabled"`
	Time             string     `json:"time"` // HH:MM daily reminder
	GraceBased       bool       `json:"grace_based"`
	QuietHours       QuietHours `json:"quiet_hours"`
	MentalHealthMode bool       `json:"mental_health_mode"`
}

// DefaultNotificationPrefs returns the preferences applied when none have been saved
func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{
		Enabled:    false,
		Time:       constants.DefaultReminderTime,
		GraceBased: true,
		QuietHours: QuietHours{
			Enabled: true,
			Start:   constants.DefaultQuietHoursStart,
			End:     constants.DefaultQuietHoursEnd,
		},
	}
}
