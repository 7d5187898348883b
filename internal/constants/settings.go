package constants

const (
	// Default settings values
	DefaultTranslation     = "NIV"
	DefaultReadingTimeGoal = 5
	DefaultUpcomingCount   = 3
	DefaultTimezone        = "Local" // Use system local timezone by default

	// Notification preference defaults
	DefaultReminderTime    = "08:00"
	DefaultQuietHoursStart = "22:00"
	DefaultQuietHoursEnd   = "08:00"
)
