package constants

import "time"

const (
	AppName = "steps"
	Version = "v0.3.0"

	// Namespace is the prefix shared by every persisted key. Reset enumerates
	// keys by this prefix, so nothing outside the namespace is ever touched.
	Namespace = "bible-steps-"

	// Storage keys (unprefixed; the store applies the namespace).
	KeyProgress           = "progress"
	KeyCompletedDevotions = "completed-devotions"
	KeyUserDevotions      = "user-devotions"
	KeyProfile            = "profile"
	KeySettings           = "settings"
	KeyNotificationPrefs  = "notification-preferences"

	// GracePeriodDuration is the forgiveness window granted after exactly one
	// missed day. Anchored to when the miss is detected, not to the missed day.
	GracePeriodDuration = 24 * time.Hour

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "bible-steps-"
	BackupFileSuffix = ".json"
	BackupVersion    = 1
)
