package storage

import (
	"github.com/chrisjoiner1989/bible-steps/internal/constants"
	"github.com/chrisjoiner1989/bible-steps/internal/models"
)

// Typed accessors for the singleton records. Absent or unreadable documents
// fall back to defaults, per the store's soft-fail contract.

func LoadSettings(p Provider) models.Settings {
	settings := models.DefaultSettings()
	p.Get(constants.KeySettings, &settings)
	return settings
}

func SaveSettings(p Provider, settings models.Settings) {
	p.Set(constants.KeySettings, settings)
}

func LoadProfile(p Provider) models.Profile {
	var profile models.Profile
	p.Get(constants.KeyProfile, &profile)
	return profile
}

func SaveProfile(p Provider, profile models.Profile) {
	p.Set(constants.KeyProfile, profile)
}

func LoadNotificationPrefs(p Provider) models.NotificationPrefs {
	prefs := models.DefaultNotificationPrefs()
	p.Get(constants.KeyNotificationPrefs, &prefs)
	return prefs
}

func SaveNotificationPrefs(p Provider, prefs models.NotificationPrefs) {
	p.Set(constants.KeyNotificationPrefs, prefs)
}
