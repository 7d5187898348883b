package models

import "github.com/chrisjoiner1989/bible-steps/internal/constants"

// Theme is the UI color scheme preference
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Settings holds user-adjustable application preferences
type Settings struct {
	Theme              Theme              `json:"theme"`
	DefaultTranslation Translation        `json:"default_translation"`
	ReadingTimeGoalMin int                `json:"reading_time_goal_min"`
	AutoAdvance        bool               `json:"auto_advance"`
	HideCompleted      bool               `json:"hide_completed"`
	UpcomingCount      int                `json:"upcoming_count"`
	FavoriteCategories []DevotionCategory `json:"favorite_categories,omitempty"`
	Timezone           string             `json:"timezone"`
}

// DefaultSettings returns the settings applied when none have been saved
func DefaultSettings() Settings {
	return Settings{
		Theme:              ThemeSystem,
		DefaultTranslation: constants.DefaultTranslation,
		ReadingTimeGoalMin: constants.DefaultReadingTimeGoal,
		AutoAdvance:        false,
		HideCompleted:      false,
		UpcomingCount:      constants.DefaultUpcomingCount,
		Timezone:           constants.DefaultTimezone,
	}
}
