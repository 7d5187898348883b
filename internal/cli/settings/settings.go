package settings

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/chrisjoiner1989/bible-steps/internal/cli"
	"github.com/chrisjoiner1989/bible-steps/internal/logger"
	"github.com/chrisjoiner1989/bible-steps/internal/models"
	"github.com/chrisjoiner1989/bible-steps/internal/storage"
	"github.com/chrisjoiner1989/bible-steps/internal/utils"
	"github.com/chrisjoiner1989/bible-steps/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme           *string `help:"UI theme (light|dark|system)."`
	Translation     *string `help:"Default Bible translation."`
	ReadingTimeGoal *int    `help:"Daily reading time goal in minutes."`
	AutoAdvance     *bool   `help:"Automatically advance to the next scheduled devotion."`
	HideCompleted   *bool   `help:"Hide completed devotions in listings."`
	UpcomingCount   *int    `help:"Default number of upcoming devotions to show."`
	Timezone        *string `help:"IANA timezone name, or 'Local'."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings := storage.LoadSettings(ctx.Store)

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Theme:              %s\n", settings.Theme)
		fmt.Printf("  Translation:        %s\n", settings.DefaultTranslation)
		fmt.Printf("  Reading Time Goal:  %d min\n", settings.ReadingTimeGoalMin)
		fmt.Printf("  Auto Advance:       %v\n", settings.AutoAdvance)
		fmt.Printf("  Hide Completed:     %v\n", settings.HideCompleted)
		fmt.Printf("  Upcoming Count:     %d\n", settings.UpcomingCount)
		fmt.Printf("  Timezone:           %s\n", settings.Timezone)
		return nil
	}

	before, err := hashstructure.Hash(settings, hashstructure.FormatV2, nil)
	if err != nil {
		return fmt.Errorf("failed to hash settings: %w", err)
	}

	if c.Theme != nil {
		theme := models.Theme(*c.Theme)
		if theme != models.ThemeLight && theme != models.ThemeDark && theme != models.ThemeSystem {
			return fmt.Errorf("invalid theme: %s (expected light, dark, or system)", *c.Theme)
		}
		settings.Theme = theme
	}
	if c.Translation != nil {
		translation := models.Translation(*c.Translation)
		if !validation.ValidTranslation(translation) {
			return fmt.Errorf("invalid translation: %s", *c.Translation)
		}
		settings.DefaultTranslation = translation
	}
	if c.ReadingTimeGoal != nil {
		if *c.ReadingTimeGoal < 1 {
			return fmt.Errorf("reading time goal must be at least 1 minute")
		}
		settings.ReadingTimeGoalMin = *c.ReadingTimeGoal
	}
	if c.AutoAdvance != nil {
		settings.AutoAdvance = *c.AutoAdvance
	}
	if c.HideCompleted != nil {
		settings.HideCompleted = *c.HideCompleted
	}
	if c.UpcomingCount != nil {
		if *c.UpcomingCount < 1 {
			return fmt.Errorf("upcoming count must be at least 1")
		}
		settings.UpcomingCount = *c.UpcomingCount
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
	}

	after, err := hashstructure.Hash(settings, hashstructure.FormatV2, nil)
	if err != nil {
		return fmt.Errorf("failed to hash settings: %w", err)
	}

	if before == after {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	storage.SaveSettings(ctx.Store, settings)
	logger.Debug("Settings updated", "hash", after)
	fmt.Println("Settings updated successfully.")
	return nil
}
