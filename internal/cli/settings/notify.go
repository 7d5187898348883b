package settings

import (
	"fmt"

	"github.com/chrisjoiner1989/bible-steps/internal/cli"
	"github.com/chrisjoiner1989/bible-steps/internal/storage"
	"github.com/chrisjoiner1989/bible-steps/internal/utils"
)

// NotifyCmd manages reminder preferences. The preferences are stored and
// exported with backups; no notification daemon runs.
type NotifyCmd struct {
	List bool `help:"List current notification preferences."`

	Enabled          *bool   `help:"Enable or disable the daily reminder."`
	Time             *string `help:"Daily reminder time (HH:MM)."`
	GraceBased       *bool   `help:"Send an extra reminder while a grace period is active."`
	QuietHours       *bool   `help:"Enable or disable quiet hours."`
	QuietStart       *string `help:"Quiet hours start (HH:MM)."`
	QuietEnd         *string `help:"Quiet hours end (HH:MM)."`
	MentalHealthMode *bool   `help:"Use gentler reminder wording."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	prefs := storage.LoadNotificationPrefs(ctx.Store)

	if c.List {
		fmt.Println("Notification Preferences:")
		fmt.Printf("  Enabled:            %v\n", prefs.Enabled)
		fmt.Printf("  Reminder Time:      %s\n", prefs.Time)
		fmt.Printf("  Grace-Based:        %v\n", prefs.GraceBased)
		fmt.Printf("  Quiet Hours:        %v (%s-%s)\n", prefs.QuietHours.Enabled, prefs.QuietHours.Start, prefs.QuietHours.End)
		fmt.Printf("  Mental Health Mode: %v\n", prefs.MentalHealthMode)
		return nil
	}

	updated := false
	if c.Enabled != nil {
		prefs.Enabled = *c.Enabled
		updated = true
	}
	if c.Time != nil {
		if !utils.ValidateClockFormat(*c.Time) {
			return fmt.Errorf("invalid time format: %s (expected HH:MM)", *c.Time)
		}
		prefs.Time = *c.Time
		updated = true
	}
	if c.GraceBased != nil {
		prefs.GraceBased = *c.GraceBased
		updated = true
	}
	if c.QuietHours != nil {
		prefs.QuietHours.Enabled = *c.QuietHours
		updated = true
	}
	if c.QuietStart != nil {
		if !utils.ValidateClockFormat(*c.QuietStart) {
			return fmt.Errorf("invalid time format: %s (expected HH:MM)", *c.QuietStart)
		}
		prefs.QuietHours.Start = *c.QuietStart
		updated = true
	}
	if c.QuietEnd != nil {
		if !utils.ValidateClockFormat(*c.QuietEnd) {
			return fmt.Errorf("invalid time format: %s (expected HH:MM)", *c.QuietEnd)
		}
		prefs.QuietHours.End = *c.QuietEnd
		updated = true
	}
	if c.MentalHealthMode != nil {
		prefs.MentalHealthMode = *c.MentalHealthMode
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view preferences or flags to update them.")
		return nil
	}

	storage.SaveNotificationPrefs(ctx.Store, prefs)
	fmt.Println("Notification preferences updated.")
	return nil
}
