package cli

import (
	"fmt"
)

type CompleteCmd struct {
	ID string `arg:"" optional:"" help:"Devotion ID (default: today's devotion)."`
}

func (c *CompleteCmd) Run(ctx *Context) error {
	now := ctx.Now()
	ctx.Tracker.Reconcile(now)

	id := c.ID
	if id == "" {
		devotion, ok := ctx.Catalog.Today(now)
		if !ok {
			return fmt.Errorf("no devotions in your catalog to complete")
		}
		id = devotion.ID
	}

	alreadyToday := ctx.Tracker.HasCompletedToday(now)
	progress := ctx.Tracker.RecordCompletion(id, now)

	if alreadyToday {
		fmt.Printf("Logged another completion for today (%d lifetime). Streak stays at %s.\n",
			progress.TotalCompleted, FormatDays(progress.CurrentStreak))
		return nil
	}

	fmt.Printf("Completed! Current streak: %s.\n", FormatDays(progress.CurrentStreak))
	if progress.CurrentStreak > 1 && progress.CurrentStreak == progress.LongestStreak {
		fmt.Println("That's your longest streak yet.")
	}
	return nil
}
