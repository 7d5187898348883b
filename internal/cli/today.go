package cli

import (
	"fmt"

	"github.com/chrisjoiner1989/bible-steps/internal/constants"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	now := ctx.Now()
	ctx.Tracker.Reconcile(now)

	devotion, ok := ctx.Catalog.Today(now)
	if !ok {
		fmt.Printf("No devotions in your catalog yet. Add one with '%s devotion add'.\n", constants.AppName)
		return nil
	}

	PrintDevotion(devotion)
	fmt.Println()

	if ctx.Tracker.IsDevotionCompleted(devotion.ID, now) {
		fmt.Println("✓ Completed today")
	} else if ctx.Tracker.HasCompletedToday(now) {
		fmt.Println("You already completed a devotion today. The streak is safe.")
	} else {
		fmt.Printf("Mark it done with '%s complete' to keep your streak going.\n", constants.AppName)
	}

	return nil
}
