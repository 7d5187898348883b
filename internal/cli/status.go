package cli

import (
	"fmt"
	"time"

	"github.com/chrisjoiner1989/bible-steps/internal/constants"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	now := ctx.Now()
	ctx.Tracker.Reconcile(now)
	progress := ctx.Tracker.Progress(now)

	fmt.Println("Progress")
	fmt.Printf("  Current streak:  %s\n", FormatDays(progress.CurrentStreak))
	fmt.Printf("  Longest streak:  %s\n", FormatDays(progress.LongestStreak))
	fmt.Printf("  Total completed: %d\n", progress.TotalCompleted)
	if progress.LastCompletedDate != "" {
		fmt.Printf("  Last completed:  %s\n", progress.LastCompletedDate)
	} else {
		fmt.Println("  Last completed:  never")
	}

	if progress.GracePeriodActive && progress.GracePeriodEndsAt != nil {
		remaining := progress.GracePeriodEndsAt.Sub(now).Round(time.Minute)
		fmt.Printf("\n⚠ Grace period active: complete a devotion within %s to keep your streak.\n", remaining)
	} else if ctx.Tracker.HasCompletedToday(now) {
		fmt.Println("\n✓ Completed today")
	} else if progress.CurrentStreak > 0 {
		fmt.Printf("\nNothing completed today yet. Run '%s today' to read.\n", constants.AppName)
	}

	return nil
}
