package devotions

import (
	"fmt"

	"github.com/chrisjoiner1989/bible-steps/internal/cli"
	"github.com/chrisjoiner1989/bible-steps/internal/storage"
)

type ListCmd struct {
	All bool `help:"Show devotions hidden by the hide_completed setting."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	devotions := ctx.Catalog.List()
	if len(devotions) == 0 {
		fmt.Println("No devotions found.")
		return nil
	}

	hideCompleted := !c.All && storage.LoadSettings(ctx.Store).HideCompleted

	now := ctx.Now()
	for _, d := range devotions {
		completed := ctx.Tracker.IsDevotionCompleted(d.ID, now)
		if completed && hideCompleted {
			continue
		}
		line := cli.FormatDevotionLine(d)
		if completed {
			line += " ✓"
		}
		fmt.Println(line)
	}
	return nil
}
