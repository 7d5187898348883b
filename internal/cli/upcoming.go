package cli

import (
	"fmt"

	"github.com/chrisjoiner1989/bible-steps/internal/storage"
)

type UpcomingCmd struct {
	Limit int `short:"n" help:"Maximum number of devotions to show (default: the upcoming_count setting)."`
}

func (c *UpcomingCmd) Run(ctx *Context) error {
	now := ctx.Now()

	limit := c.Limit
	if limit <= 0 {
		limit = storage.LoadSettings(ctx.Store).UpcomingCount
	}

	upcoming := ctx.Catalog.Upcoming(now, limit)
	if len(upcoming) == 0 {
		fmt.Println("No upcoming devotions scheduled.")
		return nil
	}

	for _, d := range upcoming {
		fmt.Println(FormatDevotionLine(d))
	}
	return nil
}
