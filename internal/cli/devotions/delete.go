package devotions

import (
	"fmt"

	"github.com/chrisjoiner1989/bible-steps/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Devotion ID."`
}

// Deleting a devotion leaves its completion history intact; streaks are not
// recalculated.
func (c *DeleteCmd) Run(ctx *cli.Context) error {
	devotion, ok := ctx.Catalog.Get(c.ID)
	if !ok {
		fmt.Printf("Devotion not found: %s\n", c.ID)
		return nil
	}

	ctx.Catalog.Delete(c.ID)
	fmt.Printf("Deleted devotion: %s\n", devotion.Title)
	return nil
}
