package devotions

import (
	"fmt"

	"github.com/chrisjoiner1989/bible-steps/internal/cli"
)

type ShowCmd struct {
	ID string `arg:"" help:"Devotion ID."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	devotion, ok := ctx.Catalog.Get(c.ID)
	if !ok {
		fmt.Printf("Devotion not found: %s\n", c.ID)
		return nil
	}
	cli.PrintDevotion(devotion)
	return nil
}
