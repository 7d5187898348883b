package system

import (
	"fmt"

	"github.com/chrisjoiner1989/bible-steps/internal/cli"
)

type InitCmd struct {
	Force   bool `help:"Clear any existing data after initializing."`
	Samples bool `help:"Seed a few starter devotions into an empty catalog."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	if c.Force {
		ctx.Store.Clear()
		fmt.Println("Cleared existing data.")
	}

	if c.Samples {
		seeded, err := ctx.Catalog.Seed(ctx.Now())
		if err != nil {
			return err
		}
		if seeded > 0 {
			fmt.Printf("Seeded %d starter devotions.\n", seeded)
		} else {
			fmt.Println("Catalog already has devotions; nothing seeded.")
		}
	}

	fmt.Printf("Initialized storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
