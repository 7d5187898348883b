package settings

import (
	"fmt"

	"github.com/chrisjoiner1989/bible-steps/internal/cli"
	"github.com/chrisjoiner1989/bible-steps/internal/storage"
	"github.com/chrisjoiner1989/bible-steps/internal/utils"
)

type ProfileCmd struct {
	Name   *string `help:"Display name."`
	Email  *string `help:"Email address (display only; nothing is sent anywhere)."`
	Avatar *string `help:"Avatar icon name or URL."`
}

func (c *ProfileCmd) Run(ctx *cli.Context) error {
	profile := storage.LoadProfile(ctx.Store)

	if c.Name == nil && c.Email == nil && c.Avatar == nil {
		if profile.DisplayName == "" {
			fmt.Println("No profile set. Use --name to create one.")
			return nil
		}
		fmt.Println("Profile:")
		fmt.Printf("  Name:   %s\n", profile.DisplayName)
		if profile.Email != "" {
			fmt.Printf("  Email:  %s\n", profile.Email)
		}
		if profile.Avatar != "" {
			fmt.Printf("  Avatar: %s\n", profile.Avatar)
		}
		if profile.JoinDate != "" {
			fmt.Printf("  Since:  %s\n", profile.JoinDate)
		}
		return nil
	}

	if profile.JoinDate == "" {
		profile.JoinDate = utils.DateKey(ctx.Now())
	}
	if c.Name != nil {
		profile.DisplayName = *c.Name
	}
	if c.Email != nil {
		profile.Email = *c.Email
	}
	if c.Avatar != nil {
		profile.Avatar = *c.Avatar
	}

	storage.SaveProfile(ctx.Store, profile)
	fmt.Println("Profile updated.")
	return nil
}
