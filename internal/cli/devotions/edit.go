package devotions

import (
	"fmt"
	"strings"

	"github.com/chrisjoiner1989/bible-steps/internal/cli"
	"github.com/chrisjoiner1989/bible-steps/internal/models"
)

type EditCmd struct {
	ID string `arg:"" help:"Devotion ID."`

	Title       *string `help:"New title."`
	Schedule    *string `short:"s" help:"New scheduled date (YYYY-MM-DD, empty to unschedule)."`
	Book        *string `help:"New scripture book."`
	Chapter     *int    `help:"New scripture chapter."`
	Verse       *int    `help:"New starting verse."`
	VerseEnd    *int    `help:"New ending verse (0 for a single verse)."`
	Translation *string `help:"New translation."`
	Text        *string `help:"New passage text."`
	Body        *string `help:"New devotion body."`
	Reflection  *string `help:"New reflection prompt."`
	Action      *string `help:"New action step."`
	Category    *string `help:"New category."`
	ReadingTime *int    `help:"New reading time in minutes."`
	Tags        *string `help:"New comma-separated tags (empty to clear)."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	devotion, ok := ctx.Catalog.Get(c.ID)
	if !ok {
		fmt.Printf("Devotion not found: %s\n", c.ID)
		return nil
	}

	updated := false
	if c.Title != nil {
		devotion.Title = *c.Title
		updated = true
	}
	if c.Schedule != nil {
		devotion.ScheduledDate = *c.Schedule
		updated = true
	}
	if c.Book != nil {
		devotion.Scripture.Book = *c.Book
		updated = true
	}
	if c.Chapter != nil {
		devotion.Scripture.Chapter = *c.Chapter
		updated = true
	}
	if c.Verse != nil {
		devotion.Scripture.VerseStart = *c.Verse
		updated = true
	}
	if c.VerseEnd != nil {
		devotion.Scripture.VerseEnd = *c.VerseEnd
		updated = true
	}
	if c.Translation != nil {
		devotion.Scripture.Translation = models.Translation(*c.Translation)
		updated = true
	}
	if c.Text != nil {
		devotion.Scripture.Text = *c.Text
		updated = true
	}
	if c.Body != nil {
		devotion.Body = *c.Body
		updated = true
	}
	if c.Reflection != nil {
		devotion.ReflectionPrompt = *c.Reflection
		updated = true
	}
	if c.Action != nil {
		devotion.ActionStep = *c.Action
		updated = true
	}
	if c.Category != nil {
		devotion.Category = models.DevotionCategory(*c.Category)
		updated = true
	}
	if c.ReadingTime != nil {
		devotion.ReadingTimeMin = *c.ReadingTime
		updated = true
	}
	if c.Tags != nil {
		devotion.Tags = nil
		for _, tag := range strings.Split(*c.Tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				devotion.Tags = append(devotion.Tags, tag)
			}
		}
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified.")
		return nil
	}

	if err := ctx.Catalog.Update(devotion); err != nil {
		return err
	}
	fmt.Printf("Updated devotion: %s\n", devotion.Title)
	return nil
}
