package devotions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/chrisjoiner1989/bible-steps/internal/cli"
	"github.com/chrisjoiner1989/bible-steps/internal/models"
	"github.com/chrisjoiner1989/bible-steps/internal/storage"
	"github.com/chrisjoiner1989/bible-steps/internal/utils"
)

type AddCmd struct {
	Title       string `help:"Devotion title. Omit to fill in the details interactively."`
	Schedule    string `short:"s" help:"Scheduled date (YYYY-MM-DD)."`
	Book        string `help:"Scripture book."`
	Chapter     int    `help:"Scripture chapter."`
	Verse       int    `help:"Starting verse."`
	VerseEnd    int    `help:"Ending verse (optional)."`
	Translation string `help:"Bible translation (default: the default_translation setting)."`
	Text        string `help:"Scripture passage text."`
	Body        string `help:"Devotion body."`
	Reflection  string `help:"Reflection prompt."`
	Action      string `help:"Action step."`
	Category    string `help:"Category." default:"general"`
	ReadingTime int    `help:"Estimated reading time in minutes." default:"5"`
	Tags        string `help:"Comma-separated tags."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	settings := storage.LoadSettings(ctx.Store)

	translation := c.Translation
	if translation == "" {
		translation = string(settings.DefaultTranslation)
	}

	devotion := models.Devotion{
		ID:               uuid.New().String(),
		CreatedAt:        ctx.Now(),
		Title:            c.Title,
		ScheduledDate:    c.Schedule,
		ReadingTimeMin:   c.ReadingTime,
		Body:             c.Body,
		ReflectionPrompt: c.Reflection,
		ActionStep:       c.Action,
		Category:         models.DevotionCategory(c.Category),
		Scripture: models.ScriptureReference{
			Book:        c.Book,
			Chapter:     c.Chapter,
			VerseStart:  c.Verse,
			VerseEnd:    c.VerseEnd,
			Translation: models.Translation(translation),
			Text:        c.Text,
		},
	}
	if c.Tags != "" {
		for _, tag := range strings.Split(c.Tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				devotion.Tags = append(devotion.Tags, tag)
			}
		}
	}

	if c.Title == "" {
		if err := runAddForm(&devotion); err != nil {
			return err
		}
	}

	if err := ctx.Catalog.Add(devotion); err != nil {
		return err
	}

	fmt.Printf("Added devotion: %s (%s)\n", devotion.Title, devotion.ID)
	return nil
}

// runAddForm collects the devotion fields interactively.
func runAddForm(d *models.Devotion) error {
	chapter := ""
	verseStart := ""
	verseEnd := ""
	readingTime := strconv.Itoa(d.ReadingTimeMin)
	tags := strings.Join(d.Tags, ", ")

	categoryOptions := make([]huh.Option[models.DevotionCategory], 0, len(models.Categories))
	for _, cat := range models.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(string(cat), cat))
	}
	translationOptions := make([]huh.Option[models.Translation], 0, len(models.Translations))
	for _, tr := range models.Translations {
		translationOptions = append(translationOptions, huh.NewOption(string(tr), tr))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&d.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Scheduled date (YYYY-MM-DD, blank for unscheduled)").
				Value(&d.ScheduledDate).
				Validate(func(s string) error {
					if s != "" && !utils.ValidateDateKey(s) {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewSelect[models.DevotionCategory]().
				Title("Category").
				Options(categoryOptions...).
				Value(&d.Category),
		),
		huh.NewGroup(
			huh.NewInput().Title("Book").Value(&d.Scripture.Book),
			huh.NewInput().Title("Chapter").Value(&chapter).Validate(requirePositiveInt),
			huh.NewInput().Title("Verse").Value(&verseStart).Validate(requirePositiveInt),
			huh.NewInput().Title("Verse end (blank for a single verse)").Value(&verseEnd),
			huh.NewSelect[models.Translation]().
				Title("Translation").
				Options(translationOptions...).
				Value(&d.Scripture.Translation),
			huh.NewText().Title("Passage text").Value(&d.Scripture.Text),
		),
		huh.NewGroup(
			huh.NewText().Title("Devotion body").Value(&d.Body),
			huh.NewInput().Title("Reflection prompt").Value(&d.ReflectionPrompt),
			huh.NewInput().Title("Action step").Value(&d.ActionStep),
			huh.NewInput().Title("Reading time (minutes)").Value(&readingTime),
			huh.NewInput().Title("Tags (comma-separated)").Value(&tags),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	d.Scripture.Chapter, _ = strconv.Atoi(strings.TrimSpace(chapter))
	d.Scripture.VerseStart, _ = strconv.Atoi(strings.TrimSpace(verseStart))
	if verseEnd != "" {
		d.Scripture.VerseEnd, _ = strconv.Atoi(strings.TrimSpace(verseEnd))
	}
	if n, err := strconv.Atoi(strings.TrimSpace(readingTime)); err == nil {
		d.ReadingTimeMin = n
	}
	d.Tags = nil
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			d.Tags = append(d.Tags, tag)
		}
	}
	return nil
}

func requirePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("expected a positive number")
	}
	return nil
}
