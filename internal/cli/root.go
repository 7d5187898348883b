package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/chrisjoiner1989/bible-steps/internal/catalog"
	"github.com/chrisjoiner1989/bible-steps/internal/logger"
	"github.com/chrisjoiner1989/bible-steps/internal/models"
	"github.com/chrisjoiner1989/bible-steps/internal/storage"
	"github.com/chrisjoiner1989/bible-steps/internal/streak"
	"github.com/chrisjoiner1989/bible-steps/internal/utils"
)

// Context carries the wired services into every command.
type Context struct {
	Store   storage.Provider
	Tracker *streak.Tracker
	Catalog *catalog.Catalog
}

// Now returns the current time in the user's configured timezone. An invalid
// timezone falls back to system local time rather than failing the command.
func (c *Context) Now() time.Time {
	settings := storage.LoadSettings(c.Store)
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		logger.Warn("Invalid timezone in settings, using system local time",
			"timezone", settings.Timezone, "error", err)
		return time.Now()
	}
	return now
}

// PrintDevotion writes a devotion in full reading form.
func PrintDevotion(d models.Devotion) {
	fmt.Println(d.Title)
	fmt.Println(strings.Repeat("=", len(d.Title)))
	fmt.Println()
	fmt.Printf("%s\n", d.Scripture.Reference())
	if d.Scripture.Text != "" {
		fmt.Printf("  %q\n", d.Scripture.Text)
	}
	fmt.Println()
	if d.Body != "" {
		fmt.Println(d.Body)
		fmt.Println()
	}
	if d.ReflectionPrompt != "" {
		fmt.Printf("Reflect: %s\n", d.ReflectionPrompt)
	}
	if d.ActionStep != "" {
		fmt.Printf("Act:     %s\n", d.ActionStep)
	}
	meta := fmt.Sprintf("category: %s", d.Category)
	if d.ReadingTimeMin > 0 {
		meta += fmt.Sprintf(" · %d min", d.ReadingTimeMin)
	}
	if len(d.Tags) > 0 {
		meta += " · " + strings.Join(d.Tags, ", ")
	}
	fmt.Println()
	fmt.Println(meta)
}

// FormatDevotionLine renders a one-line catalog listing for a devotion.
func FormatDevotionLine(d models.Devotion) string {
	schedule := "unscheduled"
	if d.Scheduled() {
		schedule = d.ScheduledDate
	}
	return fmt.Sprintf("%-12s %-40s %-15s %s", schedule, truncate(d.Title, 40), d.Category, d.ID)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// FormatDays renders a day count with the right plural.
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
