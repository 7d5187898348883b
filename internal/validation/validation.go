package validation

import (
	"fmt"
	"strings"

	"github.com/chrisjoiner1989/bible-steps/internal/models"
	"github.com/chrisjoiner1989/bible-steps/internal/utils"
)

// ValidateDevotion checks a devotion record before it enters the catalog.
// The record type is closed: unknown categories and translations are
// rejected rather than stored as free text.
func ValidateDevotion(d models.Devotion) error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("devotion id must not be empty")
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("devotion title must not be empty")
	}
	if !ValidCategory(d.Category) {
		return fmt.Errorf("invalid category: %s", d.Category)
	}
	if d.ScheduledDate != "" && !utils.ValidateDateKey(d.ScheduledDate) {
		return fmt.Errorf("invalid scheduled date %q (expected YYYY-MM-DD)", d.ScheduledDate)
	}
	if d.ReadingTimeMin < 0 {
		return fmt.Errorf("reading time must not be negative")
	}
	return validateScripture(d.Scripture)
}

func validateScripture(s models.ScriptureReference) error {
	if strings.TrimSpace(s.Book) == "" {
		return fmt.Errorf("scripture book must not be empty")
	}
	if s.Chapter < 1 {
		return fmt.Errorf("scripture chapter must be at least 1")
	}
	if s.VerseStart < 1 {
		return fmt.Errorf("scripture verse must be at least 1")
	}
	if s.VerseEnd != 0 && s.VerseEnd < s.VerseStart {
		return fmt.Errorf("scripture verse range end (%d) precedes start (%d)", s.VerseEnd, s.VerseStart)
	}
	if !ValidTranslation(s.Translation) {
		return fmt.Errorf("invalid translation: %s", s.Translation)
	}
	return nil
}

// ValidCategory reports whether c is one of the known devotion categories.
func ValidCategory(c models.DevotionCategory) bool {
	for _, known := range models.Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ValidTranslation reports whether t is one of the supported translations.
func ValidTranslation(t models.Translation) bool {
	for _, known := range models.Translations {
		if t == known {
			return true
		}
	}
	return false
}
