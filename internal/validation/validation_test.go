package validation

import (
	"testing"

	"github.com/chrisjoiner1989/bible-steps/internal/models"
)

func validDevotion() models.Devotion {
	return models.Devotion{
		ID:            "d1",
		Title:         "Still Waters",
		ScheduledDate: "2025-06-10",
		Category:      models.CategoryAnxietyPeace,
		Scripture: models.ScriptureReference{
			Book:        "Psalms",
			Chapter:     23,
			VerseStart:  1,
			VerseEnd:    3,
			Translation: models.TranslationNIV,
		},
	}
}

func TestValidateDevotion(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Devotion)
		wantErr bool
	}{
		{"valid", func(*models.Devotion) {}, false},
		{"unscheduled is valid", func(d *models.Devotion) { d.ScheduledDate = "" }, false},
		{"single verse without range end", func(d *models.Devotion) { d.Scripture.VerseEnd = 0 }, false},
		{"empty id", func(d *models.Devotion) { d.ID = "" }, true},
		{"whitespace id", func(d *models.Devotion) { d.ID = "   " }, true},
		{"empty title", func(d *models.Devotion) { d.Title = "" }, true},
		{"unknown category", func(d *models.Devotion) { d.Category = "mystery" }, true},
		{"bad date format", func(d *models.Devotion) { d.ScheduledDate = "06/10/2025" }, true},
		{"impossible date", func(d *models.Devotion) { d.ScheduledDate = "2025-02-30" }, true},
		{"negative reading time", func(d *models.Devotion) { d.ReadingTimeMin = -1 }, true},
		{"empty book", func(d *models.Devotion) { d.Scripture.Book = "" }, true},
		{"zero chapter", func(d *models.Devotion) { d.Scripture.Chapter = 0 }, true},
		{"zero verse start", func(d *models.Devotion) { d.Scripture.VerseStart = 0 }, true},
		{"inverted verse range", func(d *models.Devotion) {
			d.Scripture.VerseStart = 5
			d.Scripture.VerseEnd = 2
		}, true},
		{"unknown translation", func(d *models.Devotion) { d.Scripture.Translation = "XYZ" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDevotion()
			tt.mutate(&d)
			err := ValidateDevotion(d)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDevotion() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range models.Categories {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false, want true", c)
		}
	}
	if ValidCategory("not-a-category") {
		t.Error("ValidCategory(not-a-category) = true, want false")
	}
	if ValidCategory("") {
		t.Error("ValidCategory(\"\") = true, want false")
	}
}

func TestValidTranslation(t *testing.T) {
	for _, tr := range models.Translations {
		if !ValidTranslation(tr) {
			t.Errorf("ValidTranslation(%q) = false, want true", tr)
		}
	}
	if ValidTranslation("XYZ") {
		t.Error("ValidTranslation(XYZ) = true, want false")
	}
}
