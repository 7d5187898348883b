package models

import (
	"fmt"
	"time"
)

// DevotionCategory classifies a devotion by theme
type DevotionCategory string

const (
	CategoryGeneral       DevotionCategory = "general"
	CategoryAnxietyPeace  DevotionCategory = "anxiety-peace"
	CategoryWorkEthics    DevotionCategory = "work-ethics"
	CategoryRelationships DevotionCategory = "relationships"
	CategorySocialJustice DevotionCategory = "social-justice"
	CategoryRestSabbath   DevotionCategory = "rest-sabbath"
	CategoryIdentity      DevotionCategory = "identity"
	CategoryCommunity     DevotionCategory = "community"
	CategoryPurpose       DevotionCategory = "purpose"
	CategoryFaith         DevotionCategory = "faith"
	CategoryPrayer        DevotionCategory = "prayer"
)

// Categories lists every valid devotion category
var Categories = []DevotionCategory{
	CategoryGeneral,
	CategoryAnxietyPeace,
	CategoryWorkEthics,
	CategoryRelationships,
	CategorySocialJustice,
	CategoryRestSabbath,
	CategoryIdentity,
	CategoryCommunity,
	CategoryPurpose,
	CategoryFaith,
	CategoryPrayer,
}

// Translation is a Bible translation abbreviation
type Translation string

const (
	TranslationNIV  Translation = "NIV"
	TranslationESV  Translation = "ESV"
	TranslationNLT  Translation = "NLT"
	TranslationMSG  Translation = "MSG"
	TranslationNRSV Translation = "NRSV"
	TranslationKJV  Translation = "KJV"
	TranslationNKJV Translation = "NKJV"
	TranslationCSB  Translation = "CSB"
)

// Translations lists every supported Bible translation
var Translations = []Translation{
	TranslationNIV,
	TranslationESV,
	TranslationNLT,
	TranslationMSG,
	TranslationNRSV,
	TranslationKJV,
	TranslationNKJV,
	TranslationCSB,
}

// ScriptureReference identifies a passage and carries its text
type ScriptureReference struct {
	Book        string      `json:"book"`
	Chapter     int         `json:"chapter"`
	VerseStart  int         `json:"verse_start"`
	VerseEnd    int         `json:"verse_end,omitempty"`
	Translation Translation `json:"translation"`
	Text        string      `json:"text"`
}

// Reference returns a human-readable citation, e.g. "John 3:16-17 (NIV)"
func (s ScriptureReference) Reference() string {
	if s.VerseEnd > 0 && s.VerseEnd != s.VerseStart {
		return fmt.Sprintf("%s %d:%d-%d (%s)", s.Book, s.Chapter, s.VerseStart, s.VerseEnd, s.Translation)
	}
	return fmt.Sprintf("%s %d:%d (%s)", s.Book, s.Chapter, s.VerseStart, s.Translation)
}

// Devotion is a single scripture-based reading unit with reflection and action prompts
type Devotion struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	CreatedAt        time.Time          `json:"created_at"`
	ScheduledDate    string             `json:"scheduled_date,omitempty"` // YYYY-MM-DD; empty means unscheduled
	ReadingTimeMin   int                `json:"reading_time_min"`
	Scripture        ScriptureReference `json:"scripture"`
	Body             string             `json:"body"`
	ReflectionPrompt string             `json:"reflection_prompt"`
	ActionStep       string             `json:"action_step"`
	Category         DevotionCategory   `json:"category"`
	Tags             []string           `json:"tags,omitempty"`
}

// Scheduled reports whether the devotion has a scheduled date
func (d Devotion) Scheduled() bool {
	return d.ScheduledDate != ""
}
