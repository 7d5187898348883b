package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/chrisjoiner1989/bible-steps/internal/models"
	"github.com/chrisjoiner1989/bible-steps/internal/utils"
)

// Samples returns the starter devotions seeded on request so a fresh install
// has something to read. Scheduled dates are laid out ending today, so the
// earliest one is "today's devotion" until the user schedules their own.
func Samples(now time.Time) []models.Devotion {
	build := func(daysAgo int, d models.Devotion) models.Devotion {
		d.ID = uuid.New().String()
		d.CreatedAt = now
		d.ScheduledDate = utils.DateKeyDaysAgo(now, daysAgo)
		d.ReadingTimeMin = 5
		return d
	}

	return []models.Devotion{
		build(0, models.Devotion{
			Title:    "Finding Peace in the Chaos",
			Category: models.CategoryAnxietyPeace,
			Scripture: models.ScriptureReference{
				Book: "Philippians", Chapter: 4, VerseStart: 6, VerseEnd: 7,
				Translation: models.TranslationNIV,
				Text:        "Do not be anxious about anything, but in every situation, by prayer and petition, with thanksgiving, present your requests to God. And the peace of God, which transcends all understanding, will guard your hearts and your minds in Christ Jesus.",
			},
			Body:             "We live in a world that constantly demands our attention. Between social media notifications, work emails, and endless to-do lists, anxiety has become the background noise of modern life.\n\nBut Paul's words to the Philippians offer a radically different approach. He doesn't say \"eliminate all stressors\" or \"achieve perfect calm.\" Instead, he invites us into a practice: bring everything to God with gratitude.\n\nThe peace God offers isn't the absence of chaos - it's a presence that guards your heart in the middle of it. This peace \"transcends understanding\" because it doesn't make logical sense. You can have bills to pay, difficult relationships, and uncertain futures, yet still experience deep, supernatural peace.\n\nThe key? Prayer + Thanksgiving. Not just asking, but grateful asking. This shifts our focus from what we lack to what we have, from fear to faith.",
			ReflectionPrompt: "Think about one thing causing you anxiety right now. Instead of spiraling into worst-case scenarios, what would it look like to pray about it with genuine thanksgiving for what you do have?",
			ActionStep:       "Set a timer for 2 minutes. Write down 3 things you're anxious about, then write 3 things you're grateful for. Pray about all 6.",
			Tags:             []string{"anxiety", "prayer", "gratitude", "mental health"},
		}),
		build(1, models.Devotion{
			Title:    "Work as Worship, Not Just Hustle",
			Category: models.CategoryWorkEthics,
			Scripture: models.ScriptureReference{
				Book: "Colossians", Chapter: 3, VerseStart: 23, VerseEnd: 24,
				Translation: models.TranslationNLT,
				Text:        "Work willingly at whatever you do, as though you were working for the Lord rather than for people. Remember that the Lord will give you an inheritance as your reward, and that the Master you are serving is Christ.",
			},
			Body:             "Hustle culture tells us that our worth is tied to our productivity. Rest is for the weak. Grind now, rest later (maybe). But that's not the biblical vision for work.\n\nPaul reframes work entirely: you're not ultimately working for your boss, your clients, or even yourself. You're working for Jesus. This changes everything.\n\nWhen work is worship, you can do excellent work without it defining you. You can pursue excellence without burnout because your identity isn't tied to your output. You can have a bad day at work without having a bad day as a person.\n\nThis also means your \"secular\" job has sacred significance. Whether you're coding, teaching, serving coffee, or changing diapers - if you're doing it \"as unto the Lord,\" it's worship.",
			ReflectionPrompt: "How would your approach to work change if you truly believed you were working for Jesus, not just a paycheck or career advancement?",
			ActionStep:       "Before you start work today, pause and pray: \"Jesus, I offer this work to you. Help me do it with excellence and peace, not anxiety and pride.\"",
			Tags:             []string{"work", "purpose", "identity", "hustle culture"},
		}),
		build(2, models.Devotion{
			Title:    "The Radical Practice of Sabbath",
			Category: models.CategoryRestSabbath,
			Scripture: models.ScriptureReference{
				Book: "Exodus", Chapter: 20, VerseStart: 8, VerseEnd: 10,
				Translation: models.TranslationESV,
				Text:        "Remember the Sabbath day, to keep it holy. Six days you shall labor, and do all your work, but the seventh day is a Sabbath to the Lord your God.",
			},
			Body:             "Sabbath is one of the most counter-cultural practices in Scripture. In a world addicted to productivity, God commands us to stop.\n\nNot because we've earned it. Not because all the work is done (it never is). But because rest is a declaration of trust: \"God, I trust that the world won't fall apart if I take a day off.\"\n\nSabbath is resistance against hustle culture, against the lie that you are what you produce. It's choosing delight over duty, presence over productivity, worship over work.\n\nBut here's the thing many young Christians miss: Sabbath isn't just \"no work.\" It's actively choosing life-giving activities. It's a phone-free hike. It's cooking a slow meal with friends. It's creating art for fun, not content. It's worshiping without agenda.",
			ReflectionPrompt: "What activities genuinely restore your soul, not just distract you? What would a true Sabbath look like for you?",
			ActionStep:       "Block off 3 hours this week for Sabbath. Put your phone in another room. Do something that brings you joy without productivity attached.",
			Tags:             []string{"sabbath", "rest", "boundaries", "hustle culture", "burnout"},
		}),
		build(3, models.Devotion{
			Title:    "Healthy Boundaries Are Holy Boundaries",
			Category: models.CategoryRelationships,
			Scripture: models.ScriptureReference{
				Book: "Matthew", Chapter: 5, VerseStart: 37,
				Translation: models.TranslationNIV,
				Text:        "All you need to say is simply \"Yes\" or \"No\"; anything beyond this comes from the evil one.",
			},
			Body:             "Many Christians struggle with boundaries because we conflate \"Christlike love\" with \"being a doormat.\" But Jesus had clear boundaries.\n\nHe said no to crowds when He needed to pray. He didn't let people's expectations dictate His mission. He spoke truth even when it made people uncomfortable. He protected His time, energy, and emotional space.\n\nHealthy boundaries aren't selfish - they're necessary for sustainable love. You can't pour from an empty cup. You can't serve others well if you're burned out and resentful.\n\nSaying \"no\" to something good often means saying \"yes\" to something better. No to obligatory social events might mean yes to rest. No to someone else's crisis might mean yes to your family. No to overcommitting might mean yes to depth over breadth.",
			ReflectionPrompt: "Where in your life do you need to establish clearer boundaries? What \"no\" would create space for a more important \"yes\"?",
			ActionStep:       "Identify one area where you need a boundary (time, emotional energy, a relationship). Practice saying \"I can't commit to that right now\" today.",
			Tags:             []string{"boundaries", "relationships", "self-care", "saying no"},
		}),
	}
}

// Seed adds the sample devotions to an empty catalog. A catalog that already
// has devotions is left alone so re-running init cannot duplicate them.
func (c *Catalog) Seed(now time.Time) (int, error) {
	if len(c.devotions()) > 0 {
		return 0, nil
	}
	samples := Samples(now)
	for _, d := range samples {
		if err := c.Add(d); err != nil {
			return 0, err
		}
	}
	return len(samples), nil
}
