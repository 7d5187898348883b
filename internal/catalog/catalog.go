// Package catalog manages the user's editable collection of devotions and
// the schedule-based projections ("today's devotion", upcoming devotions)
// that the rest of the application reads.
package catalog

import (
	"sort"
	"time"

	"github.com/chrisjoiner1989/bible-steps/internal/constants"
	"github.com/chrisjoiner1989/bible-steps/internal/logger"
	"github.com/chrisjoiner1989/bible-steps/internal/models"
	"github.com/chrisjoiner1989/bible-steps/internal/storage"
	"github.com/chrisjoiner1989/bible-steps/internal/utils"
	"github.com/chrisjoiner1989/bible-steps/internal/validation"
)

// Catalog is the devotion collection, persisted in insertion order.
type Catalog struct {
	store storage.Provider
}

func New(store storage.Provider) *Catalog {
	return &Catalog{store: store}
}

func (c *Catalog) devotions() []models.Devotion {
	var devotions []models.Devotion
	c.store.Get(constants.KeyUserDevotions, &devotions)
	return devotions
}

func (c *Catalog) save(devotions []models.Devotion) {
	c.store.Set(constants.KeyUserDevotions, devotions)
}

// Add validates and appends a new devotion.
func (c *Catalog) Add(d models.Devotion) error {
	if err := validation.ValidateDevotion(d); err != nil {
		return err
	}
	devotions := append(c.devotions(), d)
	c.save(devotions)
	logger.Debug("Added devotion", "id", d.ID, "title", d.Title)
	return nil
}

// Update replaces the stored record carrying the same ID. Updating an
// unknown ID is a no-op, not an error.
func (c *Catalog) Update(d models.Devotion) error {
	if err := validation.ValidateDevotion(d); err != nil {
		return err
	}
	devotions := c.devotions()
	for i := range devotions {
		if devotions[i].ID == d.ID {
			devotions[i] = d
			c.save(devotions)
			logger.Debug("Updated devotion", "id", d.ID)
			return nil
		}
	}
	return nil
}

// Delete removes the devotion with the given ID. Completion history keeps
// referencing the ID; dangling references are tolerated. Deleting an unknown
// ID is a no-op.
func (c *Catalog) Delete(id string) {
	devotions := c.devotions()
	kept := devotions[:0]
	for _, d := range devotions {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(devotions) {
		return
	}
	c.save(kept)
	logger.Debug("Deleted devotion", "id", id)
}

// Get returns the devotion with the given ID.
func (c *Catalog) Get(id string) (models.Devotion, bool) {
	for _, d := range c.devotions() {
		if d.ID == id {
			return d, true
		}
	}
	return models.Devotion{}, false
}

// List returns all devotions ordered by scheduled date ascending, with
// unscheduled devotions last. The order is stable within each group.
func (c *Catalog) List() []models.Devotion {
	devotions := c.devotions()
	sorted := make([]models.Devotion, len(devotions))
	copy(sorted, devotions)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch {
		case a.Scheduled() && b.Scheduled():
			// Date keys compare correctly as strings.
			return a.ScheduledDate < b.ScheduledDate
		case a.Scheduled():
			return true
		default:
			return false
		}
	})
	return sorted
}

// Today returns the devotion to read on now's calendar day: the earliest
// devotion scheduled at or before today. A devotion scheduled far in the past
// stays "today's" until a later-dated one supersedes it; the catalog does not
// auto-advance past stale schedules. With no qualifying schedule, the first
// devotion in insertion order is returned; an empty catalog returns false.
func (c *Catalog) Today(now time.Time) (models.Devotion, bool) {
	today := utils.DateKey(now)

	for _, d := range c.List() {
		if d.Scheduled() && d.ScheduledDate <= today {
			return d, true
		}
	}

	devotions := c.devotions()
	if len(devotions) > 0 {
		return devotions[0], true
	}
	return models.Devotion{}, false
}

// Upcoming returns devotions scheduled strictly after today, earliest first,
// truncated to limit.
func (c *Catalog) Upcoming(now time.Time, limit int) []models.Devotion {
	if limit <= 0 {
		return nil
	}
	today := utils.DateKey(now)

	var upcoming []models.Devotion
	for _, d := range c.List() {
		if d.Scheduled() && d.ScheduledDate > today {
			upcoming = append(upcoming, d)
			if len(upcoming) == limit {
				break
			}
		}
	}
	return upcoming
}

// Reschedule moves a devotion to a new scheduled date. An empty date
// unschedules it.
func (c *Catalog) Reschedule(id, date string) error {
	d, ok := c.Get(id)
	if !ok {
		return nil
	}
	d.ScheduledDate = date
	return c.Update(d)
}
