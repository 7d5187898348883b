package utils

import (
	"fmt"
	"time"

	"github.com/chrisjoiner1989/bible-steps/internal/constants"
)

// DateKey formats a timestamp as a calendar-day identifier (YYYY-MM-DD) in the
// timestamp's own location. Streak math compares date keys, never durations,
// so completions at 23:59 and 00:01 land on different days.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// DateKeyDaysAgo returns the date key for n calendar days before t.
func DateKeyDaysAgo(t time.Time, n int) string {
	return t.AddDate(0, 0, -n).Format(constants.DateFormat)
}

// ParseDateKey parses a YYYY-MM-DD date key.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse(constants.DateFormat, s)
}

// ValidateDateKey reports whether s is a well-formed YYYY-MM-DD date key.
func ValidateDateKey(s string) bool {
	_, err := ParseDateKey(s)
	return err == nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone. "Today" is
// determined by the user's configured timezone, not the system timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ParseClock parses a time-of-day string in the standard format (HH:MM).
func ParseClock(s string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, s)
}

// ValidateClockFormat checks if the string matches the standard HH:MM format.
func ValidateClockFormat(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
