package utils

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"morning", time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), "2025-06-10"},
		{"just before midnight", time.Date(2025, 6, 10, 23, 59, 59, 0, time.UTC), "2025-06-10"},
		{"just after midnight", time.Date(2025, 6, 11, 0, 0, 1, 0, time.UTC), "2025-06-11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateKey(tt.t); got != tt.want {
				t.Errorf("DateKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateKeyUsesLocation(t *testing.T) {
	// 01:00 UTC on June 11 is still June 10 in Chicago.
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}
	utc := time.Date(2025, 6, 11, 1, 0, 0, 0, time.UTC)
	if got := DateKey(utc.In(loc)); got != "2025-06-10" {
		t.Errorf("DateKey() = %q, want 2025-06-10", got)
	}
}

func TestDateKeyDaysAgo(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		n    int
		want string
	}{
		{0, "2025-03-01"},
		{1, "2025-02-28"},
		{2, "2025-02-27"},
		{31, "2025-01-29"},
	}

	for _, tt := range tests {
		if got := DateKeyDaysAgo(base, tt.n); got != tt.want {
			t.Errorf("DateKeyDaysAgo(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestValidateDateKey(t *testing.T) {
	valid := []string{"2025-06-10", "2024-02-29", "1999-12-31"}
	for _, s := range valid {
		if !ValidateDateKey(s) {
			t.Errorf("ValidateDateKey(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "06/10/2025", "2025-6-10", "2025-13-01", "2025-02-30", "today"}
	for _, s := range invalid {
		if ValidateDateKey(s) {
			t.Errorf("ValidateDateKey(%q) = true, want false", s)
		}
	}
}

func TestValidateClockFormat(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59"}
	for _, s := range valid {
		if !ValidateClockFormat(s) {
			t.Errorf("ValidateClockFormat(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "24:00", "12:60", "noon"}
	for _, s := range invalid {
		if ValidateClockFormat(s) {
			t.Errorf("ValidateClockFormat(%q) = true, want false", s)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	if !ValidateTimezone("") {
		t.Error("ValidateTimezone(\"\") = false, want true")
	}
	if !ValidateTimezone("Local") {
		t.Error("ValidateTimezone(Local) = false, want true")
	}
	if !ValidateTimezone("UTC") {
		t.Error("ValidateTimezone(UTC) = false, want true")
	}
	if ValidateTimezone("Mars/Olympus_Mons") {
		t.Error("ValidateTimezone(Mars/Olympus_Mons) = true, want false")
	}
}

func TestNowInTimezone(t *testing.T) {
	if _, err := NowInTimezone("UTC"); err != nil {
		t.Errorf("NowInTimezone(UTC) returned unexpected error: %v", err)
	}
	if _, err := NowInTimezone("Mars/Olympus_Mons"); err == nil {
		t.Error("NowInTimezone(invalid) = nil error, want error")
	}
}
