package timezone_test

import (
	"testing"
	"time"

	"carshare/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestMidnightTruncatesToDay(t *testing.T) {
	in := time.Date(2026, 3, 14, 17, 45, 12, 999, time.UTC)
	got := timezone.Midnight(in)

	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("Midnight() did not truncate to start of day: %v", got)
	}

	if got.Year() != 2026 || got.Month() != time.March {
		t.Errorf("Midnight() changed the calendar date: %v", got)
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()
	if today.IsZero() {
		t.Error("Today() returned zero time")
	}

	if today.Hour() != 0 || today.Minute() != 0 {
		t.Errorf("Today() is not midnight: %v", today)
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2026-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}
