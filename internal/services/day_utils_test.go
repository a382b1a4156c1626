package services

import (
	"errors"
	"testing"
	"time"
)

func TestDayRangeNormalizesToLocationMidnight(t *testing.T) {
	location, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	raw := time.Date(2026, 2, 1, 22, 35, 10, 0, time.UTC)
	start, end := DayRange(raw, location)

	if got := start.Format(time.RFC3339); got != "2026-02-02T00:00:00+03:00" {
		t.Fatalf("unexpected day start %s", got)
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("expected end one day after start, got %s", end)
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay(" 2026-03-09 ", time.UTC)
	if err != nil {
		t.Fatalf("ParseDay() unexpected error: %v", err)
	}
	if FormatDay(day, time.UTC) != "2026-03-09" {
		t.Fatalf("unexpected parsed day %s", day)
	}

	for _, raw := range []string{"", "2026-13-01", "09.03.2026"} {
		if _, err := ParseDay(raw, time.UTC); !errors.Is(err, ErrInvalidEntryDate) {
			t.Fatalf("expected ErrInvalidEntryDate for %q, got %v", raw, err)
		}
	}
}

func TestParseDateRangeErrors(t *testing.T) {
	from, to, err := ParseDateRange("2026-03-01", "", time.UTC)
	if err != nil || from == nil || to != nil {
		t.Fatalf("expected open-ended range, got from=%v to=%v err=%v", from, to, err)
	}

	if _, _, err := ParseDateRange("2026-03-05", "2026-03-01", time.UTC); !errors.Is(err, ErrExportRangeInvalid) {
		t.Fatalf("expected ErrExportRangeInvalid, got %v", err)
	}
	if _, _, err := ParseDateRange("bad", "", time.UTC); !errors.Is(err, ErrExportFromDateInvalid) {
		t.Fatalf("expected ErrExportFromDateInvalid, got %v", err)
	}
	if _, _, err := ParseDateRange("", "bad", time.UTC); !errors.Is(err, ErrExportToDateInvalid) {
		t.Fatalf("expected ErrExportToDateInvalid, got %v", err)
	}
}
