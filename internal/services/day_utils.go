package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/mindguard/internal/models"
	"github.com/terraincognita07/mindguard/internal/scoring"
)

const dayLayout = "2006-01-02"

var ErrInvalidEntryDate = errors.New("invalid entry date")

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// ParseDay reads a YYYY-MM-DD value as local midnight.
func ParseDay(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(dayLayout, strings.TrimSpace(raw), location)
	if err != nil {
		return time.Time{}, ErrInvalidEntryDate
	}
	return DateAtLocation(parsed, location), nil
}

func FormatDay(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(dayLayout)
}

// ScoringEntry converts a stored entry into the engine's input shape.
func ScoringEntry(entry models.MoodEntry) scoring.Entry {
	return scoring.Entry{
		Date:               entry.Date,
		OverallMood:        entry.OverallMood,
		Energy:             entry.Energy,
		Sleep:              entry.Sleep,
		DepressiveSymptoms: entry.DepressiveSymptoms,
		AnxietySymptoms:    entry.AnxietySymptoms,
		StressIndicators:   entry.StressIndicators,
		Activities:         entry.Activities,
		Triggers:           entry.Triggers,
		CopingStrategies:   entry.CopingStrategies,
		Notes:              entry.Notes,
	}
}

func ScoringEntries(entries []models.MoodEntry) []scoring.Entry {
	converted := make([]scoring.Entry, 0, len(entries))
	for _, entry := range entries {
		converted = append(converted, ScoringEntry(entry))
	}
	return converted
}
