package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/mindguard/internal/scoring"
)

const (
	MaxEntryNotesLength = 2000
	MaxLabelLength      = 64
	MaxLabelsPerSet     = 20
)

var ErrUnknownIndicator = errors.New("unknown indicator")

type EntryInput struct {
	OverallMood        int
	Energy             int
	Sleep              int
	DepressiveSymptoms map[string]int
	AnxietySymptoms    map[string]int
	StressIndicators   map[string]int
	Activities         []string
	Triggers           []string
	CopingStrategies   []string
	Notes              string
}

// NormalizeEntryInput clamps ratings and severities into range, rejects
// indicator names outside each category and tidies the free-form labels.
func NormalizeEntryInput(input EntryInput) (EntryInput, error) {
	input.OverallMood = clampInt(input.OverallMood, scoring.MinRating, scoring.MaxRating)
	input.Energy = clampInt(input.Energy, scoring.MinRating, scoring.MaxRating)
	input.Sleep = clampInt(input.Sleep, scoring.MinRating, scoring.MaxRating)

	var err error
	if input.DepressiveSymptoms, err = normalizeSeverities(scoring.CategoryDepression, input.DepressiveSymptoms); err != nil {
		return input, err
	}
	if input.AnxietySymptoms, err = normalizeSeverities(scoring.CategoryAnxiety, input.AnxietySymptoms); err != nil {
		return input, err
	}
	if input.StressIndicators, err = normalizeSeverities(scoring.CategoryStress, input.StressIndicators); err != nil {
		return input, err
	}

	input.Activities = NormalizeLabels(input.Activities)
	input.Triggers = NormalizeLabels(input.Triggers)
	input.CopingStrategies = NormalizeLabels(input.CopingStrategies)
	input.Notes = TrimEntryNotes(input.Notes)
	return input, nil
}

func normalizeSeverities(category scoring.Category, values map[string]int) (map[string]int, error) {
	allowed := make(map[string]struct{}, len(scoring.Indicators(category)))
	for _, name := range scoring.Indicators(category) {
		allowed[name] = struct{}{}
	}

	normalized := make(map[string]int, len(values))
	for name, value := range values {
		if _, ok := allowed[name]; !ok {
			return nil, fmt.Errorf("%w: %s %q", ErrUnknownIndicator, category, name)
		}
		normalized[name] = clampInt(value, scoring.MinSeverity, scoring.MaxSeverity)
	}
	return normalized, nil
}

// NormalizeLabels trims, drops blanks and duplicates, and caps the set size.
func NormalizeLabels(values []string) []string {
	labels := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, raw := range values {
		label := truncateRunes(strings.TrimSpace(raw), MaxLabelLength)
		if label == "" {
			continue
		}
		if _, exists := seen[label]; exists {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
		if len(labels) == MaxLabelsPerSet {
			break
		}
	}
	return labels
}

func TrimEntryNotes(value string) string {
	return truncateRunes(strings.TrimSpace(value), MaxEntryNotesLength)
}

func truncateRunes(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	return string([]rune(value)[:limit])
}

func clampInt(value int, low int, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
