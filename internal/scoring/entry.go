// Package scoring turns daily mental-health self-reports into category scores,
// severity levels, trends, risk flags and recommendations. Every function in
// this package is a pure computation over caller-supplied data.
package scoring

import (
	"sort"
	"time"
)

const (
	MinSeverity = 0
	MaxSeverity = 3

	MinRating = 1
	MaxRating = 10

	DefaultWindowSize = 14
)

type Category string

const (
	CategoryDepression Category = "depression"
	CategoryAnxiety    Category = "anxiety"
	CategoryStress     Category = "stress"
)

var DepressionIndicators = []string{
	"sadness",
	"hopelessness",
	"worthlessness",
	"lossOfInterest",
	"fatigue",
	"concentration",
	"appetite",
	"suicidalThoughts",
}

var AnxietyIndicators = []string{
	"nervousness",
	"uncontrollableWorry",
	"excessiveWorry",
	"troubleRelaxing",
	"restlessness",
	"irritability",
	"fearfulness",
}

var StressIndicators = []string{
	"overwhelmed",
	"lackOfControl",
	"tension",
	"irritability",
	"sleepProblems",
	"physicalSymptoms",
	"withdrawal",
}

const SuicidalThoughtsIndicator = "suicidalThoughts"

// Indicators returns the indicator names that make up a category.
func Indicators(category Category) []string {
	switch category {
	case CategoryDepression:
		return DepressionIndicators
	case CategoryAnxiety:
		return AnxietyIndicators
	case CategoryStress:
		return StressIndicators
	default:
		return nil
	}
}

// MaxCategoryTotal is the highest per-entry sum a category can reach.
func MaxCategoryTotal(category Category) int {
	return len(Indicators(category)) * MaxSeverity
}

type Entry struct {
	Date               time.Time      `json:"date" yaml:"date"`
	OverallMood        int            `json:"overallMood" yaml:"overallMood"`
	Energy             int            `json:"energy" yaml:"energy"`
	Sleep              int            `json:"sleep" yaml:"sleep"`
	DepressiveSymptoms map[string]int `json:"depressiveSymptoms" yaml:"depressiveSymptoms"`
	AnxietySymptoms    map[string]int `json:"anxietySymptoms" yaml:"anxietySymptoms"`
	StressIndicators   map[string]int `json:"stressIndicators" yaml:"stressIndicators"`
	Activities         []string       `json:"activities" yaml:"activities"`
	Triggers           []string       `json:"triggers" yaml:"triggers"`
	CopingStrategies   []string       `json:"copingStrategies" yaml:"copingStrategies"`
	Notes              string         `json:"notes" yaml:"notes"`
}

func (entry Entry) symptoms(category Category) map[string]int {
	switch category {
	case CategoryDepression:
		return entry.DepressiveSymptoms
	case CategoryAnxiety:
		return entry.AnxietySymptoms
	case CategoryStress:
		return entry.StressIndicators
	default:
		return nil
	}
}

// CategoryTotal sums the entry's severities for the category's indicators.
// Missing indicators count as zero and unrelated keys are ignored.
func (entry Entry) CategoryTotal(category Category) int {
	values := entry.symptoms(category)
	total := 0
	for _, name := range Indicators(category) {
		total += values[name]
	}
	return total
}

func (entry Entry) hasActivity(label string) bool {
	for _, activity := range entry.Activities {
		if activity == label {
			return true
		}
	}
	return false
}

// DayKey identifies the calendar day of an entry in the entry's own location.
func DayKey(day time.Time) string {
	return day.Format("2006-01-02")
}

// Journal is a caller-owned collection holding at most one entry per calendar
// day. It is not safe for concurrent mutation.
type Journal struct {
	byDay map[string]Entry
}

func NewJournal(entries ...Entry) *Journal {
	journal := &Journal{byDay: make(map[string]Entry, len(entries))}
	for _, entry := range entries {
		journal.Upsert(entry)
	}
	return journal
}

// Upsert stores the entry, replacing any earlier entry for the same day.
func (journal *Journal) Upsert(entry Entry) {
	if journal.byDay == nil {
		journal.byDay = make(map[string]Entry)
	}
	journal.byDay[DayKey(entry.Date)] = entry
}

func (journal *Journal) Remove(day time.Time) bool {
	key := DayKey(day)
	if _, ok := journal.byDay[key]; !ok {
		return false
	}
	delete(journal.byDay, key)
	return true
}

func (journal *Journal) Len() int {
	return len(journal.byDay)
}

// Entries returns a date-ascending copy of the stored entries.
func (journal *Journal) Entries() []Entry {
	entries := make([]Entry, 0, len(journal.byDay))
	for _, entry := range journal.byDay {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return DayKey(entries[i].Date) < DayKey(entries[j].Date)
	})
	return entries
}

// Window returns the trailing size entries, or all of them when history is shorter.
func (journal *Journal) Window(size int) []Entry {
	return TrailingWindow(journal.Entries(), size)
}

func TrailingWindow(entries []Entry, size int) []Entry {
	if size <= 0 || len(entries) <= size {
		return entries
	}
	return entries[len(entries)-size:]
}
