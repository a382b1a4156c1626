package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/mindguard/internal/models"
	"github.com/terraincognita07/mindguard/internal/scoring"
)

var ExportCSVHeaders = []string{
	"Date",
	"Overall mood",
	"Energy",
	"Sleep",
	"Depression total",
	"Anxiety total",
	"Stress total",
	"Depressive symptoms",
	"Anxiety symptoms",
	"Stress indicators",
	"Activities",
	"Triggers",
	"Coping strategies",
	"Notes",
}

type ExportEntryReader interface {
	ListEntries(userID uint, from *time.Time, to *time.Time, location *time.Location) ([]models.MoodEntry, error)
}

type ExportService struct {
	entries ExportEntryReader
}

func NewExportService(entries ExportEntryReader) *ExportService {
	return &ExportService{entries: entries}
}

type ExportSummary struct {
	TotalEntries int    `json:"totalEntries"`
	HasData      bool   `json:"hasData"`
	DateFrom     string `json:"dateFrom"`
	DateTo       string `json:"dateTo"`
}

type ExportCSVRow struct {
	Date               string
	OverallMood        int
	Energy             int
	Sleep              int
	DepressionTotal    int
	AnxietyTotal       int
	StressTotal        int
	DepressiveSymptoms map[string]int
	AnxietySymptoms    map[string]int
	StressIndicators   map[string]int
	Activities         []string
	Triggers           []string
	CopingStrategies   []string
	Notes              string
}

func (service *ExportService) BuildSummary(userID uint, from *time.Time, to *time.Time, location *time.Location) (ExportSummary, error) {
	entries, err := service.entries.ListEntries(userID, from, to, location)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(entries) == 0 {
		return ExportSummary{}, nil
	}

	first := entries[0].Date
	last := entries[0].Date
	for _, entry := range entries[1:] {
		if entry.Date.Before(first) {
			first = entry.Date
		}
		if entry.Date.After(last) {
			last = entry.Date
		}
	}

	return ExportSummary{
		TotalEntries: len(entries),
		HasData:      true,
		DateFrom:     FormatDay(first, location),
		DateTo:       FormatDay(last, location),
	}, nil
}

func (service *ExportService) BuildCSVRows(userID uint, from *time.Time, to *time.Time, location *time.Location) ([]ExportCSVRow, error) {
	entries, err := service.entries.ListEntries(userID, from, to, location)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportCSVRow, 0, len(entries))
	for _, stored := range entries {
		entry := ScoringEntry(stored)
		rows = append(rows, ExportCSVRow{
			Date:               FormatDay(stored.Date, location),
			OverallMood:        stored.OverallMood,
			Energy:             stored.Energy,
			Sleep:              stored.Sleep,
			DepressionTotal:    entry.CategoryTotal(scoring.CategoryDepression),
			AnxietyTotal:       entry.CategoryTotal(scoring.CategoryAnxiety),
			StressTotal:        entry.CategoryTotal(scoring.CategoryStress),
			DepressiveSymptoms: stored.DepressiveSymptoms,
			AnxietySymptoms:    stored.AnxietySymptoms,
			StressIndicators:   stored.StressIndicators,
			Activities:         stored.Activities,
			Triggers:           stored.Triggers,
			CopingStrategies:   stored.CopingStrategies,
			Notes:              stored.Notes,
		})
	}
	return rows, nil
}

func (row ExportCSVRow) Columns() []string {
	return []string{
		row.Date,
		strconv.Itoa(row.OverallMood),
		strconv.Itoa(row.Energy),
		strconv.Itoa(row.Sleep),
		strconv.Itoa(row.DepressionTotal),
		strconv.Itoa(row.AnxietyTotal),
		strconv.Itoa(row.StressTotal),
		csvSeverities(row.DepressiveSymptoms),
		csvSeverities(row.AnxietySymptoms),
		csvSeverities(row.StressIndicators),
		strings.Join(row.Activities, "; "),
		strings.Join(row.Triggers, "; "),
		strings.Join(row.CopingStrategies, "; "),
		row.Notes,
	}
}

// csvSeverities renders non-zero severities as "name=value" pairs in name order.
func csvSeverities(values map[string]int) string {
	names := make([]string, 0, len(values))
	for name, value := range values {
		if value > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, fmt.Sprintf("%s=%d", name, values[name]))
	}
	return strings.Join(pairs, "; ")
}
