package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/terraincognita07/mindguard/internal/scoring"
	"github.com/terraincognita07/mindguard/internal/services"
	"gopkg.in/yaml.v3"
)

// entryDocument is one check-in as written in an entries file. YAML is a
// superset of JSON, so both formats decode through yaml.v3.
type entryDocument struct {
	Date               string         `yaml:"date"`
	OverallMood        int            `yaml:"overallMood"`
	Energy             int            `yaml:"energy"`
	Sleep              int            `yaml:"sleep"`
	DepressiveSymptoms map[string]int `yaml:"depressiveSymptoms"`
	AnxietySymptoms    map[string]int `yaml:"anxietySymptoms"`
	StressIndicators   map[string]int `yaml:"stressIndicators"`
	Activities         []string       `yaml:"activities"`
	Triggers           []string       `yaml:"triggers"`
	CopingStrategies   []string       `yaml:"copingStrategies"`
	Notes              string         `yaml:"notes"`
}

type entriesFile struct {
	Entries []entryDocument `yaml:"entries"`
}

func (document entryDocument) entry(location *time.Location) (scoring.Entry, error) {
	day, err := parseDocumentDate(document.Date, location)
	if err != nil {
		return scoring.Entry{}, err
	}
	input, err := services.NormalizeEntryInput(services.EntryInput{
		OverallMood:        document.OverallMood,
		Energy:             document.Energy,
		Sleep:              document.Sleep,
		DepressiveSymptoms: document.DepressiveSymptoms,
		AnxietySymptoms:    document.AnxietySymptoms,
		StressIndicators:   document.StressIndicators,
		Activities:         document.Activities,
		Triggers:           document.Triggers,
		CopingStrategies:   document.CopingStrategies,
		Notes:              document.Notes,
	})
	if err != nil {
		return scoring.Entry{}, err
	}
	return scoring.Entry{
		Date:               day,
		OverallMood:        input.OverallMood,
		Energy:             input.Energy,
		Sleep:              input.Sleep,
		DepressiveSymptoms: input.DepressiveSymptoms,
		AnxietySymptoms:    input.AnxietySymptoms,
		StressIndicators:   input.StressIndicators,
		Activities:         input.Activities,
		Triggers:           input.Triggers,
		CopingStrategies:   input.CopingStrategies,
		Notes:              input.Notes,
	}, nil
}

func parseDocumentDate(raw string, location *time.Location) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if day, err := services.ParseDay(value, location); err == nil {
		return day, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid entry date %q", raw)
	}
	return services.DateAtLocation(parsed, location), nil
}

// DecodeEntries accepts either a top-level list of entries or a mapping with an
// "entries" list.
func DecodeEntries(raw []byte, location *time.Location) ([]scoring.Entry, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("parse entries: %w", err)
	}
	if len(node.Content) == 0 {
		return []scoring.Entry{}, nil
	}

	var documents []entryDocument
	switch node.Content[0].Kind {
	case yaml.SequenceNode:
		if err := node.Content[0].Decode(&documents); err != nil {
			return nil, fmt.Errorf("decode entries: %w", err)
		}
	case yaml.MappingNode:
		var file entriesFile
		if err := node.Content[0].Decode(&file); err != nil {
			return nil, fmt.Errorf("decode entries: %w", err)
		}
		documents = file.Entries
	default:
		return nil, fmt.Errorf("decode entries: expected a list or an entries mapping")
	}

	entries := make([]scoring.Entry, 0, len(documents))
	for index, document := range documents {
		entry, err := document.entry(location)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", index+1, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// AnalyzeFile scores the trailing window of the entries in path and writes the
// analysis as indented JSON.
func AnalyzeFile(path string, windowSize int, location *time.Location, out io.Writer) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read entries file: %w", err)
	}
	return AnalyzeEntries(bytes.TrimSpace(raw), windowSize, location, out)
}

func AnalyzeEntries(raw []byte, windowSize int, location *time.Location, out io.Writer) error {
	if windowSize <= 0 {
		return fmt.Errorf("window must be positive, got %d", windowSize)
	}
	entries, err := DecodeEntries(raw, location)
	if err != nil {
		return err
	}

	analysis := services.AnalyzeEntries(entries, windowSize)
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(analysis)
}
