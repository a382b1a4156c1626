package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/mindguard/internal/models"
	"github.com/terraincognita07/mindguard/internal/scoring"
)

var (
	ErrEntryNotFound      = errors.New("entry not found")
	ErrEntryInFuture      = errors.New("entry date is in the future")
	ErrEntryLoadFailed    = errors.New("load entry failed")
	ErrEntryCreateFailed  = errors.New("create entry failed")
	ErrEntryUpdateFailed  = errors.New("update entry failed")
	ErrEntryDeleteFailed  = errors.New("delete entry failed")
	ErrEntryRangeInvalid  = errors.New("entry range invalid")
	ErrEntryWindowInvalid = errors.New("entry window invalid")
)

// EntryStore is implemented by both the SQLite and the MongoDB entry repositories.
type EntryStore interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.MoodEntry, error)
	ListRecentByUser(userID uint, limit int) ([]models.MoodEntry, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodEntry, bool, error)
	Create(entry *models.MoodEntry) error
	Save(entry *models.MoodEntry) error
	DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error)
	DeleteByUser(userID uint) error
}

type EntryService struct {
	entries EntryStore
	now     func() time.Time
}

func NewEntryService(entries EntryStore) *EntryService {
	return &EntryService{entries: entries, now: time.Now}
}

// UpsertEntry records the day's check-in. A later submission for the same day
// replaces the earlier one. The boolean reports whether a new entry was created.
func (service *EntryService) UpsertEntry(userID uint, day time.Time, input EntryInput, location *time.Location) (models.MoodEntry, bool, error) {
	normalized, err := NormalizeEntryInput(input)
	if err != nil {
		return models.MoodEntry{}, false, err
	}

	dayStart, dayEnd := DayRange(day, location)
	today := DateAtLocation(service.now(), location)
	if dayStart.After(today) {
		return models.MoodEntry{}, false, ErrEntryInFuture
	}

	entry, found, err := service.entries.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.MoodEntry{}, false, ErrEntryLoadFailed
	}

	if !found {
		entry = models.MoodEntry{UserID: userID, Date: dayStart}
	}
	applyEntryInput(&entry, normalized)

	if found {
		if err := service.entries.Save(&entry); err != nil {
			return models.MoodEntry{}, false, ErrEntryUpdateFailed
		}
		return entry, false, nil
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.MoodEntry{}, false, ErrEntryCreateFailed
	}
	return entry, true, nil
}

func applyEntryInput(entry *models.MoodEntry, input EntryInput) {
	entry.OverallMood = input.OverallMood
	entry.Energy = input.Energy
	entry.Sleep = input.Sleep
	entry.DepressiveSymptoms = input.DepressiveSymptoms
	entry.AnxietySymptoms = input.AnxietySymptoms
	entry.StressIndicators = input.StressIndicators
	entry.Activities = input.Activities
	entry.Triggers = input.Triggers
	entry.CopingStrategies = input.CopingStrategies
	entry.Notes = input.Notes
}

func (service *EntryService) FetchEntry(userID uint, day time.Time, location *time.Location) (models.MoodEntry, error) {
	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.entries.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.MoodEntry{}, ErrEntryLoadFailed
	}
	if !found {
		return models.MoodEntry{}, ErrEntryNotFound
	}
	return entry, nil
}

func (service *EntryService) ListEntries(userID uint, from *time.Time, to *time.Time, location *time.Location) ([]models.MoodEntry, error) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start, _ := DayRange(*from, location)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, location)
		toEnd = &end
	}
	if fromStart != nil && toEnd != nil && !toEnd.After(*fromStart) {
		return nil, ErrEntryRangeInvalid
	}
	return service.entries.ListByUserRange(userID, fromStart, toEnd)
}

func (service *EntryService) DeleteEntry(userID uint, day time.Time, location *time.Location) error {
	dayStart, dayEnd := DayRange(day, location)
	deleted, err := service.entries.DeleteByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return ErrEntryDeleteFailed
	}
	if deleted == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// RecentWindow loads the user's trailing window, oldest entry first.
func (service *EntryService) RecentWindow(userID uint, size int) ([]scoring.Entry, error) {
	if size <= 0 {
		return nil, ErrEntryWindowInvalid
	}
	entries, err := service.entries.ListRecentByUser(userID, size)
	if err != nil {
		return nil, err
	}
	return ScoringEntries(entries), nil
}

func (service *EntryService) DeleteAllForUser(userID uint) error {
	return service.entries.DeleteByUser(userID)
}
