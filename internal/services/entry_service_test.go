package services

import (
	"errors"
	"testing"
	"time"
)

func fixedEntryService(store *memoryEntryStore) *EntryService {
	service := NewEntryService(store)
	service.now = func() time.Time {
		return time.Date(2026, time.March, 20, 18, 0, 0, 0, time.UTC)
	}
	return service
}

func moodInput(mood int) EntryInput {
	return EntryInput{OverallMood: mood, Energy: 5, Sleep: 6}
}

func TestUpsertEntryLaterSubmissionReplacesDay(t *testing.T) {
	store := &memoryEntryStore{}
	service := fixedEntryService(store)
	day := time.Date(2026, time.March, 19, 8, 30, 0, 0, time.UTC)

	first, created, err := service.UpsertEntry(1, day, moodInput(3), time.UTC)
	if err != nil || !created {
		t.Fatalf("first upsert: created=%v err=%v", created, err)
	}
	if first.Date.Hour() != 0 {
		t.Fatalf("expected entry date at local midnight, got %s", first.Date)
	}

	second, created, err := service.UpsertEntry(1, day.Add(10*time.Hour), moodInput(9), time.UTC)
	if err != nil || created {
		t.Fatalf("second upsert: created=%v err=%v", created, err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same entry to be updated, got ids %d and %d", first.ID, second.ID)
	}
	if len(store.entries) != 1 || store.entries[0].OverallMood != 9 {
		t.Fatalf("expected one superseded entry, got %#v", store.entries)
	}
}

func TestUpsertEntryRejectsFutureDay(t *testing.T) {
	service := fixedEntryService(&memoryEntryStore{})

	_, _, err := service.UpsertEntry(1, time.Date(2026, time.March, 21, 0, 0, 0, 0, time.UTC), moodInput(5), time.UTC)
	if !errors.Is(err, ErrEntryInFuture) {
		t.Fatalf("expected ErrEntryInFuture, got %v", err)
	}
}

func TestUpsertEntryPropagatesValidationAndStoreErrors(t *testing.T) {
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	input := moodInput(5)
	input.AnxietySymptoms = map[string]int{"hopelessness": 1}
	if _, _, err := fixedEntryService(&memoryEntryStore{}).UpsertEntry(1, day, input, time.UTC); !errors.Is(err, ErrUnknownIndicator) {
		t.Fatalf("expected ErrUnknownIndicator, got %v", err)
	}

	failingFind := &memoryEntryStore{findErr: errors.New("boom")}
	if _, _, err := fixedEntryService(failingFind).UpsertEntry(1, day, moodInput(5), time.UTC); !errors.Is(err, ErrEntryLoadFailed) {
		t.Fatalf("expected ErrEntryLoadFailed, got %v", err)
	}

	failingSave := &memoryEntryStore{saveErr: errors.New("boom")}
	if _, _, err := fixedEntryService(failingSave).UpsertEntry(1, day, moodInput(5), time.UTC); !errors.Is(err, ErrEntryCreateFailed) {
		t.Fatalf("expected ErrEntryCreateFailed, got %v", err)
	}
}

func TestFetchAndDeleteEntry(t *testing.T) {
	store := &memoryEntryStore{}
	service := fixedEntryService(store)
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	if _, err := service.FetchEntry(1, day, time.UTC); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
	if err := service.DeleteEntry(1, day, time.UTC); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound on delete, got %v", err)
	}

	if _, _, err := service.UpsertEntry(1, day, moodInput(4), time.UTC); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	entry, err := service.FetchEntry(1, day.Add(23*time.Hour), time.UTC)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if entry.OverallMood != 4 {
		t.Fatalf("unexpected entry %#v", entry)
	}
	if _, err := service.FetchEntry(2, day, time.UTC); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected other users to see nothing, got %v", err)
	}

	if err := service.DeleteEntry(1, day, time.UTC); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.entries) != 0 {
		t.Fatalf("expected store to be empty, got %#v", store.entries)
	}
}

func TestListEntriesUsesInclusiveDayBounds(t *testing.T) {
	store := &memoryEntryStore{}
	service := fixedEntryService(store)
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	for offset := 0; offset < 5; offset++ {
		if _, _, err := service.UpsertEntry(1, base.AddDate(0, 0, offset), moodInput(offset+1), time.UTC); err != nil {
			t.Fatalf("upsert %d: %v", offset, err)
		}
	}

	from := base.AddDate(0, 0, 1)
	to := base.AddDate(0, 0, 3)
	entries, err := service.ListEntries(1, &from, &to, time.UTC)
	if err != nil {
		t.Fatalf("ListEntries() unexpected error: %v", err)
	}
	if len(entries) != 3 || entries[0].OverallMood != 2 || entries[2].OverallMood != 4 {
		t.Fatalf("unexpected entries %#v", entries)
	}

	all, err := service.ListEntries(1, nil, nil, time.UTC)
	if err != nil || len(all) != 5 {
		t.Fatalf("expected all 5 entries, got %d err=%v", len(all), err)
	}
}

func TestRecentWindow(t *testing.T) {
	store := &memoryEntryStore{}
	service := fixedEntryService(store)
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	for offset := 0; offset < 6; offset++ {
		if _, _, err := service.UpsertEntry(1, base.AddDate(0, 0, offset), moodInput(offset+1), time.UTC); err != nil {
			t.Fatalf("upsert %d: %v", offset, err)
		}
	}

	window, err := service.RecentWindow(1, 4)
	if err != nil {
		t.Fatalf("RecentWindow() unexpected error: %v", err)
	}
	if len(window) != 4 || window[0].OverallMood != 3 || window[3].OverallMood != 6 {
		t.Fatalf("unexpected window %#v", window)
	}

	if _, err := service.RecentWindow(1, 0); !errors.Is(err, ErrEntryWindowInvalid) {
		t.Fatalf("expected ErrEntryWindowInvalid, got %v", err)
	}
}
