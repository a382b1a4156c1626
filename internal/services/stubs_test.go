package services

import (
	"errors"
	"sort"
	"time"

	"github.com/terraincognita07/mindguard/internal/models"
	"gorm.io/gorm"
)

type memoryEntryStore struct {
	entries  []models.MoodEntry
	nextID   uint
	findErr  error
	saveErr  error
	listErr  error
	deleteID uint
}

func (store *memoryEntryStore) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.MoodEntry, error) {
	if store.listErr != nil {
		return nil, store.listErr
	}
	result := make([]models.MoodEntry, 0)
	for _, entry := range store.sorted() {
		if entry.UserID != userID {
			continue
		}
		if fromStart != nil && entry.Date.Before(*fromStart) {
			continue
		}
		if toEnd != nil && !entry.Date.Before(*toEnd) {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

func (store *memoryEntryStore) ListRecentByUser(userID uint, limit int) ([]models.MoodEntry, error) {
	all, err := store.ListByUserRange(userID, nil, nil)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

func (store *memoryEntryStore) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodEntry, bool, error) {
	if store.findErr != nil {
		return models.MoodEntry{}, false, store.findErr
	}
	for _, entry := range store.entries {
		if entry.UserID == userID && !entry.Date.Before(dayStart) && entry.Date.Before(dayEnd) {
			return entry, true, nil
		}
	}
	return models.MoodEntry{}, false, nil
}

func (store *memoryEntryStore) Create(entry *models.MoodEntry) error {
	if store.saveErr != nil {
		return store.saveErr
	}
	store.nextID++
	entry.ID = store.nextID
	store.entries = append(store.entries, *entry)
	return nil
}

func (store *memoryEntryStore) Save(entry *models.MoodEntry) error {
	if store.saveErr != nil {
		return store.saveErr
	}
	for index := range store.entries {
		if store.entries[index].ID == entry.ID {
			store.entries[index] = *entry
			return nil
		}
	}
	return errors.New("entry not stored")
}

func (store *memoryEntryStore) DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error) {
	kept := store.entries[:0]
	var deleted int64
	for _, entry := range store.entries {
		if entry.UserID == userID && !entry.Date.Before(dayStart) && entry.Date.Before(dayEnd) {
			deleted++
			continue
		}
		kept = append(kept, entry)
	}
	store.entries = kept
	return deleted, nil
}

func (store *memoryEntryStore) DeleteByUser(userID uint) error {
	store.deleteID = userID
	kept := store.entries[:0]
	for _, entry := range store.entries {
		if entry.UserID != userID {
			kept = append(kept, entry)
		}
	}
	store.entries = kept
	return nil
}

func (store *memoryEntryStore) sorted() []models.MoodEntry {
	result := make([]models.MoodEntry, len(store.entries))
	copy(result, store.entries)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

type stubUserRepository struct {
	users           map[uint]models.User
	nextID          uint
	createErr       error
	setCounselorErr error
	deletedID       uint
	updatedHash     string
}

func newStubUserRepository(users ...models.User) *stubUserRepository {
	repo := &stubUserRepository{users: make(map[uint]models.User)}
	for _, user := range users {
		repo.users[user.ID] = user
		if user.ID > repo.nextID {
			repo.nextID = user.ID
		}
	}
	return repo
}

func (repo *stubUserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	_, err := repo.FindByNormalizedEmail(email)
	return err == nil, nil
}

func (repo *stubUserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range repo.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (repo *stubUserRepository) FindByID(userID uint) (models.User, error) {
	user, ok := repo.users[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (repo *stubUserRepository) Create(user *models.User) error {
	if repo.createErr != nil {
		return repo.createErr
	}
	repo.nextID++
	user.ID = repo.nextID
	repo.users[user.ID] = *user
	return nil
}

func (repo *stubUserRepository) SetCounselor(userID uint, counselorID *uint) error {
	if repo.setCounselorErr != nil {
		return repo.setCounselorErr
	}
	user := repo.users[userID]
	user.CounselorID = counselorID
	repo.users[userID] = user
	return nil
}

func (repo *stubUserRepository) ListByCounselor(counselorID uint) ([]models.User, error) {
	result := make([]models.User, 0)
	for _, user := range repo.users {
		if user.CounselorID != nil && *user.CounselorID == counselorID {
			result = append(result, user)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (repo *stubUserRepository) UpdateByID(userID uint, updates map[string]any) error {
	user := repo.users[userID]
	if name, ok := updates["display_name"].(string); ok {
		user.DisplayName = name
	}
	repo.users[userID] = user
	return nil
}

func (repo *stubUserRepository) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	repo.updatedHash = passwordHash
	user := repo.users[userID]
	user.PasswordHash = passwordHash
	user.MustChangePassword = mustChangePassword
	repo.users[userID] = user
	return nil
}

func (repo *stubUserRepository) DeleteAccountAndRelatedData(userID uint) error {
	repo.deletedID = userID
	delete(repo.users, userID)
	return nil
}

func uintPointer(value uint) *uint {
	return &value
}
