package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/mindguard/internal/models"
	"gorm.io/gorm"
)

type EntryRepository struct {
	database *gorm.DB
}

func NewEntryRepository(database *gorm.DB) *EntryRepository {
	return &EntryRepository{database: database}
}

func (repo *EntryRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	query := repo.database.Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}
	if err := query.Order("date ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListRecentByUser returns at most limit of the newest entries, oldest first.
func (repo *EntryRepository) ListRecentByUser(userID uint, limit int) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0, limit)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	for left, right := 0, len(entries)-1; left < right; left, right = left+1, right-1 {
		entries[left], entries[right] = entries[right], entries[left]
	}
	return entries, nil
}

func (repo *EntryRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodEntry, bool, error) {
	var entry models.MoodEntry
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		First(&entry)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.MoodEntry{}, false, nil
	}
	if result.Error != nil {
		return models.MoodEntry{}, false, result.Error
	}
	return entry, true, nil
}

func (repo *EntryRepository) Create(entry *models.MoodEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *EntryRepository) Save(entry *models.MoodEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *EntryRepository) DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error) {
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Delete(&models.MoodEntry{})
	return result.RowsAffected, result.Error
}

func (repo *EntryRepository) DeleteByUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.MoodEntry{}).Error
}
