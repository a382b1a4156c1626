package db

import (
	"errors"

	"github.com/terraincognita07/mindguard/internal/models"
	"gorm.io/gorm"
)

type AssessmentRepository struct {
	database *gorm.DB
}

func NewAssessmentRepository(database *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{database: database}
}

func (repo *AssessmentRepository) Create(assessment *models.Assessment) error {
	return repo.database.Create(assessment).Error
}

func (repo *AssessmentRepository) ListByUser(userID uint, limit int) ([]models.Assessment, error) {
	assessments := make([]models.Assessment, 0)
	query := repo.database.Where("user_id = ?", userID).Order("taken_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (repo *AssessmentRepository) FindLatestByUser(userID uint) (models.Assessment, bool, error) {
	var assessment models.Assessment
	result := repo.database.
		Where("user_id = ?", userID).
		Order("taken_at DESC, id DESC").
		First(&assessment)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.Assessment{}, false, nil
	}
	if result.Error != nil {
		return models.Assessment{}, false, result.Error
	}
	return assessment, true, nil
}
