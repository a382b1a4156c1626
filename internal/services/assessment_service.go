package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/mindguard/internal/models"
	"github.com/terraincognita07/mindguard/internal/scoring"
)

const DefaultAssessmentHistoryLimit = 20

var (
	ErrUnknownQuestion      = errors.New("unknown assessment question")
	ErrInvalidAnswer        = errors.New("invalid assessment answer")
	ErrAssessmentIncomplete = errors.New("assessment incomplete")
	ErrAssessmentNotFound   = errors.New("assessment not found")
	ErrAssessmentSaveFailed = errors.New("save assessment failed")
	ErrAssessmentLoadFailed = errors.New("load assessment failed")
)

type AssessmentRepository interface {
	Create(assessment *models.Assessment) error
	ListByUser(userID uint, limit int) ([]models.Assessment, error)
	FindLatestByUser(userID uint) (models.Assessment, bool, error)
}

type AssessmentService struct {
	assessments AssessmentRepository
	now         func() time.Time
	newID       func() string
}

func NewAssessmentService(assessments AssessmentRepository) *AssessmentService {
	return &AssessmentService{
		assessments: assessments,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// ValidateAnswers requires one in-range answer for every question in the bank.
func ValidateAnswers(answers map[string]int) error {
	for id, value := range answers {
		if _, ok := scoring.QuestionByID(id); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
		}
		if value < scoring.MinSeverity || value > scoring.MaxSeverity {
			return fmt.Errorf("%w: %q=%d", ErrInvalidAnswer, id, value)
		}
	}
	for _, question := range scoring.Questions() {
		if _, ok := answers[question.ID]; !ok {
			return fmt.Errorf("%w: missing %q", ErrAssessmentIncomplete, question.ID)
		}
	}
	return nil
}

func (service *AssessmentService) Submit(userID uint, answers map[string]int) (models.Assessment, error) {
	if err := ValidateAnswers(answers); err != nil {
		return models.Assessment{}, err
	}

	result := scoring.ScoreAssessment(answers)
	stored := make(map[string]int, len(answers))
	for id, value := range answers {
		stored[id] = value
	}

	assessment := models.Assessment{
		PublicID:    service.newID(),
		UserID:      userID,
		TakenAt:     service.now().UTC(),
		Answers:     stored,
		Result:      result,
		OverallRisk: string(result.OverallRisk),
	}
	if err := service.assessments.Create(&assessment); err != nil {
		return models.Assessment{}, ErrAssessmentSaveFailed
	}
	return assessment, nil
}

func (service *AssessmentService) History(userID uint, limit int) ([]models.Assessment, error) {
	if limit <= 0 {
		limit = DefaultAssessmentHistoryLimit
	}
	assessments, err := service.assessments.ListByUser(userID, limit)
	if err != nil {
		return nil, ErrAssessmentLoadFailed
	}
	return assessments, nil
}

func (service *AssessmentService) Latest(userID uint) (models.Assessment, error) {
	assessment, found, err := service.assessments.FindLatestByUser(userID)
	if err != nil {
		return models.Assessment{}, ErrAssessmentLoadFailed
	}
	if !found {
		return models.Assessment{}, ErrAssessmentNotFound
	}
	return assessment, nil
}
