package models

import (
	"time"

	"github.com/terraincognita07/mindguard/internal/scoring"
)

type Assessment struct {
	ID          uint                     `gorm:"primaryKey" json:"-"`
	PublicID    string                   `gorm:"uniqueIndex;not null" json:"id"`
	UserID      uint                     `gorm:"not null;index" json:"userId"`
	TakenAt     time.Time                `gorm:"not null" json:"takenAt"`
	Answers     map[string]int           `gorm:"serializer:json" json:"answers"`
	Result      scoring.AssessmentResult `gorm:"serializer:json" json:"result"`
	OverallRisk string                   `gorm:"not null" json:"overallRisk"`
}
