package models

import "time"

type MoodEntry struct {
	ID                 uint           `gorm:"primaryKey" json:"id,omitempty"`
	UserID             uint           `gorm:"not null;uniqueIndex:uidx_mood_entries_user_date" json:"userId"`
	Date               time.Time      `gorm:"type:date;not null;uniqueIndex:uidx_mood_entries_user_date" json:"date"`
	OverallMood        int            `gorm:"not null" json:"overallMood"`
	Energy             int            `gorm:"not null" json:"energy"`
	Sleep              int            `gorm:"not null" json:"sleep"`
	DepressiveSymptoms map[string]int `gorm:"serializer:json" json:"depressiveSymptoms"`
	AnxietySymptoms    map[string]int `gorm:"serializer:json" json:"anxietySymptoms"`
	StressIndicators   map[string]int `gorm:"serializer:json" json:"stressIndicators"`
	Activities         []string       `gorm:"serializer:json" json:"activities"`
	Triggers           []string       `gorm:"serializer:json" json:"triggers"`
	CopingStrategies   []string       `gorm:"serializer:json" json:"copingStrategies"`
	Notes              string         `json:"notes"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}
