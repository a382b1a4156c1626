package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Entries     *EntryRepository
	Assessments *AssessmentRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Entries:     NewEntryRepository(database),
		Assessments: NewAssessmentRepository(database),
	}
}
