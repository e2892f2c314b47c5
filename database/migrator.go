package database

import (
	"github.com/evandrarf/mock-interview-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.QuestionBankEntry{},
		&entity.Interview{},
		&entity.InterviewQuestion{},
		&entity.InterviewAnswer{},
		&entity.InterviewReport{},
		&entity.ProctoringEvent{},
	)
}
