package repository

import (
	"time"

	"github.com/evandrarf/mock-interview-be/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	InterviewRepository interface {
		// Interview operations
		CreateInterviewWithQuestions(db *gorm.DB, interview *entity.Interview, questions []entity.InterviewQuestion) error
		FindInterviewByID(db *gorm.DB, interviewID string) (*entity.Interview, error)
		FindInterviewsByUserID(db *gorm.DB, userID uint) ([]entity.Interview, error)
		FinalizeInterview(db *gorm.DB, interviewID, status, reason string, completedAt time.Time, report *entity.InterviewReport) error

		// Question and answer operations
		FindQuestion(db *gorm.DB, interviewID string, questionID uint) (*entity.InterviewQuestion, error)
		CreateAnswer(db *gorm.DB, answer *entity.InterviewAnswer) error
		FindAnswerByQuestionID(db *gorm.DB, questionID uint) (*entity.InterviewAnswer, error)
		FindAnswersByInterviewID(db *gorm.DB, interviewID string) ([]entity.InterviewAnswer, error)

		// Report operations
		FindReportByInterviewID(db *gorm.DB, interviewID string) (*entity.InterviewReport, error)

		// Proctoring operations
		CreateProctoringEvent(db *gorm.DB, event *entity.ProctoringEvent) error
		FindProctoringEventsByInterviewID(db *gorm.DB, interviewID string) ([]entity.ProctoringEvent, error)

		// Question bank operations
		UpsertBankEntries(db *gorm.DB, entries []entity.QuestionBankEntry) error
		FindBankEntries(db *gorm.DB, category string) ([]entity.QuestionBankEntry, error)
	}

	interviewRepository struct {
		db *gorm.DB
	}
)

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

// Interview operations
func (r *interviewRepository) CreateInterviewWithQuestions(db *gorm.DB, interview *entity.Interview, questions []entity.InterviewQuestion) error {
	if db == nil {
		db = r.db
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(interview).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].InterviewID = interview.InterviewID
		}
		if len(questions) == 0 {
			return nil
		}
		if err := tx.Create(&questions).Error; err != nil {
			return err
		}
		interview.Questions = questions
		return nil
	})
}

func (r *interviewRepository) FindInterviewByID(db *gorm.DB, interviewID string) (*entity.Interview, error) {
	if db == nil {
		db = r.db
	}
	var interview entity.Interview
	err := db.Preload("Questions", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	}).Where("interview_id = ?", interviewID).First(&interview).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindInterviewsByUserID(db *gorm.DB, userID uint) ([]entity.Interview, error) {
	if db == nil {
		db = r.db
	}
	var interviews []entity.Interview
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&interviews).Error
	return interviews, err
}

// FinalizeInterview closes an in-progress interview and stores its report in one transaction.
func (r *interviewRepository) FinalizeInterview(db *gorm.DB, interviewID, status, reason string, completedAt time.Time, report *entity.InterviewReport) error {
	if db == nil {
		db = r.db
	}
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entity.Interview{}).
			Where("interview_id = ? AND status = ?", interviewID, entity.InterviewStatusInProgress).
			Updates(map[string]interface{}{
				"status":             status,
				"termination_reason": reason,
				"completed_at":       completedAt,
			}).Error
		if err != nil {
			return err
		}
		return tx.Create(report).Error
	})
}

// Question and answer operations
func (r *interviewRepository) FindQuestion(db *gorm.DB, interviewID string, questionID uint) (*entity.InterviewQuestion, error) {
	if db == nil {
		db = r.db
	}
	var question entity.InterviewQuestion
	err := db.Where("interview_id = ? AND id = ?", interviewID, questionID).First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *interviewRepository) CreateAnswer(db *gorm.DB, answer *entity.InterviewAnswer) error {
	if db == nil {
		db = r.db
	}
	return db.Create(answer).Error
}

func (r *interviewRepository) FindAnswerByQuestionID(db *gorm.DB, questionID uint) (*entity.InterviewAnswer, error) {
	if db == nil {
		db = r.db
	}
	var answer entity.InterviewAnswer
	err := db.Where("question_id = ?", questionID).First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *interviewRepository) FindAnswersByInterviewID(db *gorm.DB, interviewID string) ([]entity.InterviewAnswer, error) {
	if db == nil {
		db = r.db
	}
	var answers []entity.InterviewAnswer
	err := db.Where("interview_id = ?", interviewID).Order("answered_at ASC, id ASC").Find(&answers).Error
	return answers, err
}

// Report operations
func (r *interviewRepository) FindReportByInterviewID(db *gorm.DB, interviewID string) (*entity.InterviewReport, error) {
	if db == nil {
		db = r.db
	}
	var report entity.InterviewReport
	err := db.Where("interview_id = ?", interviewID).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Proctoring operations
func (r *interviewRepository) CreateProctoringEvent(db *gorm.DB, event *entity.ProctoringEvent) error {
	if db == nil {
		db = r.db
	}
	return db.Create(event).Error
}

func (r *interviewRepository) FindProctoringEventsByInterviewID(db *gorm.DB, interviewID string) ([]entity.ProctoringEvent, error) {
	if db == nil {
		db = r.db
	}
	var events []entity.ProctoringEvent
	err := db.Where("interview_id = ?", interviewID).Order("created_at ASC, id ASC").Find(&events).Error
	return events, err
}

// Question bank operations
func (r *interviewRepository) UpsertBankEntries(db *gorm.DB, entries []entity.QuestionBankEntry) error {
	if db == nil {
		db = r.db
	}
	if len(entries) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "position"}},
		DoUpdates: clause.AssignmentColumns([]string{"question_text", "updated_at"}),
	}).Create(&entries).Error
}

func (r *interviewRepository) FindBankEntries(db *gorm.DB, category string) ([]entity.QuestionBankEntry, error) {
	if db == nil {
		db = r.db
	}
	var entries []entity.QuestionBankEntry
	query := db.Order("category ASC, position ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&entries).Error
	return entries, err
}
