package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	InterviewStatusInProgress = "in_progress"
	InterviewStatusCompleted  = "completed"
	InterviewStatusTerminated = "terminated"

	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// User - Akun kandidat
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// QuestionBankEntry - Seeded copy of the local question bank
type QuestionBankEntry struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Category     string    `gorm:"size:20;not null;uniqueIndex:idx_bank_category_position" json:"category"` // behavioral, technical, situational, mixed
	Position     int       `gorm:"not null;uniqueIndex:idx_bank_category_position" json:"position"`
	QuestionText string    `gorm:"type:text;not null" json:"question_text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (QuestionBankEntry) TableName() string {
	return "question_bank_entries"
}

// Interview - One mock interview session
type Interview struct {
	ID                uint                `gorm:"primarykey" json:"id"`
	InterviewID       string              `gorm:"uniqueIndex;size:36;not null" json:"interview_id"` // uuid
	UserID            uint                `gorm:"not null;index" json:"user_id"`
	JobRole           string              `gorm:"size:100;not null" json:"job_role"`
	InterviewType     string              `gorm:"size:20;not null" json:"interview_type"`
	Difficulty        string              `gorm:"size:20;not null" json:"difficulty"`
	NumQuestions      int                 `gorm:"not null" json:"num_questions"`
	Topic             string              `gorm:"size:200" json:"topic"`
	UseAI             bool                `gorm:"not null" json:"use_ai"`
	QuestionSource    string              `gorm:"size:20;default:fallback" json:"question_source"` // ai, fallback
	Status            string              `gorm:"size:20;not null;index" json:"status"`
	TerminationReason string              `gorm:"size:50" json:"termination_reason,omitempty"`
	CompletedAt       *time.Time          `json:"completed_at,omitempty"`
	Questions         []InterviewQuestion `gorm:"foreignKey:InterviewID;references:InterviewID" json:"questions,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	DeletedAt         gorm.DeletedAt      `gorm:"index" json:"deleted_at,omitempty"`
}

func (Interview) TableName() string {
	return "interviews"
}

// InterviewQuestion - Append-only; written once when the interview starts
type InterviewQuestion struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	InterviewID  string    `gorm:"size:36;not null;index" json:"interview_id"`
	Position     int       `gorm:"not null" json:"position"`
	QuestionText string    `gorm:"type:text;not null" json:"question_text"`
	Source       string    `gorm:"size:20;not null" json:"source"`
	CreatedAt    time.Time `json:"created_at"`
}

func (InterviewQuestion) TableName() string {
	return "interview_questions"
}

// InterviewAnswer - Append-only; one row per question
type InterviewAnswer struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	InterviewID string    `gorm:"size:36;not null;index" json:"interview_id"`
	QuestionID  uint      `gorm:"not null;uniqueIndex" json:"question_id"`
	AnswerText  string    `gorm:"type:text" json:"answer_text"`
	Skipped     bool      `gorm:"not null;default:false" json:"skipped"`
	Score       *int      `json:"score"` // null when skipped
	Grade       string    `gorm:"size:20" json:"grade"`
	Positive    string    `gorm:"type:text" json:"positive"`
	Improve     string    `gorm:"type:text" json:"improve"`
	Brief       string    `gorm:"type:text" json:"brief"`
	Source      string    `gorm:"size:20" json:"source"`
	AnsweredAt  time.Time `gorm:"autoCreateTime" json:"answered_at"`
}

func (InterviewAnswer) TableName() string {
	return "interview_answers"
}

// InterviewReport - Payload is the exact JSON returned to the client
type InterviewReport struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	InterviewID  string    `gorm:"uniqueIndex;size:36;not null" json:"interview_id"`
	OverallScore int       `gorm:"not null" json:"overall_score"`
	Grade        string    `gorm:"size:20;not null" json:"grade"`
	Source       string    `gorm:"size:20;not null" json:"source"`
	Payload      string    `gorm:"type:text;not null" json:"payload"`
	CreatedAt    time.Time `json:"created_at"`
}

func (InterviewReport) TableName() string {
	return "interview_reports"
}

// ProctoringEvent - Warnings and terminations raised during an interview
type ProctoringEvent struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	InterviewID  string    `gorm:"size:36;not null;index" json:"interview_id"`
	Kind         string    `gorm:"size:20;not null" json:"kind"` // warning, terminated
	Reason       string    `gorm:"size:50;not null" json:"reason"`
	WarningCount int       `gorm:"not null" json:"warning_count"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ProctoringEvent) TableName() string {
	return "proctoring_events"
}
