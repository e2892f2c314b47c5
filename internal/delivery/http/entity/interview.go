package entity

import "github.com/evandrarf/mock-interview-be/internal/pkg/fallback"

// Request untuk memulai interview
type StartInterviewRequest struct {
	JobRole       string `json:"job_role" validate:"required,notblank,max=100"`
	InterviewType string `json:"interview_type" validate:"required,oneof=behavioral technical situational mixed"`
	Difficulty    string `json:"difficulty" validate:"required,oneof=Easy Medium Hard Expert easy medium hard expert"`
	NumQuestions  int    `json:"num_questions" validate:"required,min=1,max=15"`
	Topic         string `json:"topic" validate:"max=200"`
	UseAI         *bool  `json:"use_ai"`
}

type QuestionItem struct {
	ID           uint   `json:"id"`
	Position     int    `json:"position"`
	QuestionText string `json:"question_text"`
}

type AnswerItem struct {
	QuestionID uint   `json:"question_id"`
	AnswerText string `json:"answer_text"`
	Skipped    bool   `json:"skipped"`
	Score      *int   `json:"score"`
	Grade      string `json:"grade,omitempty"`
	Positive   string `json:"positive,omitempty"`
	Improve    string `json:"improve,omitempty"`
	Brief      string `json:"brief,omitempty"`
	AnsweredAt string `json:"answered_at"`
}

type InterviewSummary struct {
	InterviewID       string `json:"interview_id"`
	JobRole           string `json:"job_role"`
	InterviewType     string `json:"interview_type"`
	Difficulty        string `json:"difficulty"`
	NumQuestions      int    `json:"num_questions"`
	Topic             string `json:"topic,omitempty"`
	Status            string `json:"status"`
	TerminationReason string `json:"termination_reason,omitempty"`
	CreatedAt         string `json:"created_at"`
	CompletedAt       string `json:"completed_at,omitempty"`
}

type InterviewDetail struct {
	InterviewSummary
	Questions []QuestionItem `json:"questions"`
	Answers   []AnswerItem   `json:"answers"`
}

// Request untuk submit jawaban
type SubmitAnswerRequest struct {
	QuestionID uint   `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"max=10000"`
	Skipped    bool   `json:"skipped"`
}

// Response untuk submit jawaban
type SubmitAnswerResponse struct {
	InterviewID string `json:"interview_id"`
	QuestionID  uint   `json:"question_id"`
	Skipped     bool   `json:"skipped"`
	Score       *int   `json:"score"`
	Grade       string `json:"grade,omitempty"`
	Positive    string `json:"positive,omitempty"`
	Improve     string `json:"improve,omitempty"`
	Brief       string `json:"brief,omitempty"`
	Source      string `json:"source"`
}

// ReportResponse is the persisted report payload.
type ReportResponse struct {
	InterviewID       string `json:"interview_id"`
	JobRole           string `json:"job_role"`
	InterviewType     string `json:"interview_type"`
	Difficulty        string `json:"difficulty"`
	AnsweredQuestions int    `json:"answered_questions"`
	SkippedQuestions  int    `json:"skipped_questions"`
	Source            string `json:"source"`
	GeneratedAt       string `json:"generated_at"`
	fallback.InterviewReport
}

type QuestionBankItem struct {
	Category     string `json:"category"`
	Position     int    `json:"position"`
	QuestionText string `json:"question_text"`
}
