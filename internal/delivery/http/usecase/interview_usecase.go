package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evandrarf/mock-interview-be/internal/delivery/http/entity"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/mock-interview-be/internal/entity"
	"github.com/evandrarf/mock-interview-be/internal/pkg/fallback"
	"github.com/evandrarf/mock-interview-be/internal/pkg/llm"
	"github.com/evandrarf/mock-interview-be/internal/pkg/metrics"
	"github.com/evandrarf/mock-interview-be/internal/pkg/proctor"
	"github.com/evandrarf/mock-interview-be/internal/pkg/validate"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// MinAnswerLength is the minimum trimmed length of a non-skipped answer.
const MinAnswerLength = 10

type InterviewUsecase interface {
	Start(ctx context.Context, userID uint, req entity.StartInterviewRequest) (*entity.InterviewDetail, error)
	List(ctx context.Context, userID uint) ([]entity.InterviewSummary, error)
	Get(ctx context.Context, userID uint, interviewID string) (*entity.InterviewDetail, error)
	SubmitAnswer(ctx context.Context, userID uint, interviewID string, req entity.SubmitAnswerRequest) (*entity.SubmitAnswerResponse, error)
	Complete(ctx context.Context, userID uint, interviewID string) (json.RawMessage, error)
	GetReport(ctx context.Context, userID uint, interviewID string) (json.RawMessage, error)
	Terminate(ctx context.Context, interviewID, reason string) (json.RawMessage, error)
	QuestionBank(ctx context.Context, category string) ([]entity.QuestionBankItem, error)
}

type InterviewConfig struct {
	DB         *gorm.DB
	Generator  llm.Generator
	Engine     *fallback.Engine
	Repository repository.InterviewRepository
	Registry   *proctor.Registry
	Config     *viper.Viper
	Log        *logrus.Logger
	Now        func() time.Time
}

type interviewUsecase struct {
	cfg InterviewConfig
}

func NewInterviewUsecase(cfg InterviewConfig) InterviewUsecase {
	if cfg.Engine == nil {
		cfg.Engine = fallback.NewEngine(nil)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	return &interviewUsecase{cfg: cfg}
}

// aiEnabled reports whether the external generator should be tried for this interview.
func (u *interviewUsecase) aiEnabled(useAI bool) bool {
	if !useAI || u.cfg.Generator == nil {
		return false
	}
	if u.cfg.Config != nil && u.cfg.Config.GetBool("llm.disable_ai") {
		return false
	}
	return true
}

func (u *interviewUsecase) Start(ctx context.Context, userID uint, req entity.StartInterviewRequest) (*entity.InterviewDetail, error) {
	difficulty, ok := fallback.ParseDifficulty(req.Difficulty)
	if !ok {
		return nil, validate.NewFieldsError(map[string]string{"difficulty": "difficulty must be one of Easy, Medium, Hard, Expert"})
	}
	useAI := req.UseAI == nil || *req.UseAI

	sel := fallback.SelectionRequest{
		JobRole:       strings.TrimSpace(req.JobRole),
		InterviewType: fallback.ParseCategory(req.InterviewType),
		Difficulty:    difficulty,
		NumQuestions:  req.NumQuestions,
		Topic:         strings.TrimSpace(req.Topic),
	}

	interview := &internalEntity.Interview{
		InterviewID:   uuid.NewString(),
		UserID:        userID,
		JobRole:       sel.JobRole,
		InterviewType: string(sel.InterviewType),
		Difficulty:    string(difficulty),
		NumQuestions:  sel.NumQuestions,
		Topic:         sel.Topic,
		UseAI:         useAI,
		Status:        internalEntity.InterviewStatusInProgress,
	}
	log := u.cfg.Log.WithFields(logrus.Fields{"interview_id": interview.InterviewID, "stage": metrics.StageQuestions})

	texts, source := u.generateQuestions(ctx, log, sel, useAI)
	interview.QuestionSource = source

	questions := make([]internalEntity.InterviewQuestion, 0, len(texts))
	for i, text := range texts {
		questions = append(questions, internalEntity.InterviewQuestion{
			Position:     i + 1,
			QuestionText: text,
			Source:       source,
		})
	}

	if err := u.cfg.Repository.CreateInterviewWithQuestions(u.cfg.DB, interview, questions); err != nil {
		return nil, fmt.Errorf("failed to save interview: %w", err)
	}
	log.WithField("source", source).Info("interview started")

	return &entity.InterviewDetail{
		InterviewSummary: toSummary(interview),
		Questions:        toQuestionItems(interview.Questions),
		Answers:          []entity.AnswerItem{},
	}, nil
}

func (u *interviewUsecase) generateQuestions(ctx context.Context, log *logrus.Entry, sel fallback.SelectionRequest, useAI bool) ([]string, string) {
	if u.aiEnabled(useAI) {
		started := time.Now()
		text, err := u.cfg.Generator.GenerateText(ctx, questionPrompt(sel))
		if err == nil {
			var questions []string
			if questions, err = parseQuestions(text, sel.NumQuestions); err == nil {
				metrics.ObserveGenerator(u.cfg.Generator.Name(), metrics.StageQuestions, started, nil)
				return questions, internalEntity.SourceAI
			}
		}
		metrics.ObserveGenerator(u.cfg.Generator.Name(), metrics.StageQuestions, started, err)
		log.WithError(err).Warn("AI question generation failed, using local bank")
		metrics.FallbackCounter.WithLabelValues(metrics.StageQuestions).Inc()
	}
	return u.cfg.Engine.SelectQuestions(sel), internalEntity.SourceFallback
}

func (u *interviewUsecase) List(ctx context.Context, userID uint) ([]entity.InterviewSummary, error) {
	interviews, err := u.cfg.Repository.FindInterviewsByUserID(u.cfg.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	summaries := make([]entity.InterviewSummary, 0, len(interviews))
	for i := range interviews {
		summaries = append(summaries, toSummary(&interviews[i]))
	}
	return summaries, nil
}

// findOwned loads an interview and hides interviews of other users.
func (u *interviewUsecase) findOwned(userID uint, interviewID string) (*internalEntity.Interview, error) {
	interview, err := u.cfg.Repository.FindInterviewByID(u.cfg.DB, interviewID)
	if err != nil {
		return nil, notFound(err, ErrInterviewNotFound)
	}
	if interview.UserID != userID {
		return nil, ErrInterviewNotFound
	}
	return interview, nil
}

func (u *interviewUsecase) Get(ctx context.Context, userID uint, interviewID string) (*entity.InterviewDetail, error) {
	interview, err := u.findOwned(userID, interviewID)
	if err != nil {
		return nil, err
	}
	answers, err := u.cfg.Repository.FindAnswersByInterviewID(u.cfg.DB, interviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}

	items := make([]entity.AnswerItem, 0, len(answers))
	for _, a := range answers {
		items = append(items, entity.AnswerItem{
			QuestionID: a.QuestionID,
			AnswerText: a.AnswerText,
			Skipped:    a.Skipped,
			Score:      a.Score,
			Grade:      a.Grade,
			Positive:   a.Positive,
			Improve:    a.Improve,
			Brief:      a.Brief,
			AnsweredAt: a.AnsweredAt.Format(time.RFC3339),
		})
	}

	return &entity.InterviewDetail{
		InterviewSummary: toSummary(interview),
		Questions:        toQuestionItems(interview.Questions),
		Answers:          items,
	}, nil
}

func (u *interviewUsecase) SubmitAnswer(ctx context.Context, userID uint, interviewID string, req entity.SubmitAnswerRequest) (*entity.SubmitAnswerResponse, error) {
	interview, err := u.findOwned(userID, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.Status != internalEntity.InterviewStatusInProgress {
		return nil, ErrInterviewClosed
	}

	question, err := u.cfg.Repository.FindQuestion(u.cfg.DB, interviewID, req.QuestionID)
	if err != nil {
		return nil, notFound(err, ErrQuestionNotFound)
	}

	// Answers are append-only: a resubmission gets the stored evaluation back
	if existing, err := u.cfg.Repository.FindAnswerByQuestionID(u.cfg.DB, question.ID); err == nil {
		return toAnswerResponse(existing), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing answer: %w", err)
	}

	answerText := strings.TrimSpace(req.Answer)
	if !req.Skipped && len([]rune(answerText)) < MinAnswerLength {
		return nil, validate.NewFieldsError(map[string]string{
			"answer": fmt.Sprintf("answer must be at least %d characters", MinAnswerLength),
		})
	}

	answer := &internalEntity.InterviewAnswer{
		InterviewID: interviewID,
		QuestionID:  question.ID,
		AnswerText:  answerText,
		Skipped:     req.Skipped,
		Source:      internalEntity.SourceFallback,
		AnsweredAt:  u.cfg.Now(),
	}
	if !req.Skipped {
		difficulty, _ := fallback.ParseDifficulty(interview.Difficulty)
		eval, source := u.evaluate(ctx, interview, question.QuestionText, answerText, difficulty)
		score := eval.Score
		answer.Score = &score
		answer.Grade = string(fallback.ScoreToGrade(score))
		answer.Positive = eval.Positive
		answer.Improve = eval.Improve
		answer.Brief = eval.Brief
		answer.Source = source
	}

	if err := u.cfg.Repository.CreateAnswer(u.cfg.DB, answer); err != nil {
		// A concurrent submission for the same question won the unique index
		if existing, findErr := u.cfg.Repository.FindAnswerByQuestionID(u.cfg.DB, question.ID); findErr == nil {
			return toAnswerResponse(existing), nil
		}
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}

	return toAnswerResponse(answer), nil
}

func (u *interviewUsecase) evaluate(ctx context.Context, interview *internalEntity.Interview, question, answer string, difficulty fallback.Difficulty) (fallback.AnswerEvaluation, string) {
	if u.aiEnabled(interview.UseAI) {
		started := time.Now()
		text, err := u.cfg.Generator.GenerateText(ctx, evaluationPrompt(interview.JobRole, difficulty, question, answer))
		if err == nil {
			var eval fallback.AnswerEvaluation
			if eval, err = parseEvaluation(text, difficulty); err == nil {
				metrics.ObserveGenerator(u.cfg.Generator.Name(), metrics.StageEvaluation, started, nil)
				return eval, internalEntity.SourceAI
			}
		}
		metrics.ObserveGenerator(u.cfg.Generator.Name(), metrics.StageEvaluation, started, err)
		u.cfg.Log.WithFields(logrus.Fields{
			"interview_id": interview.InterviewID,
			"stage":        metrics.StageEvaluation,
		}).WithError(err).Warn("AI evaluation failed, using local evaluator")
		metrics.FallbackCounter.WithLabelValues(metrics.StageEvaluation).Inc()
	}
	return u.cfg.Engine.Evaluate(question, answer, difficulty), internalEntity.SourceFallback
}

func (u *interviewUsecase) Complete(ctx context.Context, userID uint, interviewID string) (json.RawMessage, error) {
	interview, err := u.findOwned(userID, interviewID)
	if err != nil {
		return nil, err
	}
	return u.finalize(ctx, interview, internalEntity.InterviewStatusCompleted, "")
}

// Terminate closes an interview on behalf of the proctoring policy.
func (u *interviewUsecase) Terminate(ctx context.Context, interviewID, reason string) (json.RawMessage, error) {
	interview, err := u.cfg.Repository.FindInterviewByID(u.cfg.DB, interviewID)
	if err != nil {
		return nil, notFound(err, ErrInterviewNotFound)
	}
	return u.finalize(ctx, interview, internalEntity.InterviewStatusTerminated, reason)
}

// finalize closes the interview with its report and releases its proctoring policy.
func (u *interviewUsecase) finalize(ctx context.Context, interview *internalEntity.Interview, status, reason string) (json.RawMessage, error) {
	payload, err := u.buildReport(ctx, interview, status, reason)
	if err != nil {
		return nil, err
	}
	if u.cfg.Registry != nil {
		u.cfg.Registry.Remove(interview.InterviewID)
	}
	return payload, nil
}

// buildReport returns the stored report when one exists, otherwise synthesizes,
// persists and returns a new one.
func (u *interviewUsecase) buildReport(ctx context.Context, interview *internalEntity.Interview, status, reason string) (json.RawMessage, error) {
	if stored, err := u.cfg.Repository.FindReportByInterviewID(u.cfg.DB, interview.InterviewID); err == nil {
		return json.RawMessage(stored.Payload), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing report: %w", err)
	}
	if interview.Status != internalEntity.InterviewStatusInProgress {
		return nil, ErrInterviewClosed
	}

	answers, err := u.cfg.Repository.FindAnswersByInterviewID(u.cfg.DB, interview.InterviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}

	questionText := make(map[uint]string, len(interview.Questions))
	for _, q := range interview.Questions {
		questionText[q.ID] = q.QuestionText
	}

	scores := make([]int, 0, len(answers))
	pairs := make([]qaPair, 0, len(answers))
	skipped := 0
	for _, a := range answers {
		if a.Skipped || a.Score == nil {
			skipped++
			continue
		}
		scores = append(scores, *a.Score)
		pairs = append(pairs, qaPair{Question: questionText[a.QuestionID], Answer: a.AnswerText, Score: *a.Score})
	}

	difficulty, _ := fallback.ParseDifficulty(interview.Difficulty)
	meta := fallback.ReportMeta{
		JobRole:       interview.JobRole,
		InterviewType: fallback.ParseCategory(interview.InterviewType),
		Difficulty:    difficulty,
	}
	report, source := u.synthesize(ctx, interview, meta, scores, pairs)

	now := u.cfg.Now()
	payload, err := json.Marshal(entity.ReportResponse{
		InterviewID:       interview.InterviewID,
		JobRole:           interview.JobRole,
		InterviewType:     interview.InterviewType,
		Difficulty:        interview.Difficulty,
		AnsweredQuestions: len(scores),
		SkippedQuestions:  skipped,
		Source:            source,
		GeneratedAt:       now.UTC().Format(time.RFC3339),
		InterviewReport:   report,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	stored := &internalEntity.InterviewReport{
		InterviewID:  interview.InterviewID,
		OverallScore: report.OverallScore,
		Grade:        string(report.Grade),
		Source:       source,
		Payload:      string(payload),
	}
	if err := u.cfg.Repository.FinalizeInterview(u.cfg.DB, interview.InterviewID, status, reason, now, stored); err != nil {
		// Another request finalized first; its report wins
		if existing, findErr := u.cfg.Repository.FindReportByInterviewID(u.cfg.DB, interview.InterviewID); findErr == nil {
			return json.RawMessage(existing.Payload), nil
		}
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	u.cfg.Log.WithFields(logrus.Fields{
		"interview_id":  interview.InterviewID,
		"status":        status,
		"overall_score": report.OverallScore,
		"source":        source,
	}).Info("interview finalized")

	return json.RawMessage(payload), nil
}

func (u *interviewUsecase) synthesize(ctx context.Context, interview *internalEntity.Interview, meta fallback.ReportMeta, scores []int, pairs []qaPair) (fallback.InterviewReport, string) {
	if len(scores) > 0 && u.aiEnabled(interview.UseAI) {
		started := time.Now()
		text, err := u.cfg.Generator.GenerateText(ctx, reportPrompt(meta, pairs))
		if err == nil {
			var report fallback.InterviewReport
			if report, err = parseReport(text); err == nil {
				metrics.ObserveGenerator(u.cfg.Generator.Name(), metrics.StageReport, started, nil)
				return report, internalEntity.SourceAI
			}
		}
		metrics.ObserveGenerator(u.cfg.Generator.Name(), metrics.StageReport, started, err)
		u.cfg.Log.WithFields(logrus.Fields{
			"interview_id": interview.InterviewID,
			"stage":        metrics.StageReport,
		}).WithError(err).Warn("AI report failed, using local synthesizer")
		metrics.FallbackCounter.WithLabelValues(metrics.StageReport).Inc()
	}
	return u.cfg.Engine.Synthesize(meta, scores), internalEntity.SourceFallback
}

func (u *interviewUsecase) GetReport(ctx context.Context, userID uint, interviewID string) (json.RawMessage, error) {
	if _, err := u.findOwned(userID, interviewID); err != nil {
		return nil, err
	}
	stored, err := u.cfg.Repository.FindReportByInterviewID(u.cfg.DB, interviewID)
	if err != nil {
		return nil, notFound(err, ErrReportNotFound)
	}
	return json.RawMessage(stored.Payload), nil
}

func (u *interviewUsecase) QuestionBank(ctx context.Context, category string) ([]entity.QuestionBankItem, error) {
	if category != "" {
		category = string(fallback.ParseCategory(category))
	}
	entries, err := u.cfg.Repository.FindBankEntries(u.cfg.DB, category)
	if err != nil {
		return nil, fmt.Errorf("failed to get question bank: %w", err)
	}
	items := make([]entity.QuestionBankItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, entity.QuestionBankItem{
			Category:     e.Category,
			Position:     e.Position,
			QuestionText: e.QuestionText,
		})
	}
	return items, nil
}

func toSummary(i *internalEntity.Interview) entity.InterviewSummary {
	s := entity.InterviewSummary{
		InterviewID:       i.InterviewID,
		JobRole:           i.JobRole,
		InterviewType:     i.InterviewType,
		Difficulty:        i.Difficulty,
		NumQuestions:      i.NumQuestions,
		Topic:             i.Topic,
		Status:            i.Status,
		TerminationReason: i.TerminationReason,
		CreatedAt:         i.CreatedAt.Format(time.RFC3339),
	}
	if i.CompletedAt != nil {
		s.CompletedAt = i.CompletedAt.Format(time.RFC3339)
	}
	return s
}

func toQuestionItems(questions []internalEntity.InterviewQuestion) []entity.QuestionItem {
	items := make([]entity.QuestionItem, 0, len(questions))
	for _, q := range questions {
		items = append(items, entity.QuestionItem{
			ID:           q.ID,
			Position:     q.Position,
			QuestionText: q.QuestionText,
		})
	}
	return items
}

func toAnswerResponse(a *internalEntity.InterviewAnswer) *entity.SubmitAnswerResponse {
	return &entity.SubmitAnswerResponse{
		InterviewID: a.InterviewID,
		QuestionID:  a.QuestionID,
		Skipped:     a.Skipped,
		Score:       a.Score,
		Grade:       a.Grade,
		Positive:    a.Positive,
		Improve:     a.Improve,
		Brief:       a.Brief,
		Source:      a.Source,
	}
}
