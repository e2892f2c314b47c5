package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evandrarf/mock-interview-be/internal/delivery/http/entity"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/middleware"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/usecase"
	"github.com/evandrarf/mock-interview-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInterviews returns err from every call, or a canned value when err is nil.
type stubInterviews struct {
	err    error
	userID uint
	got    entity.StartInterviewRequest
}

func (s *stubInterviews) Start(_ context.Context, userID uint, req entity.StartInterviewRequest) (*entity.InterviewDetail, error) {
	s.userID, s.got = userID, req
	if s.err != nil {
		return nil, s.err
	}
	return &entity.InterviewDetail{InterviewSummary: entity.InterviewSummary{InterviewID: "iv-1"}}, nil
}

func (s *stubInterviews) List(context.Context, uint) ([]entity.InterviewSummary, error) {
	return []entity.InterviewSummary{{InterviewID: "iv-1"}, {InterviewID: "iv-2"}}, s.err
}

func (s *stubInterviews) Get(context.Context, uint, string) (*entity.InterviewDetail, error) {
	return nil, s.err
}

func (s *stubInterviews) SubmitAnswer(context.Context, uint, string, entity.SubmitAnswerRequest) (*entity.SubmitAnswerResponse, error) {
	return nil, s.err
}

func (s *stubInterviews) Complete(context.Context, uint, string) (json.RawMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(`{"interview_id":"iv-1","overall_score":60}`), nil
}

func (s *stubInterviews) GetReport(ctx context.Context, userID uint, id string) (json.RawMessage, error) {
	return s.Complete(ctx, userID, id)
}

func (s *stubInterviews) Terminate(context.Context, string, string) (json.RawMessage, error) {
	return nil, s.err
}

func (s *stubInterviews) QuestionBank(context.Context, string) ([]entity.QuestionBankItem, error) {
	return nil, s.err
}

func newTestApp(uc usecase.InterviewUsecase) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	h := NewInterviewHandler(validate.NewValidator(), log, uc)
	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals(middleware.UserIDKey, uint(3))
		return ctx.Next()
	})
	app.Post("/interviews", h.Start)
	app.Get("/interviews", h.List)
	app.Get("/interviews/:interview_id", h.Get)
	app.Post("/interviews/:interview_id/answers", h.SubmitAnswer)
	app.Post("/interviews/:interview_id/complete", h.Complete)
	app.Get("/interviews/:interview_id/report", h.GetReport)
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	return res.StatusCode, env
}

func TestStartInterview(t *testing.T) {
	stub := &stubInterviews{}
	app := newTestApp(stub)

	status, env := do(t, app, http.MethodPost, "/interviews",
		`{"job_role":"Backend Engineer","interview_type":"technical","difficulty":"Hard","num_questions":3}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, env.Success)
	assert.Equal(t, uint(3), stub.userID)
	assert.Equal(t, "Backend Engineer", stub.got.JobRole)
	assert.Nil(t, stub.got.UseAI)
}

func TestStartInterviewValidation(t *testing.T) {
	app := newTestApp(&stubInterviews{})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"blank role", `{"job_role":"   ","interview_type":"technical","difficulty":"Hard","num_questions":3}`, "job_role"},
		{"too many questions", `{"job_role":"Dev","interview_type":"technical","difficulty":"Hard","num_questions":16}`, "num_questions"},
		{"unknown type", `{"job_role":"Dev","interview_type":"trivia","difficulty":"Hard","num_questions":3}`, "interview_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := do(t, app, http.MethodPost, "/interviews", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.False(t, env.Success)

			var fields map[string]string
			require.NoError(t, json.Unmarshal(env.Error, &fields))
			assert.Contains(t, fields, tt.field)
		})
	}

	status, _ := do(t, app, http.MethodPost, "/interviews", `{not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{usecase.ErrInterviewNotFound, fiber.StatusNotFound},
		{usecase.ErrReportNotFound, fiber.StatusNotFound},
		{fmt.Errorf("wrapped: %w", usecase.ErrInterviewClosed), fiber.StatusConflict},
		{validate.NewFieldsError(map[string]string{"answer": "too short"}), fiber.StatusBadRequest},
		{errors.New("db exploded"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			app := newTestApp(&stubInterviews{err: tt.err})
			status, env := do(t, app, http.MethodGet, "/interviews/iv-1/report", "")
			assert.Equal(t, tt.want, status)
			assert.False(t, env.Success)
		})
	}
}

func TestReportPassesStoredPayloadThrough(t *testing.T) {
	app := newTestApp(&stubInterviews{})

	status, env := do(t, app, http.MethodPost, "/interviews/iv-1/complete", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"interview_id":"iv-1","overall_score":60}`, string(env.Data))
}

func TestListIncludesTotal(t *testing.T) {
	app := newTestApp(&stubInterviews{})

	status, env := do(t, app, http.MethodGet, "/interviews", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"total":2}`, string(env.Meta))
}
