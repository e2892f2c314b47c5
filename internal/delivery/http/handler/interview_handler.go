package handler

import (
	"strings"

	"github.com/evandrarf/mock-interview-be/internal/delivery/http/domain"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/entity"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/usecase"
	"github.com/evandrarf/mock-interview-be/internal/pkg/response"
	"github.com/evandrarf/mock-interview-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	InterviewHandler interface {
		Start(ctx *fiber.Ctx) error
		List(ctx *fiber.Ctx) error
		Get(ctx *fiber.Ctx) error
		SubmitAnswer(ctx *fiber.Ctx) error
		Complete(ctx *fiber.Ctx) error
		GetReport(ctx *fiber.Ctx) error
		QuestionBank(ctx *fiber.Ctx) error
	}

	interviewHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.InterviewUsecase
	}
)

func NewInterviewHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.InterviewUsecase) InterviewHandler {
	return &interviewHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /interviews
func (h *interviewHandler) Start(ctx *fiber.Ctx) error {
	var req entity.StartInterviewRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.INTERVIEW_START_FAILED, httpError(err), h.logger).Send(ctx)
	}

	interview, err := h.usecase.Start(ctx.UserContext(), currentUserID(ctx), req)
	if err != nil {
		return response.NewFailed(domain.INTERVIEW_START_FAILED, httpError(err), h.logger).Send(ctx)
	}

	return response.NewCreated(domain.INTERVIEW_START_SUCCESS, interview).Send(ctx)
}

// GET /interviews
func (h *interviewHandler) List(ctx *fiber.Ctx) error {
	interviews, err := h.usecase.List(ctx.UserContext(), currentUserID(ctx))
	if err != nil {
		return response.NewFailed(domain.INTERVIEW_LIST_FAILED, httpError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.INTERVIEW_LIST_SUCCESS, interviews, fiber.Map{"total": len(interviews)}).Send(ctx)
}

// GET /interviews/:interview_id
func (h *interviewHandler) Get(ctx *fiber.Ctx) error {
	interview, err := h.usecase.Get(ctx.UserContext(), currentUserID(ctx), ctx.Params("interview_id"))
	if err != nil {
		return response.NewFailed(domain.INTERVIEW_GET_FAILED, httpError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.INTERVIEW_GET_SUCCESS, interview, nil).Send(ctx)
}

// POST /interviews/:interview_id/answers
func (h *interviewHandler) SubmitAnswer(ctx *fiber.Ctx) error {
	var req entity.SubmitAnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.INTERVIEW_SUBMIT_ANSWER_FAILED, httpError(err), h.logger).Send(ctx)
	}

	result, err := h.usecase.SubmitAnswer(ctx.UserContext(), currentUserID(ctx), ctx.Params("interview_id"), req)
	if err != nil {
		return response.NewFailed(domain.INTERVIEW_SUBMIT_ANSWER_FAILED, httpError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.INTERVIEW_SUBMIT_ANSWER_SUCCESS, result, nil).Send(ctx)
}

// POST /interviews/:interview_id/complete
func (h *interviewHandler) Complete(ctx *fiber.Ctx) error {
	report, err := h.usecase.Complete(ctx.UserContext(), currentUserID(ctx), ctx.Params("interview_id"))
	if err != nil {
		return response.NewFailed(domain.INTERVIEW_COMPLETE_FAILED, httpError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.INTERVIEW_COMPLETE_SUCCESS, report, nil).Send(ctx)
}

// GET /interviews/:interview_id/report
func (h *interviewHandler) GetReport(ctx *fiber.Ctx) error {
	report, err := h.usecase.GetReport(ctx.UserContext(), currentUserID(ctx), ctx.Params("interview_id"))
	if err != nil {
		return response.NewFailed(domain.INTERVIEW_GET_REPORT_FAILED, httpError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.INTERVIEW_GET_REPORT_SUCCESS, report, nil).Send(ctx)
}

// GET /questions/bank?category=behavioral|technical|situational|mixed
func (h *interviewHandler) QuestionBank(ctx *fiber.Ctx) error {
	category := strings.TrimSpace(ctx.Query("category"))

	items, err := h.usecase.QuestionBank(ctx.UserContext(), category)
	if err != nil {
		return response.NewFailed(domain.QUESTION_BANK_FAILED, httpError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUESTION_BANK_SUCCESS, items, fiber.Map{"total": len(items)}).Send(ctx)
}
