package handler

import (
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/domain"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/entity"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/usecase"
	"github.com/evandrarf/mock-interview-be/internal/pkg/response"
	"github.com/evandrarf/mock-interview-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	ProctorHandler interface {
		Activate(ctx *fiber.Ctx) error
		Deactivate(ctx *fiber.Ctx) error
		State(ctx *fiber.Ctx) error
		RecordViolation(ctx *fiber.Ctx) error
		AnalyzeFrames(ctx *fiber.Ctx) error
		Events(ctx *fiber.Ctx) error
	}

	proctorHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.ProctorUsecase
	}
)

func NewProctorHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.ProctorUsecase) ProctorHandler {
	return &proctorHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /interviews/:interview_id/proctor/activate
func (h *proctorHandler) Activate(ctx *fiber.Ctx) error {
	state, err := h.usecase.Activate(ctx.UserContext(), currentUserID(ctx), ctx.Params("interview_id"))
	if err != nil {
		return response.NewFailed(domain.PROCTOR_ACTIVATE_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROCTOR_ACTIVATE_SUCCESS, state, nil).Send(ctx)
}

// POST /interviews/:interview_id/proctor/deactivate
func (h *proctorHandler) Deactivate(ctx *fiber.Ctx) error {
	state, err := h.usecase.Deactivate(ctx.UserContext(), currentUserID(ctx), ctx.Params("interview_id"))
	if err != nil {
		return response.NewFailed(domain.PROCTOR_DEACTIVATE_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROCTOR_DEACTIVATE_SUCCESS, state, nil).Send(ctx)
}

// GET /interviews/:interview_id/proctor
func (h *proctorHandler) State(ctx *fiber.Ctx) error {
	state, err := h.usecase.State(ctx.UserContext(), currentUserID(ctx), ctx.Params("interview_id"))
	if err != nil {
		return response.NewFailed(domain.PROCTOR_STATE_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROCTOR_STATE_SUCCESS, state, nil).Send(ctx)
}

// POST /interviews/:interview_id/proctor/violations
func (h *proctorHandler) RecordViolation(ctx *fiber.Ctx) error {
	var req entity.ViolationRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.PROCTOR_VIOLATION_FAILED, httpError(err), h.logger).Send(ctx)
	}

	result, err := h.usecase.RecordViolation(ctx.UserContext(), currentUserID(ctx), ctx.Params("interview_id"), req.Reason)
	if err != nil {
		return response.NewFailed(domain.PROCTOR_VIOLATION_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(violationMessage(result), result, nil).Send(ctx)
}

// POST /interviews/:interview_id/proctor/frames
func (h *proctorHandler) AnalyzeFrames(ctx *fiber.Ctx) error {
	var req entity.FrameRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.PROCTOR_VIOLATION_FAILED, httpError(err), h.logger).Send(ctx)
	}

	result, err := h.usecase.AnalyzeFrames(ctx.UserContext(), currentUserID(ctx), ctx.Params("interview_id"), req)
	if err != nil {
		return response.NewFailed(domain.PROCTOR_VIOLATION_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(violationMessage(result), result, nil).Send(ctx)
}

// GET /interviews/:interview_id/proctor/events
func (h *proctorHandler) Events(ctx *fiber.Ctx) error {
	events, err := h.usecase.Events(ctx.UserContext(), currentUserID(ctx), ctx.Params("interview_id"))
	if err != nil {
		return response.NewFailed(domain.PROCTOR_EVENTS_FAILED, httpError(err), h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROCTOR_EVENTS_SUCCESS, events, fiber.Map{"total": len(events)}).Send(ctx)
}

func violationMessage(res *entity.ProctorResponse) string {
	if res.Report != nil {
		return domain.PROCTOR_TERMINATED
	}
	return domain.PROCTOR_VIOLATION_SUCCESS
}
