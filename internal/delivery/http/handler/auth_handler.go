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
	AuthHandler interface {
		Register(ctx *fiber.Ctx) error
		Login(ctx *fiber.Ctx) error
		Me(ctx *fiber.Ctx) error
	}

	authHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.AuthUsecase
	}
)

func NewAuthHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.AuthUsecase) AuthHandler {
	return &authHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /auth/register
func (h *authHandler) Register(ctx *fiber.Ctx) error {
	var req entity.RegisterRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.AUTH_REGISTER_FAILED, httpError(err), h.logger).Send(ctx)
	}

	user, err := h.usecase.Register(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.AUTH_REGISTER_FAILED, httpError(err), h.logger).Send(ctx)
	}

	return response.NewCreated(domain.AUTH_REGISTER_SUCCESS, user).Send(ctx)
}

// POST /auth/login
func (h *authHandler) Login(ctx *fiber.Ctx) error {
	var req entity.LoginRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.AUTH_LOGIN_FAILED, httpError(err), h.logger).Send(ctx)
	}

	result, err := h.usecase.Login(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.AUTH_LOGIN_FAILED, httpError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.AUTH_LOGIN_SUCCESS, result, nil).Send(ctx)
}

// GET /auth/me
func (h *authHandler) Me(ctx *fiber.Ctx) error {
	user, err := h.usecase.Me(ctx.UserContext(), currentUserID(ctx))
	if err != nil {
		return response.NewFailed(domain.AUTH_ME_FAILED, httpError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.AUTH_ME_SUCCESS, user, nil).Send(ctx)
}
