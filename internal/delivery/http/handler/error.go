package handler

import (
	"errors"

	"github.com/evandrarf/mock-interview-be/internal/delivery/http/middleware"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/usecase"
	"github.com/evandrarf/mock-interview-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
)

// httpError maps usecase errors onto the status the response envelope should carry.
func httpError(err error) error {
	var fields *validate.FieldsError
	if errors.As(err, &fields) {
		return fields
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}

	switch {
	case errors.Is(err, usecase.ErrInterviewNotFound),
		errors.Is(err, usecase.ErrQuestionNotFound),
		errors.Is(err, usecase.ErrReportNotFound),
		errors.Is(err, usecase.ErrUserNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrInterviewClosed),
		errors.Is(err, usecase.ErrEmailTaken):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	return err
}

func currentUserID(ctx *fiber.Ctx) uint {
	id, _ := ctx.Locals(middleware.UserIDKey).(uint)
	return id
}
