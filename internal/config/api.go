package config

import (
	"errors"
	"fmt"

	"github.com/evandrarf/mock-interview-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func NewAPI(config *viper.Viper, log *logrus.Logger) *fiber.App {
	api := fiber.New(fiber.Config{
		AppName:      config.GetString("app.name"),
		ErrorHandler: ErrorHandler(log),
		Prefork:      config.GetBool("api.prefork"),
		// Frames for the motion check are sent as base64 images
		BodyLimit: 8 * 1024 * 1024,
	})
	return api
}

func ListenAddr(config *viper.Viper) string {
	return fmt.Sprintf(":%d", config.GetInt("api.port"))
}

func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= 500 {
			log.WithError(err).WithField("path", ctx.Path()).Error("unhandled error")
			return response.NewInternalServerError().Send(ctx)
		}

		return response.NewFailed(err.Error(), fiber.NewError(code, ""), log).Send(ctx)
	}
}
