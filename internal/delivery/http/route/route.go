package route

import (
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/handler"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/middleware"
	"github.com/evandrarf/mock-interview-be/internal/pkg/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api              *fiber.App
	Middleware       *middleware.Middleware
	AuthHandler      handler.AuthHandler
	InterviewHandler handler.InterviewHandler
	ProctorHandler   handler.ProctorHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())
	c.Api.Use(metrics.MetricsMiddleware())

	c.Api.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	c.Api.Get("/metrics", metrics.PrometheusHandler())

	SetupAuthRoute(c.Api, c.AuthHandler, c.Middleware)
	SetupInterviewRoute(c.Api, c.InterviewHandler, c.ProctorHandler, c.Middleware)
}
