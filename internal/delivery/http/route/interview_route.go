package route

import (
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/handler"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoute(api *fiber.App, handler handler.AuthHandler, m *middleware.Middleware) {
	router := api.Group("/auth")
	{
		router.Post("/register", handler.Register)
		router.Post("/login", handler.Login)
		router.Get("/me", m.Auth(), handler.Me)
	}
}

func SetupInterviewRoute(api *fiber.App, handler handler.InterviewHandler, proctor handler.ProctorHandler, m *middleware.Middleware) {
	router := api.Group("/interviews", m.Auth())
	{
		router.Post("/", handler.Start)
		router.Get("/", handler.List)
		router.Get("/:interview_id", handler.Get)
		router.Post("/:interview_id/answers", handler.SubmitAnswer)
		router.Post("/:interview_id/complete", handler.Complete)
		router.Get("/:interview_id/report", handler.GetReport)
	}

	proctorRouter := router.Group("/:interview_id/proctor")
	{
		proctorRouter.Get("/", proctor.State)
		proctorRouter.Post("/activate", proctor.Activate)
		proctorRouter.Post("/deactivate", proctor.Deactivate)
		proctorRouter.Post("/violations", proctor.RecordViolation)
		proctorRouter.Post("/frames", proctor.AnalyzeFrames)
		proctorRouter.Get("/events", proctor.Events)
	}

	bankRouter := api.Group("/questions", m.Auth())
	{
		bankRouter.Get("/bank", handler.QuestionBank)
	}
}
