package config

import (
	"context"
	"errors"

	"github.com/evandrarf/mock-interview-be/internal/delivery/http/handler"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/middleware"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/repository"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/route"
	"github.com/evandrarf/mock-interview-be/internal/delivery/http/usecase"
	"github.com/evandrarf/mock-interview-be/internal/pkg/auth"
	"github.com/evandrarf/mock-interview-be/internal/pkg/fallback"
	"github.com/evandrarf/mock-interview-be/internal/pkg/llm"
	"github.com/evandrarf/mock-interview-be/internal/pkg/proctor"
	"github.com/evandrarf/mock-interview-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Ctx       context.Context
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
	// Generator overrides the configured external generator when set.
	Generator llm.Generator
}

func Bootstrap(config *BootstrapConfig) {
	ctx := config.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	issuer, err := auth.NewTokenIssuer(config.Config.GetString("auth.jwt_secret"), config.Config.GetDuration("auth.token_ttl"))
	if err != nil {
		config.Log.WithError(err).Fatal("auth.jwt_secret (AUTH_JWT_SECRET) must be set")
	}
	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
		Issuer: issuer,
	})

	generator := config.Generator
	if generator == nil {
		generator = newGenerator(ctx, config.Config, config.Log)
	}

	engine := fallback.NewEngine(nil)
	if seed := config.Config.GetInt64("interview.seed"); seed != 0 {
		engine = fallback.NewSeededEngine(seed)
	}

	registry := proctor.NewRegistry(
		proctor.WithMaxWarnings(config.Config.GetInt("proctor.max_warnings")),
		proctor.WithCooldown(config.Config.GetDuration("proctor.cooldown")),
	)

	userRepo := repository.NewUserRepository(config.DB)
	interviewRepo := repository.NewInterviewRepository(config.DB)

	authUsecase := usecase.NewAuthUsecase(usecase.AuthConfig{
		DB:         config.DB,
		Issuer:     issuer,
		Repository: userRepo,
		Log:        config.Log,
	})
	interviewUsecase := usecase.NewInterviewUsecase(usecase.InterviewConfig{
		DB:         config.DB,
		Generator:  generator,
		Engine:     engine,
		Repository: interviewRepo,
		Registry:   registry,
		Config:     config.Config,
		Log:        config.Log,
	})
	proctorUsecase := usecase.NewProctorUsecase(usecase.ProctorConfig{
		DB:         config.DB,
		Registry:   registry,
		Repository: interviewRepo,
		Interviews: interviewUsecase,
		Log:        config.Log,
	})

	route.Setup(&route.RouteConfig{
		Api:              config.Api,
		Middleware:       mid,
		AuthHandler:      handler.NewAuthHandler(config.Validator, config.Log, authUsecase),
		InterviewHandler: handler.NewInterviewHandler(config.Validator, config.Log, interviewUsecase),
		ProctorHandler:   handler.NewProctorHandler(config.Validator, config.Log, proctorUsecase),
	})
}

// newGenerator returns nil when no provider is configured; every stage then uses the local engine.
func newGenerator(ctx context.Context, config *viper.Viper, log *logrus.Logger) llm.Generator {
	generator, err := llm.New(ctx, llm.Config{
		Provider:          config.GetString("llm.provider"),
		APIKey:            config.GetString("llm.api_key"),
		Model:             config.GetString("llm.model"),
		BaseURL:           config.GetString("llm.base_url"),
		Timeout:           config.GetDuration("llm.timeout"),
		RequestsPerMinute: config.GetInt("llm.requests_per_minute"),
	})
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			log.Info("no LLM api key configured, interviews use the local engine")
		} else {
			log.WithError(err).Warn("failed to create LLM client, interviews use the local engine")
		}
		return nil
	}
	log.WithField("provider", generator.Name()).Info("LLM generator ready")
	return generator
}
