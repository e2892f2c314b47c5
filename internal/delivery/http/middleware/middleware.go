package middleware

import (
	"github.com/evandrarf/mock-interview-be/internal/pkg/auth"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type MiddlewareConfig struct {
	Log    *logrus.Logger
	Config *viper.Viper
	Issuer *auth.TokenIssuer
}

type Middleware struct {
	Log    *logrus.Logger
	Config *viper.Viper
	Issuer *auth.TokenIssuer
}

func NewMiddleware(c *MiddlewareConfig) *Middleware {
	if c == nil {
		return &Middleware{}
	}

	return &Middleware{
		Log:    c.Log,
		Config: c.Config,
		Issuer: c.Issuer,
	}
}
