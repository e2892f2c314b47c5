package middleware

import (
	"strings"

	"github.com/evandrarf/mock-interview-be/internal/delivery/http/domain"
	"github.com/evandrarf/mock-interview-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the fiber locals key holding the authenticated user id (uint).
const UserIDKey = "user_id"

// Auth requires a valid "Bearer <token>" Authorization header.
func (m *Middleware) Auth() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" || m.Issuer == nil {
			return response.NewFailed(domain.AUTH_UNAUTHORIZED, fiber.NewError(fiber.StatusUnauthorized, "missing bearer token"), m.Log).Send(ctx)
		}

		claims, err := m.Issuer.Parse(strings.TrimSpace(token))
		if err != nil {
			if m.Log != nil {
				m.Log.WithError(err).Debug("rejected token")
			}
			return response.NewFailed(domain.AUTH_UNAUTHORIZED, fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token"), m.Log).Send(ctx)
		}

		ctx.Locals(UserIDKey, claims.UserID)
		return ctx.Next()
	}
}
