package middleware

import (
	"log/slog"

	"github.com/dityarw/auth-service/internal/logging"
	"github.com/gofiber/fiber/v2"
)

// RequestLogger installs a request-scoped logger into the user context so the
// service layer picks up method and path on every log line.
func RequestLogger(base *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := base.With("method", c.Method(), "path", c.Path())
		c.SetUserContext(logging.IntoContext(c.UserContext(), l))

		return c.Next()
	}
}
