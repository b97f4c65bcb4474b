// Package middleware holds the request-level auth guard: a single-pass gate
// that resolves a bearer access token to an identity or a structured 401.
package middleware

import (
	"strings"

	"github.com/dityarw/auth-service/internal/auth/domain"
	"github.com/dityarw/auth-service/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

const identityKey = "auth_identity"

// Rejection reason codes returned in the error body so clients can choose
// between silent refresh and forced re-login.
const (
	ReasonNoToken      = "missing bearer token"
	ReasonTokenExpired = "token expired"
	ReasonTokenInvalid = "invalid token"
	ReasonUserNotFound = "user not found"
)

// RequireAuth verifies the Authorization bearer token against the access key
// and resolves its subject through the store. On success the identity is
// attached to the request for downstream handlers.
func RequireAuth(tokens service.TokenCodec, store domain.CredentialStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return reject(c, ReasonNoToken)
		}

		res := tokens.Verify(token, service.KindAccess)
		switch res.Status {
		case service.TokenExpired:
			return reject(c, ReasonTokenExpired)
		case service.TokenInvalid:
			return reject(c, ReasonTokenInvalid)
		}

		user, err := store.FindByID(c.UserContext(), res.Subject)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
		if user == nil {
			return reject(c, ReasonUserNotFound)
		}

		c.Locals(identityKey, &domain.Identity{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		})

		return c.Next()
	}
}

// RequireRole gates a route on the role resolved by RequireAuth. It must be
// mounted after RequireAuth.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromCtx(c)
		if !ok {
			return reject(c, ReasonNoToken)
		}
		if identity.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient role"})
		}

		return c.Next()
	}
}

// IdentityFromCtx returns the identity attached by RequireAuth, if any.
func IdentityFromCtx(c *fiber.Ctx) (*domain.Identity, bool) {
	identity, ok := c.Locals(identityKey).(*domain.Identity)
	return identity, ok
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}

func reject(c *fiber.Ctx, reason string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": reason})
}
