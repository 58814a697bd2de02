package middleware

import (
	"context"
	"strings"

	"lingo-byte/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// principalKey is the fiber.Locals key the authenticated principal lives
// under.
const principalKey = "principal"

// SessionValidator resolves a bearer token to a principal.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (*domain.Principal, error)
}

// Protected rejects requests without a valid session and attaches the
// principal to the request context.
func Protected(auth SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return domain.NewUnauthenticatedError("")
		}
		principal, err := auth.Validate(c.UserContext(), token)
		if err != nil {
			return err
		}
		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// PrincipalFrom returns the authenticated principal, or nil on an
// unprotected route.
func PrincipalFrom(c *fiber.Ctx) *domain.Principal {
	p, _ := c.Locals(principalKey).(*domain.Principal)
	return p
}

// BearerToken extracts the raw token from the Authorization header, empty
// when absent or malformed.
func BearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
