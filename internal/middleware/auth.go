package middleware

import (
	"strings"

	"translation-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const userIDKey = "user_id"

// Authenticator validates a bearer token and returns the user id it carries.
type Authenticator interface {
	Authenticate(token string) (uint, error)
}

// RequireAuth rejects requests without a valid bearer token with 401.
func RequireAuth(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing authorization token")
		}
		userID, err := a.Authenticate(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// OptionalAuth records the caller's identity when a valid bearer token is
// present and lets every request through.
func OptionalAuth(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if userID, err := a.Authenticate(token); err == nil {
				c.Locals(userIDKey, userID)
			}
		}
		return c.Next()
	}
}

// UserID returns the authenticated user id, if any.
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(userIDKey).(uint)
	return id, ok && id != 0
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
