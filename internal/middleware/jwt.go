package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/peccode-dev/peccode-api/internal/auth"
	"github.com/peccode-dev/peccode-api/internal/utils"
)

// Locals keys populated after successful token validation.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
	LocalUserRole  = "user_role"
)

// JWTProtected returns a middleware that validates bearer tokens and
// stores the embedded identity in request locals. This is the single
// gate in front of every non-public operation.
func JWTProtected(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization token required")
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrMissingToken):
				return utils.SendError(c, fiber.StatusUnauthorized, "authorization token required")
			case errors.Is(err, auth.ErrExpiredToken):
				return utils.SendError(c, fiber.StatusUnauthorized, "token expired")
			default:
				return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
			}
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserEmail, claims.Email)
		c.Locals(LocalUserRole, claims.Role)

		return c.Next()
	}
}
