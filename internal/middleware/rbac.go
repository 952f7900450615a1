package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/peccode-dev/peccode-api/internal/utils"
)

// RequireRole ensures the authenticated user holds exactly the required
// role. There is no hierarchy between roles; staff is not a superset of
// student or the reverse.
func RequireRole(role string) fiber.Handler {
	required := strings.ToLower(strings.TrimSpace(role))

	return func(c *fiber.Ctx) error {
		current := normalizeRoleValue(c.Locals(LocalUserRole))
		if current == "" || current != required {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}

func normalizeRoleValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return strings.ToLower(strings.TrimSpace(v))
	case fmt.Stringer:
		return strings.ToLower(strings.TrimSpace(v.String()))
	default:
		if value == nil {
			return ""
		}
		return strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", value)))
	}
}
