package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/sekolah-go-api/internal/models"
	"github.com/noah-isme/sekolah-go-api/internal/service"
	"github.com/noah-isme/sekolah-go-api/internal/utils"
)

const localUserKey = "user"

// Authenticate resolves the bearer token to exactly one active user and binds it
// to the request. Missing or invalid credentials yield 401; a deactivated
// account yields 403.
func Authenticate(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		token := strings.TrimSpace(authorization[len(bearer):])

		user, err := auth.Resolve(c.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidToken):
				return utils.SendError(c, fiber.StatusUnauthorized, "invalid or expired token")
			case errors.Is(err, service.ErrAccountDisabled):
				return utils.SendError(c, fiber.StatusForbidden, "account disabled")
			default:
				return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
			}
		}

		c.Locals(localUserKey, user)
		c.Locals("user_id", user.ID)
		c.Locals("user_role", user.Role)

		return c.Next()
	}
}

// UserFromContext returns the authenticated user bound by Authenticate.
func UserFromContext(c *fiber.Ctx) (models.User, bool) {
	value := c.Locals(localUserKey)
	if value == nil {
		return models.User{}, false
	}

	user, ok := value.(models.User)
	return user, ok
}
