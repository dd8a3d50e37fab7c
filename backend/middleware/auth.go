package middleware

import (
	"blogapi/backend/config"
	"blogapi/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// UsernameKey is the ctx locals key holding the authenticated username.
const UsernameKey = "username"

// RequireAdmin rejects requests without a valid admin token. A missing
// token is 401; a token that is present but fails verification is 403.
func RequireAdmin(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := utils.TokenFromHeader(c)
		if !ok {
			return utils.Unauthorized(c, "No token provided")
		}

		username, err := utils.ParseToken(raw, cfg)
		if err != nil {
			return utils.Forbidden(c, "Invalid token")
		}

		c.Locals(UsernameKey, username)
		return c.Next()
	}
}
