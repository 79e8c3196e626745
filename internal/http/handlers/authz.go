package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "monabazaar/internal/log"
	"monabazaar/internal/services"
)

// RequireUser gates a route on an authenticated session.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "sign in required"})
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			applog.Security(c, "access.denied", map[string]any{"sid": sid})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "sign in required"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
