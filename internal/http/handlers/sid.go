package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ensureSID reads the browser session cookie, issuing a fresh one on first
// contact. Every store in the app is keyed by this value. The cookie value is
// cloned because fiber returns a zero-copy string backed by the request
// buffer, which is reused after the handler returns.
func ensureSID(c *fiber.Ctx) string {
	sid := strings.Clone(c.Cookies("sid"))
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}
