package handlers

import (
	"github.com/gofiber/fiber/v2"

	"monabazaar/internal/catalog"
	applog "monabazaar/internal/log"
	"monabazaar/internal/repos"
)

type AdminHandler struct {
	Sessions *repos.SessionRepo
	Users    *repos.UserRepo
	Payments *repos.PaymentRepo
}

// Dashboard aggregates the numbers the admin page renders: catalog makeup,
// live sessions, registered accounts, and the captured-payment tally.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	perCategory := map[string]int{}
	for _, cat := range catalog.Categories {
		perCategory[cat] = len(catalog.ByCategory(cat))
	}

	sessions, err := h.Sessions.Count()
	if err != nil {
		applog.Error(c, "admin.dashboard.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load dashboard"})
	}
	users, err := h.Users.Count()
	if err != nil {
		applog.Error(c, "admin.dashboard.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load dashboard"})
	}
	payCount, payTotal, err := h.Payments.Tally()
	if err != nil {
		applog.Error(c, "admin.dashboard.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load dashboard"})
	}

	return c.JSON(fiber.Map{
		"products":           len(catalog.All()),
		"productsByCategory": perCategory,
		"activeSessions":     sessions,
		"registeredUsers":    users,
		"payments":           payCount,
		"capturedPaise":      payTotal,
	})
}

// Payments lists the most recent gateway receipts.
func (h *AdminHandler) PaymentsPage(c *fiber.Ctx) error {
	rows, err := h.Payments.ListLatest(100)
	if err != nil {
		applog.Error(c, "admin.payments.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load payments"})
	}
	return c.JSON(fiber.Map{"payments": rows})
}
