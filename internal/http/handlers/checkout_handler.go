package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "monabazaar/internal/log"
	"monabazaar/internal/services"
)

type CheckoutHandler struct {
	Checkout *services.CheckoutService
}

func (h *CheckoutHandler) Quote(c *fiber.Ctx) error {
	return c.JSON(h.Checkout.Quote(ensureSID(c)))
}

// Prefill hands the client a checkout form seeded from the signed-in session.
func (h *CheckoutHandler) Prefill(c *fiber.Ctx) error {
	return c.JSON(h.Checkout.Prefill(ensureSID(c)))
}

// Pay runs the simulated payment round trip. Like the auth operations, the
// response is always 200 with {success,message}; failures keep the cart.
func (h *CheckoutHandler) Pay(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var form services.OrderForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, "malformed body")
	}
	res := h.Checkout.Place(c.UserContext(), sid, form)
	if res.Success {
		applog.Audit(c, "checkout.paid", map[string]any{"payment_id": res.PaymentID, "method": form.PaymentMethod})
	} else {
		applog.Info(c, "checkout.fail", map[string]any{"reason": res.Message})
	}
	return c.JSON(res)
}
