package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	applog "monabazaar/internal/log"
	"monabazaar/internal/services"
	"monabazaar/internal/store"
	"monabazaar/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

func cartPayload(cart *store.Cart) fiber.Map {
	return fiber.Map{
		"items":     cart.Lines(),
		"total":     cart.Total(),
		"itemCount": cart.ItemCount(),
		"isOpen":    cart.IsOpen(),
	}
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(cartPayload(h.Cart.Cart(ensureSID(c))))
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req struct {
		ProductID int    `json:"productId"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	qty := validate.Qty(strconv.Itoa(req.Quantity))

	_, err := h.Cart.AddProduct(sid, req.ProductID, req.Size, req.Color, qty)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		return notFound(c, "This item is no longer available")
	case errors.Is(err, services.ErrSizeRequired), errors.Is(err, services.ErrSizeNotOffered):
		return badRequest(c, "Please select a size")
	case err != nil:
		applog.Error(c, "cart.add.fail", err, map[string]any{"product": req.ProductID})
		return badRequest(c, "Could not add item")
	}
	applog.Audit(c, "cart.add", map[string]any{"product": req.ProductID, "size": req.Size, "qty": qty})
	return c.JSON(cartPayload(h.Cart.Cart(sid)))
}

// UpdateQuantity sets a line's quantity; zero removes the line. The sidebar's
// minus button disables at one, so a zero here is an intentional removal.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req struct {
		ProductID int    `json:"productId"`
		Size      string `json:"size"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	if req.Size == "" {
		return badRequest(c, "missing size")
	}
	h.Cart.Cart(sid).UpdateQuantity(req.ProductID, req.Size, req.Quantity)
	return c.JSON(cartPayload(h.Cart.Cart(sid)))
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req struct {
		ProductID int    `json:"productId"`
		Size      string `json:"size"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	h.Cart.Cart(sid).RemoveItem(req.ProductID, req.Size)
	applog.Audit(c, "cart.remove", map[string]any{"product": req.ProductID, "size": req.Size})
	return c.JSON(cartPayload(h.Cart.Cart(sid)))
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Cart.Cart(sid).Clear()
	applog.Audit(c, "cart.clear", nil)
	return c.JSON(cartPayload(h.Cart.Cart(sid)))
}

// Open/Close toggle the sidebar flag; contents are untouched.
func (h *CartHandler) Open(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Cart.Cart(sid).Open()
	return c.JSON(cartPayload(h.Cart.Cart(sid)))
}

func (h *CartHandler) Close(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Cart.Cart(sid).Close()
	return c.JSON(cartPayload(h.Cart.Cart(sid)))
}

func (h *CartHandler) Toggle(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Cart.Cart(sid).Toggle()
	return c.JSON(cartPayload(h.Cart.Cart(sid)))
}
