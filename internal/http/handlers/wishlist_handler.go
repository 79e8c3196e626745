package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	applog "monabazaar/internal/log"
	"monabazaar/internal/services"
	"monabazaar/internal/store"
)

type WishlistHandler struct {
	Wish *services.WishlistService
}

func wishlistPayload(w *store.Wishlist) fiber.Map {
	return fiber.Map{
		"items": w.Items(),
		"count": w.Count(),
	}
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	return c.JSON(wishlistPayload(h.Wish.Wishlist(ensureSID(c))))
}

func (h *WishlistHandler) Save(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req struct {
		ProductID int `json:"productId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	if _, err := h.Wish.SaveProduct(sid, req.ProductID); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return notFound(c, "This item is no longer available")
		}
		applog.Error(c, "wishlist.save.fail", err, map[string]any{"product": req.ProductID})
		return badRequest(c, "Could not save item")
	}
	applog.Audit(c, "wishlist.save", map[string]any{"product": req.ProductID})
	return c.JSON(wishlistPayload(h.Wish.Wishlist(sid)))
}

func (h *WishlistHandler) Unsave(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "missing productId")
	}
	h.Wish.Wishlist(sid).Remove(id)
	applog.Audit(c, "wishlist.unsave", map[string]any{"product": id})
	return c.JSON(wishlistPayload(h.Wish.Wishlist(sid)))
}

func (h *WishlistHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Wish.Wishlist(sid).Clear()
	applog.Audit(c, "wishlist.clear", nil)
	return c.JSON(wishlistPayload(h.Wish.Wishlist(sid)))
}
