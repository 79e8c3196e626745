package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"monabazaar/internal/catalog"
	"monabazaar/internal/config"
	"monabazaar/internal/pagination"
	"monabazaar/internal/share"
	"monabazaar/internal/validate"
)

type CatalogHandler struct {
	Cfg config.Config
}

// List serves the product grid: category filter, sort, then a fixed-size
// page with the "showing X–Y of Z" fields the client renders.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	cat := c.Query("category", catalog.CategoryAll)
	criterion := validate.SortCriterion(c.Query("sort"))

	products := catalog.Sort(catalog.ByCategory(cat), criterion)

	pageSize := h.Cfg.PageSize
	if n, err := strconv.Atoi(c.Query("pageSize")); err == nil && n >= 1 && n <= 100 {
		pageSize = n
	}
	pager := pagination.New(products, pageSize)
	if n, err := strconv.Atoi(c.Query("page")); err == nil {
		pager.GoToPage(n)
	}

	return c.JSON(fiber.Map{
		"products":    pager.Slice(),
		"page":        pager.CurrentPage(),
		"pageSize":    pager.PageSize(),
		"totalPages":  pager.TotalPages(),
		"totalItems":  pager.TotalItems(),
		"startIndex":  pager.StartIndex(),
		"endIndex":    pager.EndIndex(),
		"hasNext":     pager.HasNext(),
		"hasPrevious": pager.HasPrevious(),
	})
}

func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": catalog.Categories})
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	p := catalog.ByIDString(c.Params("id"))
	if p == nil {
		return notFound(c, "This item is no longer available")
	}
	return c.JSON(p)
}

// Pricing resolves the size-conditional price pair for a product.
func (h *CatalogHandler) Pricing(c *fiber.Ctx) error {
	p := catalog.ByIDString(c.Params("id"))
	if p == nil {
		return notFound(c, "This item is no longer available")
	}
	size := c.Query("size")
	if size != "" {
		if _, ok := validate.Size(size); !ok {
			return badRequest(c, "invalid size")
		}
	}
	return c.JSON(catalog.Pricing(*p, size))
}

// ShareLink builds the WhatsApp share URL for a product page.
func (h *CatalogHandler) ShareLink(c *fiber.Ctx) error {
	p := catalog.ByIDString(c.Params("id"))
	if p == nil {
		return notFound(c, "This item is no longer available")
	}
	return c.JSON(fiber.Map{
		"url": share.Link("", share.ProductMessage(*p)),
	})
}

// EnquiryLink is the storefront-wide WhatsApp contact link.
func (h *CatalogHandler) EnquiryLink(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"url": share.Link(h.Cfg.WhatsAppPhone, share.EnquiryMessage()),
	})
}
