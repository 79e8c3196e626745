package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"monabazaar/internal/config"
	"monabazaar/internal/http/handlers"
	"monabazaar/internal/repos"
)

// newTestApp wires the real handler graph over an in-memory database with
// the simulated delays switched off.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{
		PageSize:      12,
		FreeShipMin:   2999,
		ShipFee:       99,
		RazorpayKey:   "rzp_test_1234567890",
		WhatsAppPhone: "919876543210",
	}
	deps := handlers.NewDeps(db, cfg)

	app := fiber.New()
	api := app.Group("/api")

	api.Get("/products", deps.CatalogHandler.List)
	api.Get("/products/:id", deps.CatalogHandler.Detail)
	api.Get("/products/:id/pricing", deps.CatalogHandler.Pricing)
	api.Get("/products/:id/share-link", deps.CatalogHandler.ShareLink)
	api.Get("/categories", deps.CatalogHandler.Categories)

	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart/items", deps.CartHandler.Add)
	api.Patch("/cart/items", deps.CartHandler.UpdateQuantity)
	api.Delete("/cart/items", deps.CartHandler.Remove)
	api.Post("/cart/clear", deps.CartHandler.Clear)

	api.Get("/wishlist", deps.WishlistHandler.List)
	api.Post("/wishlist", deps.WishlistHandler.Save)
	api.Delete("/wishlist/:id", deps.WishlistHandler.Unsave)

	api.Post("/auth/login", deps.AuthHandler.Login)
	api.Post("/auth/otp/send", deps.AuthHandler.SendOTP)
	api.Post("/auth/otp/verify", deps.AuthHandler.VerifyOTP)
	api.Post("/auth/logout", deps.AuthHandler.Logout)
	api.Get("/auth/me", deps.AuthHandler.Me)
	api.Patch("/auth/profile", deps.AuthHandler.UpdateProfile)

	api.Get("/checkout/quote", deps.CheckoutHandler.Quote)
	api.Get("/checkout/prefill", deps.CheckoutHandler.Prefill)
	api.Post("/checkout/pay", deps.CheckoutHandler.Pay)

	admin := api.Group("/admin", handlers.RequireUser(deps.Auth))
	admin.Get("/dashboard", deps.AdminHandler.Dashboard)

	return app
}

func jsonReq(method, target string, body any, sid string) *http.Request {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	return req
}

func decode(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func sidCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			return c.Value
		}
	}
	return ""
}
