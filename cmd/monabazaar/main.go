package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"monabazaar/internal/config"
	"monabazaar/internal/http/handlers"
	applog "monabazaar/internal/log"
	"monabazaar/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	deps := handlers.NewDeps(db, cfg)

	// Attach the current user to the context when a session exists
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := deps.Auth.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})

	api := app.Group("/api")

	// Catalog
	api.Get("/products", deps.CatalogHandler.List)
	api.Get("/products/:id", deps.CatalogHandler.Detail)
	api.Get("/products/:id/pricing", deps.CatalogHandler.Pricing)
	api.Get("/products/:id/share-link", deps.CatalogHandler.ShareLink)
	api.Get("/categories", deps.CatalogHandler.Categories)
	api.Get("/enquiry-link", deps.CatalogHandler.EnquiryLink)

	// Cart
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart/items", deps.CartHandler.Add)
	api.Patch("/cart/items", deps.CartHandler.UpdateQuantity)
	api.Delete("/cart/items", deps.CartHandler.Remove)
	api.Post("/cart/clear", deps.CartHandler.Clear)
	api.Post("/cart/open", deps.CartHandler.Open)
	api.Post("/cart/close", deps.CartHandler.Close)
	api.Post("/cart/toggle", deps.CartHandler.Toggle)

	// Wishlist
	api.Get("/wishlist", deps.WishlistHandler.List)
	api.Post("/wishlist", deps.WishlistHandler.Save)
	api.Delete("/wishlist/:id", deps.WishlistHandler.Unsave)
	api.Post("/wishlist/clear", deps.WishlistHandler.Clear)

	// Auth (login throttled)
	api.Post("/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false, "message": "Too many attempts. Please try again later.",
			})
		},
	}), deps.AuthHandler.Login)
	api.Post("/auth/otp/send", deps.AuthHandler.SendOTP)
	api.Post("/auth/otp/verify", deps.AuthHandler.VerifyOTP)
	api.Post("/auth/register", deps.AuthHandler.Register)
	api.Post("/auth/register/verify", deps.AuthHandler.VerifyRegistration)
	api.Post("/auth/logout", deps.AuthHandler.Logout)
	api.Get("/auth/me", deps.AuthHandler.Me)
	api.Patch("/auth/profile", deps.AuthHandler.UpdateProfile)

	// Checkout
	api.Get("/checkout/quote", deps.CheckoutHandler.Quote)
	api.Get("/checkout/prefill", deps.CheckoutHandler.Prefill)
	api.Post("/checkout/pay", deps.CheckoutHandler.Pay)

	// Admin
	admin := api.Group("/admin", handlers.RequireUser(deps.Auth))
	admin.Get("/dashboard", deps.AdminHandler.Dashboard)
	admin.Get("/payments", deps.AdminHandler.PaymentsPage)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
