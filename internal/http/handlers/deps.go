package handlers

import (
	"github.com/jmoiron/sqlx"

	"monabazaar/internal/config"
	"monabazaar/internal/payment"
	"monabazaar/internal/repos"
	"monabazaar/internal/services"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	CartHandler     *CartHandler
	WishlistHandler *WishlistHandler
	AuthHandler     *AuthHandler
	CheckoutHandler *CheckoutHandler
	AdminHandler    *AdminHandler

	Auth *services.AuthService
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	sessionRepo := repos.NewSessionRepo(db)
	userRepo := repos.NewUserRepo(db)
	paymentRepo := repos.NewPaymentRepo(db)

	cartSvc := services.NewCartService()
	wishSvc := services.NewWishlistService()
	authSvc := services.NewAuthService(sessionRepo, userRepo, cfg.AuthDelay)
	checkoutSvc := &services.CheckoutService{
		Carts:       cartSvc,
		Auth:        authSvc,
		Gateway:     &payment.SimGateway{Delay: cfg.AuthDelay},
		Payments:    paymentRepo,
		FreeShipMin: cfg.FreeShipMin,
		ShipFee:     cfg.ShipFee,
		GatewayKey:  cfg.RazorpayKey,
	}

	return &Deps{
		CatalogHandler:  &CatalogHandler{Cfg: cfg},
		CartHandler:     &CartHandler{Cart: cartSvc},
		WishlistHandler: &WishlistHandler{Wish: wishSvc},
		AuthHandler:     &AuthHandler{Auth: authSvc},
		CheckoutHandler: &CheckoutHandler{Checkout: checkoutSvc},
		AdminHandler:    &AdminHandler{Sessions: sessionRepo, Users: userRepo, Payments: paymentRepo},
		Auth:            authSvc,
	}
}
