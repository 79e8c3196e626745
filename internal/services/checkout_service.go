package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"monabazaar/internal/payment"
	"monabazaar/internal/repos"
	"monabazaar/internal/validate"
)

// OrderForm is the shipping/contact data collected at checkout.
type OrderForm struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	PaymentMethod string `json:"paymentMethod"` // razorpay | cod
}

// Quote is the order total breakdown in whole rupees.
type Quote struct {
	Subtotal  int `json:"subtotal"`
	Shipping  int `json:"shipping"`
	Total     int `json:"total"`
	ItemCount int `json:"itemCount"`
}

// CheckoutService reads the cart and session, quotes totals, and runs the
// simulated payment round trip. The cart is cleared only on success.
type CheckoutService struct {
	Carts       *CartService
	Auth        *AuthService
	Gateway     payment.Gateway
	Payments    *repos.PaymentRepo
	FreeShipMin int
	ShipFee     int
	GatewayKey  string
}

// Quote computes subtotal, shipping (free above the threshold), and total.
func (s *CheckoutService) Quote(sid string) Quote {
	cart := s.Carts.Cart(sid)
	sub := cart.Total()
	ship := s.ShipFee
	if sub >= s.FreeShipMin || sub == 0 {
		ship = 0
	}
	return Quote{Subtotal: sub, Shipping: ship, Total: sub + ship, ItemCount: cart.ItemCount()}
}

// Prefill seeds the checkout form from the signed-in session so a returning
// customer does not retype contact details. Anonymous sessions get a zero
// form.
func (s *CheckoutService) Prefill(sid string) OrderForm {
	var f OrderForm
	if s.Auth == nil {
		return f
	}
	u, err := s.Auth.CurrentUser(sid)
	if err != nil || u == nil {
		return f
	}
	first, rest, _ := strings.Cut(u.Name, " ")
	f.FirstName = first
	f.LastName = rest
	f.Email = u.Email
	f.Phone = u.Phone
	return f
}

// validateForm mirrors the client-side checks: every field required, then
// shape checks for email, phone, and PIN code. The first failure wins.
func validateForm(f OrderForm) (string, bool) {
	required := []struct{ name, val string }{
		{"first name", f.FirstName},
		{"last name", f.LastName},
		{"email", f.Email},
		{"phone", f.Phone},
		{"address", f.Address},
		{"city", f.City},
		{"state", f.State},
		{"pincode", f.Pincode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return fmt.Sprintf("Please fill in the %s field.", r.name), false
		}
	}
	if _, ok := validate.Email(f.Email); !ok {
		return "Please enter a valid email address.", false
	}
	if _, ok := validate.Phone(f.Phone); !ok {
		return "Please enter a valid phone number.", false
	}
	if _, ok := validate.Pincode(f.Pincode); !ok {
		return "Please enter a valid PIN code.", false
	}
	return "", true
}

// Place validates the form, builds the gateway options, and charges. Failure
// and dismissal leave the cart intact; success clears it and records the
// receipt.
func (s *CheckoutService) Place(ctx context.Context, sid string, form OrderForm) payment.Result {
	if msg, ok := validateForm(form); !ok {
		return payment.Result{Success: false, Message: msg}
	}
	cart := s.Carts.Cart(sid)
	if cart.ItemCount() == 0 {
		return payment.Result{Success: false, Message: "Your cart is empty."}
	}

	q := s.Quote(sid)
	method := strings.ToLower(strings.TrimSpace(form.PaymentMethod))
	if method == "" {
		method = "razorpay"
	}

	// Cash on delivery skips the gateway entirely.
	if method == "cod" {
		res := payment.Result{
			Success:   true,
			PaymentID: "cod_" + uuid.NewString(),
			Message:   "Your order has been placed successfully!",
		}
		s.record(sid, res, int64(q.Total)*100, method)
		cart.Clear()
		return res
	}

	opts := payment.Options{
		Key:         s.GatewayKey,
		AmountPaise: int64(q.Total) * 100,
		Currency:    "INR",
		Name:        "Mona Designers",
		Description: "Payment for ethnic wear order",
		Notes: map[string]string{
			"address": fmt.Sprintf("%s, %s, %s - %s", form.Address, form.City, form.State, form.Pincode),
		},
	}
	opts.Prefill.Name = strings.TrimSpace(form.FirstName + " " + form.LastName)
	opts.Prefill.Email = form.Email
	opts.Prefill.Contact = form.Phone
	opts.Theme.Color = "#F59E0B"

	res, err := s.Gateway.Charge(ctx, opts)
	if err != nil {
		// Canceled mid-flight: resolve as a failure without touching the cart.
		return payment.Result{Success: false, Message: "Payment was not completed."}
	}
	s.record(sid, res, opts.AmountPaise, method)
	if res.Success {
		cart.Clear()
	}
	return res
}

func (s *CheckoutService) record(sid string, res payment.Result, amountPaise int64, method string) {
	if s.Payments == nil {
		return
	}
	status := "failed"
	if res.Success {
		status = "captured"
	}
	id := res.PaymentID
	if id == "" {
		id = "pay_" + uuid.NewString()
	}
	_ = s.Payments.Record(repos.PaymentRow{
		ID:          id,
		SID:         sid,
		AmountPaise: amountPaise,
		Currency:    "INR",
		Method:      method,
		Status:      status,
	})
}
