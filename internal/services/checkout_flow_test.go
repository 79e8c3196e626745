package services_test

import (
	"context"
	"testing"

	"monabazaar/internal/payment"
	"monabazaar/internal/repos"
	"monabazaar/internal/services"
)

func form() services.OrderForm {
	return services.OrderForm{
		FirstName:     "Asha",
		LastName:      "Verma",
		Email:         "asha@example.com",
		Phone:         "9876543210",
		Address:       "12 MG Road",
		City:          "Pune",
		State:         "Maharashtra",
		Pincode:       "411001",
		PaymentMethod: "razorpay",
	}
}

func newCheckout(t *testing.T) (*services.CheckoutService, *services.CartService, *repos.PaymentRepo) {
	t.Helper()
	db := memdb(t)
	carts := services.NewCartService()
	pay := repos.NewPaymentRepo(db)
	svc := &services.CheckoutService{
		Carts:       carts,
		Auth:        newAuth(t, db),
		Gateway:     &payment.SimGateway{},
		Payments:    pay,
		FreeShipMin: 2999,
		ShipFee:     99,
		GatewayKey:  "rzp_test_1234567890",
	}
	return svc, carts, pay
}

func TestQuoteShippingThreshold(t *testing.T) {
	svc, carts, _ := newCheckout(t)
	sid := "q-session"

	if _, err := carts.AddProduct(sid, 10, "M", "", 1); err != nil { // ₹2,499 kurta pajama
		t.Fatal(err)
	}
	q := svc.Quote(sid)
	if q.Subtotal != 2499 || q.Shipping != 99 || q.Total != 2598 {
		t.Fatalf("below threshold: %+v", q)
	}

	if _, err := carts.AddProduct(sid, 3, "M", "", 1); err != nil { // ₹2,999 kurta set
		t.Fatal(err)
	}
	q = svc.Quote(sid)
	if q.Shipping != 0 {
		t.Fatalf("free shipping expected: %+v", q)
	}
	if q.ItemCount != 2 {
		t.Fatalf("item count: %+v", q)
	}
}

func TestPlaceSuccessClearsCartAndRecordsReceipt(t *testing.T) {
	svc, carts, pay := newCheckout(t)
	sid := "ok-session"
	if _, err := carts.AddProduct(sid, 1, "M", "Royal Blue", 1); err != nil {
		t.Fatal(err)
	}

	res := svc.Place(context.Background(), sid, form())
	if !res.Success || res.PaymentID == "" {
		t.Fatalf("payment: %+v", res)
	}
	if carts.Cart(sid).ItemCount() != 0 {
		t.Fatal("cart not cleared after capture")
	}

	n, total, err := pay.Tally()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || total != 12999*100 { // subtotal over the free-shipping threshold
		t.Fatalf("tally: n=%d total=%d", n, total)
	}
}

func TestPlaceValidationFailures(t *testing.T) {
	svc, carts, _ := newCheckout(t)
	sid := "bad-session"
	if _, err := carts.AddProduct(sid, 1, "M", "", 1); err != nil {
		t.Fatal(err)
	}

	f := form()
	f.Email = ""
	if res := svc.Place(context.Background(), sid, f); res.Success {
		t.Fatal("missing field accepted")
	}
	f = form()
	f.Email = "not-an-email"
	if res := svc.Place(context.Background(), sid, f); res.Success {
		t.Fatal("bad email accepted")
	}
	f = form()
	f.Pincode = "1234"
	if res := svc.Place(context.Background(), sid, f); res.Success {
		t.Fatal("bad pincode accepted")
	}
	if carts.Cart(sid).ItemCount() != 1 {
		t.Fatal("validation failure touched the cart")
	}
}

func TestPlaceEmptyCartRejected(t *testing.T) {
	svc, _, _ := newCheckout(t)
	if res := svc.Place(context.Background(), "empty-session", form()); res.Success {
		t.Fatal("empty cart checked out")
	}
}

func TestCashOnDeliverySkipsGateway(t *testing.T) {
	svc, carts, _ := newCheckout(t)
	svc.Gateway = nil // would panic if the gateway were consulted
	sid := "cod-session"
	if _, err := carts.AddProduct(sid, 4, "L", "", 2); err != nil {
		t.Fatal(err)
	}

	f := form()
	f.PaymentMethod = "cod"
	res := svc.Place(context.Background(), sid, f)
	if !res.Success {
		t.Fatalf("cod failed: %+v", res)
	}
	if carts.Cart(sid).ItemCount() != 0 {
		t.Fatal("cart not cleared after cod order")
	}
}

func TestDeclinedPaymentKeepsCart(t *testing.T) {
	svc, carts, pay := newCheckout(t)
	sid := "declined-session"
	if _, err := carts.AddProduct(sid, 1, "M", "", 1); err != nil {
		t.Fatal(err)
	}

	// the magic contact number makes the simulated gateway refuse the charge
	f := form()
	f.Phone = payment.DeclineContact
	res := svc.Place(context.Background(), sid, f)
	if res.Success {
		t.Fatal("decline reported as success")
	}
	if carts.Cart(sid).ItemCount() != 1 {
		t.Fatal("declined payment emptied the cart")
	}

	// the receipt is recorded as failed, so it stays out of the captured tally
	n, _, err := pay.Tally()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("declined charge counted as captured: n=%d", n)
	}
}

func TestPrefillFromSession(t *testing.T) {
	svc, _, _ := newCheckout(t)
	sid := "prefill-session"

	if f := svc.Prefill(sid); f.FirstName != "" || f.Email != "" {
		t.Fatalf("anonymous prefill not empty: %+v", f)
	}

	if res := svc.Auth.Login(context.Background(), sid, "test", "test"); !res.Success {
		t.Fatal("login failed")
	}
	f := svc.Prefill(sid)
	if f.FirstName != "Test" || f.LastName != "Admin" {
		t.Fatalf("name split: %+v", f)
	}
	if f.Email != "test@monadesigners.com" || f.Phone != "+91 98765 43210" {
		t.Fatalf("contact fields: %+v", f)
	}
}
