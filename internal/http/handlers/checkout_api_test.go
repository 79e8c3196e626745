package handlers_test

import (
	"testing"
)

func checkoutForm() map[string]any {
	return map[string]any{
		"firstName":     "Asha",
		"lastName":      "Rao",
		"email":         "asha@example.com",
		"phone":         "+91 98765 43210",
		"address":       "12 MG Road",
		"city":          "Bengaluru",
		"state":         "Karnataka",
		"pincode":       "560001",
		"paymentMethod": "razorpay",
	}
}

func TestCheckoutQuoteAPI(t *testing.T) {
	app := newTestApp(t)
	sid := "quote-sid"

	resp, _ := app.Test(jsonReq("GET", "/api/checkout/quote", nil, sid))
	var q struct {
		Subtotal  int `json:"subtotal"`
		Shipping  int `json:"shipping"`
		Total     int `json:"total"`
		ItemCount int `json:"itemCount"`
	}
	decode(t, resp, &q)
	if q.Total != 0 || q.Shipping != 0 {
		t.Fatalf("empty quote: %+v", q)
	}

	app.Test(jsonReq("POST", "/api/cart/items", map[string]any{"productId": 5, "size": "M"}, sid))
	resp, _ = app.Test(jsonReq("GET", "/api/checkout/quote", nil, sid))
	decode(t, resp, &q)
	if q.Subtotal != 8999 || q.Shipping != 0 || q.Total != 8999 {
		t.Fatalf("quote over free-shipping threshold: %+v", q)
	}
}

func TestCheckoutPayClearsCart(t *testing.T) {
	app := newTestApp(t)
	sid := "pay-sid"
	app.Test(jsonReq("POST", "/api/cart/items", map[string]any{"productId": 1, "size": "M"}, sid))

	resp, err := app.Test(jsonReq("POST", "/api/checkout/pay", checkoutForm(), sid))
	if err != nil {
		t.Fatal(err)
	}
	var res struct {
		Success   bool   `json:"success"`
		PaymentID string `json:"paymentId"`
		Message   string `json:"message"`
	}
	decode(t, resp, &res)
	if !res.Success || res.PaymentID == "" {
		t.Fatalf("pay: %+v", res)
	}

	resp, _ = app.Test(jsonReq("GET", "/api/cart", nil, sid))
	var cart cartResp
	decode(t, resp, &cart)
	if cart.ItemCount != 0 {
		t.Fatalf("cart not cleared: %+v", cart)
	}
}

func TestCheckoutPayRejectsIncompleteForm(t *testing.T) {
	app := newTestApp(t)
	sid := "badform-sid"
	app.Test(jsonReq("POST", "/api/cart/items", map[string]any{"productId": 1, "size": "M"}, sid))

	form := checkoutForm()
	form["pincode"] = ""
	resp, _ := app.Test(jsonReq("POST", "/api/checkout/pay", form, sid))
	var res struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decode(t, resp, &res)
	if res.Success || res.Message != "Please fill in the pincode field." {
		t.Fatalf("validation: %+v", res)
	}

	// the failed attempt keeps the cart
	resp, _ = app.Test(jsonReq("GET", "/api/cart", nil, sid))
	var cart cartResp
	decode(t, resp, &cart)
	if cart.ItemCount != 1 {
		t.Fatalf("cart touched: %+v", cart)
	}
}

func TestCheckoutPayEmptyCart(t *testing.T) {
	app := newTestApp(t)
	resp, _ := app.Test(jsonReq("POST", "/api/checkout/pay", checkoutForm(), "empty-sid"))
	var res struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decode(t, resp, &res)
	if res.Success || res.Message != "Your cart is empty." {
		t.Fatalf("empty cart: %+v", res)
	}
}
