package handlers_test

import (
	"net/http"
	"testing"
)

type cartResp struct {
	Items []struct {
		ID       int    `json:"id"`
		Size     string `json:"size"`
		Color    string `json:"color"`
		Quantity int    `json:"quantity"`
		Price    string `json:"price"`
	} `json:"items"`
	Total     int  `json:"total"`
	ItemCount int  `json:"itemCount"`
	IsOpen    bool `json:"isOpen"`
}

func TestCartAddMergeAndRemove(t *testing.T) {
	app := newTestApp(t)
	sid := "cart-test-sid"

	add := map[string]any{"productId": 1, "size": "M", "quantity": 1}
	resp, err := app.Test(jsonReq("POST", "/api/cart/items", add, sid))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("add status %d", resp.StatusCode)
	}

	add["quantity"] = 2
	resp, err = app.Test(jsonReq("POST", "/api/cart/items", add, sid))
	if err != nil {
		t.Fatal(err)
	}
	var cart cartResp
	decode(t, resp, &cart)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("merge failed: %+v", cart.Items)
	}
	if cart.Total != 3*12999 {
		t.Fatalf("total: %d", cart.Total)
	}
	if cart.Items[0].Color != "Default" {
		t.Fatalf("color sentinel: %q", cart.Items[0].Color)
	}

	// a different size is its own line
	resp, _ = app.Test(jsonReq("POST", "/api/cart/items", map[string]any{"productId": 1, "size": "L", "quantity": 1}, sid))
	decode(t, resp, &cart)
	if len(cart.Items) != 2 {
		t.Fatalf("size split: %+v", cart.Items)
	}

	resp, _ = app.Test(jsonReq("DELETE", "/api/cart/items", map[string]any{"productId": 1, "size": "M"}, sid))
	decode(t, resp, &cart)
	if len(cart.Items) != 1 || cart.Items[0].Size != "L" {
		t.Fatalf("remove: %+v", cart.Items)
	}
}

func TestCartAddRequiresSize(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(jsonReq("POST", "/api/cart/items", map[string]any{"productId": 1, "quantity": 1}, "s"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCartUnknownProductIs404(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(jsonReq("POST", "/api/cart/items", map[string]any{"productId": 999, "size": "M"}, "s"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCartQuantityZeroRemovesLine(t *testing.T) {
	app := newTestApp(t)
	sid := "qty-sid"
	app.Test(jsonReq("POST", "/api/cart/items", map[string]any{"productId": 3, "size": "M", "quantity": 2}, sid))

	resp, _ := app.Test(jsonReq("PATCH", "/api/cart/items", map[string]any{"productId": 3, "size": "M", "quantity": 0}, sid))
	var cart cartResp
	decode(t, resp, &cart)
	if len(cart.Items) != 0 {
		t.Fatalf("zero should remove: %+v", cart.Items)
	}
}

func TestCartIsolatedBySession(t *testing.T) {
	app := newTestApp(t)
	app.Test(jsonReq("POST", "/api/cart/items", map[string]any{"productId": 3, "size": "M"}, "sid-a"))

	resp, _ := app.Test(jsonReq("GET", "/api/cart", nil, "sid-b"))
	var cart cartResp
	decode(t, resp, &cart)
	if cart.ItemCount != 0 {
		t.Fatalf("leaked across sessions: %+v", cart)
	}
}

func TestCartIssuesSIDCookie(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(jsonReq("GET", "/api/cart", nil, ""))
	if err != nil {
		t.Fatal(err)
	}
	if sidCookie(resp) == "" {
		t.Fatal("no sid cookie issued")
	}
}

func TestWishlistAPI(t *testing.T) {
	app := newTestApp(t)
	sid := "wl-sid"

	resp, _ := app.Test(jsonReq("POST", "/api/wishlist", map[string]any{"productId": 7}, sid))
	resp, _ = app.Test(jsonReq("POST", "/api/wishlist", map[string]any{"productId": 7}, sid))
	var wl struct {
		Items []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"items"`
		Count int `json:"count"`
	}
	decode(t, resp, &wl)
	if wl.Count != 1 {
		t.Fatalf("idempotent add broken: %+v", wl)
	}

	resp, _ = app.Test(jsonReq("DELETE", "/api/wishlist/7", nil, sid))
	decode(t, resp, &wl)
	if wl.Count != 0 {
		t.Fatalf("remove: %+v", wl)
	}
}
