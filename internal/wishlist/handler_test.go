package wishlist

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() (*fiber.App, *Store) {
	store := NewStore(nil)
	handler := NewHandler(store)
	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	return app, store
}

func TestWishlistAddAndList(t *testing.T) {
	app, _ := newTestApp()

	body := strings.NewReader(`{"id":"2","name":"Ocean View Villa","location":"Pattaya Beach","price":45000,"type":"Villa"}`)
	req := httptest.NewRequest("POST", "/api/v1/wishlist", body)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("GET", "/api/v1/wishlist", nil)
	res2, _ := app.Test(req2)
	var items []Item
	if err := json.NewDecoder(res2.Body).Decode(&items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].ID != "2" || items[0].Name != "Ocean View Villa" {
		t.Fatalf("unexpected wishlist %v", items)
	}
}

func TestWishlistAddRejectsMissingID(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("POST", "/api/v1/wishlist", strings.NewReader(`{"name":"No ID"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestWishlistToggleEndpoint(t *testing.T) {
	app, store := newTestApp()

	payload := `{"id":"5","name":"Luxury Penthouse"}`
	toggle := func() map[string]any {
		req := httptest.NewRequest("POST", "/api/v1/wishlist/toggle", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		var out map[string]any
		if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		return out
	}

	if out := toggle(); out["wishlisted"] != true {
		t.Fatalf("first toggle should report wishlisted=true: %v", out)
	}
	if !store.IsInWishlist("5") {
		t.Fatalf("item missing after toggle")
	}
	if out := toggle(); out["wishlisted"] != false {
		t.Fatalf("second toggle should report wishlisted=false: %v", out)
	}
	if store.IsInWishlist("5") {
		t.Fatalf("item present after second toggle")
	}
}

func TestWishlistRemoveAndClearRoutes(t *testing.T) {
	app, store := newTestApp()
	store.AddItem(item("1"))
	store.AddItem(item("2"))

	req := httptest.NewRequest("DELETE", "/api/v1/wishlist/1", nil)
	res, _ := app.Test(req)
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if store.IsInWishlist("1") {
		t.Fatalf("item still present after delete")
	}

	// "clear" must win over the :id wildcard
	req2 := httptest.NewRequest("DELETE", "/api/v1/wishlist/clear", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	if len(store.Items()) != 0 {
		t.Fatalf("wishlist not cleared: %v", storeIDs(store))
	}
}
