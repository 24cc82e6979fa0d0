package locale

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/baanfinder/baanfinder-backend/internal/property"
)

func TestLookupFallsBackToEnglishThenKey(t *testing.T) {
	if got := Lookup(TH, "properties.title"); got != "อสังหาริมทรัพย์" {
		t.Fatalf("unexpected Thai title %q", got)
	}
	if got := Lookup("fr", "properties.title"); got != "Properties" {
		t.Fatalf("unknown locale should fall back to English, got %q", got)
	}
	if got := Lookup(EN, "no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key should fall back to the key, got %q", got)
	}
}

func newLocaleApp() *fiber.App {
	app := fiber.New()
	NewHandler().RegisterPublicRoutes(app)
	return app
}

func TestGetMessages(t *testing.T) {
	app := newLocaleApp()

	req := httptest.NewRequest("GET", "/api/v1/messages/th", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var got map[string]string
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["types.villa"] != "วิลล่า" {
		t.Fatalf("unexpected Thai villa label %q", got["types.villa"])
	}

	// unknown locale serves the English table
	req2 := httptest.NewRequest("GET", "/api/v1/messages/de", nil)
	res2, _ := app.Test(req2)
	var en map[string]string
	if err := json.NewDecoder(res2.Body).Decode(&en); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if en["types.villa"] != "Villa" {
		t.Fatalf("expected English fallback, got %q", en["types.villa"])
	}
}

func TestGetFilterOptions(t *testing.T) {
	app := newLocaleApp()

	req := httptest.NewRequest("GET", "/api/v1/filter-options?locale=th", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var got struct {
		Locations    []Option `json:"locations"`
		Types        []Option `json:"types"`
		Bedrooms     []Option `json:"bedrooms"`
		PriceBuckets []Option `json:"priceBuckets"`
	}
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// the pass-all sentinel leads each list and keeps its raw English value
	if got.Locations[0].Value != property.AnyLocation {
		t.Fatalf("expected %q first, got %q", property.AnyLocation, got.Locations[0].Value)
	}
	if got.Types[0].Value != property.AnyType {
		t.Fatalf("expected %q first, got %q", property.AnyType, got.Types[0].Value)
	}
	if got.PriceBuckets[0].Value != string(property.BucketAny) {
		t.Fatalf("expected %q first, got %q", property.BucketAny, got.PriceBuckets[0].Value)
	}

	// raw values stay English even under the Thai locale
	for _, opt := range got.Types[1:] {
		if opt.Value == opt.Label {
			t.Fatalf("type %q was not localized", opt.Value)
		}
	}
	if len(got.Bedrooms) != 6 || got.Bedrooms[1].Label != "1+" {
		t.Fatalf("unexpected bedroom options %v", got.Bedrooms)
	}
	if len(got.PriceBuckets) != 5 {
		t.Fatalf("expected 5 price buckets, got %d", len(got.PriceBuckets))
	}
}
