package locale

import (
	"github.com/gofiber/fiber/v2"

	"github.com/baanfinder/baanfinder-backend/internal/property"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/messages/:locale", h.getMessages)
	app.Get("/api/v1/filter-options", h.getFilterOptions)
}

func (h *Handler) getMessages(c *fiber.Ctx) error {
	return c.JSON(Messages(c.Params("locale")))
}

// Option pairs a raw value (sent back in filter queries) with its localized
// display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type filterOptions struct {
	Locations    []Option `json:"locations"`
	Types        []Option `json:"types"`
	Bedrooms     []Option `json:"bedrooms"`
	PriceBuckets []Option `json:"priceBuckets"`
}

var locationKeys = map[string]string{
	"Bangkok Central":     "locations.bangkok",
	"Pattaya Beach":       "locations.pattaya",
	"Chiang Mai":          "locations.chiangmai",
	"Downtown Metropolis": "locations.downtown",
}

var typeKeys = map[string]string{
	"House":     "types.house",
	"Condo":     "types.condo",
	"Villa":     "types.villa",
	"Apartment": "types.apartment",
}

// getFilterOptions returns the dropdown option lists for the catalog
// filters. Raw values stay English; only labels are localized.
func (h *Handler) getFilterOptions(c *fiber.Ctx) error {
	loc := c.Query("locale", EN)

	opts := filterOptions{}

	opts.Locations = append(opts.Locations, Option{Value: property.AnyLocation, Label: Lookup(loc, "locations.all")})
	for _, v := range property.AllowedLocations {
		opts.Locations = append(opts.Locations, Option{Value: v, Label: Lookup(loc, locationKeys[v])})
	}

	opts.Types = append(opts.Types, Option{Value: property.AnyType, Label: Lookup(loc, "types.all")})
	for _, v := range property.AllowedTypes {
		opts.Types = append(opts.Types, Option{Value: v, Label: Lookup(loc, typeKeys[v])})
	}

	opts.Bedrooms = []Option{
		{Value: "0", Label: Lookup(loc, "properties.anyBeds")},
		{Value: "1", Label: "1+"},
		{Value: "2", Label: "2+"},
		{Value: "3", Label: "3+"},
		{Value: "4", Label: "4+"},
		{Value: "5", Label: "5+"},
	}

	opts.PriceBuckets = []Option{
		{Value: string(property.BucketAny), Label: Lookup(loc, "properties.anyPrice")},
		{Value: string(property.BucketUnder20K), Label: Lookup(loc, "properties.under") + " ฿20,000"},
		{Value: string(property.Bucket20K40K), Label: "฿20,000 - ฿40,000"},
		{Value: string(property.Bucket40K60K), Label: "฿40,000 - ฿60,000"},
		{Value: string(property.BucketOver60K), Label: Lookup(loc, "properties.over") + " ฿60,000"},
	}

	return c.JSON(opts)
}
