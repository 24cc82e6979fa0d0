package geo

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/baanfinder/baanfinder-backend/internal/property"
)

// Handler serves the map search endpoint: the filtered listing set plus one
// marker per visible property and a viewport fitted to them.
type Handler struct {
	properties *property.Service
	projector  *Projector
}

func NewHandler(properties *property.Service, projector *Projector) *Handler {
	return &Handler{properties: properties, projector: projector}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/search/map", h.searchMap)
}

// Marker is a map pin for one visible property.
type Marker struct {
	ID    string  `json:"id"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Price int     `json:"price"`
}

type mapResponse struct {
	Properties []property.Summary `json:"properties"`
	Markers    []Marker           `json:"markers"`
	Center     Coordinate         `json:"center"`
	// Viewport is omitted when nothing is visible; the client keeps its
	// current framing.
	Viewport *Viewport `json:"viewport,omitempty"`
}

func (h *Handler) searchMap(c *fiber.Ctx) error {
	crit := property.NewCriteria()
	if v := c.Query("location"); v != "" {
		crit.Location = v
	}
	if v := c.Query("type"); v != "" {
		crit.Type = v
	}
	if v := c.Query("minBeds"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			crit.MinBeds = n
		}
	}
	if v := c.Query("priceBucket"); v != "" {
		crit.Bucket = property.PriceBucket(v)
	}
	crit.Query = c.Query("q")

	visible := h.properties.Search(crit)

	markers := make([]Marker, 0, len(visible))
	coords := make([]Coordinate, 0, len(visible))
	locations := make([]string, 0, len(visible))
	for _, s := range visible {
		coord := h.projector.CoordinateFor(s.ID, s.Location)
		markers = append(markers, Marker{ID: s.ID, Lat: coord.Lat, Lng: coord.Lng, Price: s.Price})
		coords = append(coords, coord)
		locations = append(locations, s.Location)
	}

	resp := mapResponse{
		Properties: visible,
		Markers:    markers,
		Center:     h.projector.gazetteer.CenterFor(crit.Query, locations),
	}
	if viewport, ok := FitBounds(coords); ok {
		resp.Viewport = &viewport
	}
	return c.JSON(resp)
}
