package property

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/baanfinder/baanfinder-backend/internal/user"
)

// Handler serves the public catalog endpoints and the admin back-office
// property CRUD.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/properties", h.listProperties)
	app.Get("/api/v1/properties/recent", h.recentProperties)
	app.Get("/api/v1/property/:id", h.getProperty)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/properties", h.createProperty)
	app.Get("/api/v1/admin/properties", h.listAllProperties)
	app.Put("/api/v1/admin/property/:id", h.updateProperty)
	app.Patch("/api/v1/admin/property/:id/availability", h.setAvailability)
	app.Delete("/api/v1/admin/property/:id", h.deleteProperty)
}

// parseCriteria builds a filter snapshot from query params. Absent params
// stay at their pass-all sentinels; malformed minBeds is treated as unset.
func parseCriteria(c *fiber.Ctx) Criteria {
	crit := NewCriteria()
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
		crit.Bucket = PriceBucket(v)
	}
	crit.Query = c.Query("q")
	return crit
}

func (h *Handler) listProperties(c *fiber.Ctx) error {
	results := h.service.Search(parseCriteria(c))
	if c.Query("locale") == "th" {
		results = localizeSummaries(results)
	}
	return c.JSON(results)
}

func (h *Handler) recentProperties(c *fiber.Ctx) error {
	limit := 4
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	return c.JSON(h.service.Recent(limit))
}

func (h *Handler) getProperty(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "property not found"})
	}
	return c.JSON(p)
}

// localizeSummaries applies the Thai display fallback: TH fields replace the
// base fields when present, otherwise the base value stands.
func localizeSummaries(in []Summary) []Summary {
	out := make([]Summary, len(in))
	for i, s := range in {
		if s.NameTH != nil && *s.NameTH != "" {
			s.Name = *s.NameTH
		}
		if s.LocationTH != nil && *s.LocationTH != "" {
			s.Location = *s.LocationTH
		}
		out[i] = s
	}
	return out
}

type propertyRequest struct {
	Name        string   `json:"name"`
	NameTH      *string  `json:"nameTh,omitempty"`
	Location    string   `json:"location"`
	LocationTH  *string  `json:"locationTh,omitempty"`
	Address     string   `json:"address"`
	Beds        int      `json:"beds"`
	Baths       int      `json:"baths"`
	Area        int      `json:"area"`
	Price       int      `json:"price"`
	Type        string   `json:"type"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Description *string  `json:"description,omitempty"`
	Amenities   []string `json:"amenities"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

const defaultImage = "/images/rentals/rental1.jpg"

var allowedImageDomains = []string{
	"images.unsplash.com",
	"lh3.googleusercontent.com",
}

func (h *Handler) createProperty(c *fiber.Ctx) error {
	if err := requireAdmin(c); err != nil {
		return err
	}

	payload := new(propertyRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" || payload.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name and location are required"})
	}

	image := defaultImage
	if payload.Image != "" && isValidImageURL(payload.Image) {
		image = payload.Image
	}
	images := make([]string, 0, len(payload.Images))
	for _, img := range payload.Images {
		if isValidImageURL(img) {
			images = append(images, img)
		}
	}
	if len(images) == 0 {
		images = append(images, defaultImage)
	}

	available := true
	if payload.IsAvailable != nil {
		available = *payload.IsAvailable
	}

	created, err := h.service.Create(Property{
		ID:          uuid.NewString(),
		Name:        payload.Name,
		NameTH:      payload.NameTH,
		Location:    payload.Location,
		LocationTH:  payload.LocationTH,
		Address:     payload.Address,
		Beds:        payload.Beds,
		Baths:       payload.Baths,
		Area:        payload.Area,
		Price:       payload.Price,
		Type:        payload.Type,
		Image:       image,
		Images:      images,
		Description: payload.Description,
		Amenities:   payload.Amenities,
		IsAvailable: available,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) listAllProperties(c *fiber.Ctx) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	return c.JSON(h.service.List())
}

func (h *Handler) updateProperty(c *fiber.Ctx) error {
	if err := requireAdmin(c); err != nil {
		return err
	}

	payload := new(Property)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(c.Params("id"), *payload)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "property not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) setAvailability(c *fiber.Ctx) error {
	if err := requireAdmin(c); err != nil {
		return err
	}

	payload := new(struct {
		IsAvailable bool `json:"isAvailable"`
	})
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.SetAvailability(c.Params("id"), payload.IsAvailable)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "property not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProperty(c *fiber.Ctx) error {
	if err := requireAdmin(c); err != nil {
		return err
	}

	if err := h.service.Delete(c.Params("id")); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "property not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func requireAdmin(c *fiber.Ctx) error {
	role, err := user.GetRoleFromCtx(c)
	if err != nil || role != user.RoleAdmin {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return nil
}

// isValidImageURL accepts site-local image paths (no traversal) and https
// URLs on the allowlisted image hosts.
func isValidImageURL(raw string) bool {
	if strings.HasPrefix(raw, "/") {
		if strings.Contains(raw, "..") || strings.Contains(raw, "//") {
			return false
		}
		return true
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "https" {
		return false
	}
	for _, host := range allowedImageDomains {
		if parsed.Hostname() == host {
			return true
		}
	}
	return false
}
