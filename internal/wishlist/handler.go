package wishlist

import "github.com/gofiber/fiber/v2"

// Handler exposes the wishlist over HTTP. The store is scoped to the
// installation rather than the authenticated user, so these routes are
// public.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/wishlist", h.getItems)
	app.Post("/api/v1/wishlist", h.addItem)
	app.Post("/api/v1/wishlist/toggle", h.toggleItem)
	app.Delete("/api/v1/wishlist/clear", h.clearItems)
	app.Delete("/api/v1/wishlist/:id", h.removeItem)
}

func (h *Handler) getItems(c *fiber.Ctx) error {
	return c.JSON(h.store.Items())
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(Item)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	h.store.AddItem(*payload)
	return c.JSON(fiber.Map{"id": payload.ID, "wishlisted": true})
}

func (h *Handler) toggleItem(c *fiber.Ctx) error {
	payload := new(Item)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	wishlisted := h.store.Toggle(*payload)
	return c.JSON(fiber.Map{"id": payload.ID, "wishlisted": wishlisted})
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	h.store.RemoveItem(id)
	return c.JSON(fiber.Map{"id": id, "wishlisted": false})
}

func (h *Handler) clearItems(c *fiber.Ctx) error {
	h.store.Clear()
	return c.JSON(fiber.Map{"cleared": true})
}
