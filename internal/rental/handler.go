package rental

import (
	"github.com/gofiber/fiber/v2"

	"github.com/baanfinder/baanfinder-backend/internal/user"
)

// Handler serves the current user's rental history and the admin creation
// endpoint.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/rentals", h.getRentals)
	app.Post("/api/v1/admin/rentals", h.createRental)
}

func (h *Handler) getRentals(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	rentals, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(rentals)
}

type createRentalRequest struct {
	UserID      string `json:"userId"`
	PropertyID  string `json:"propertyId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	MonthlyRent int    `json:"monthlyRent"`
	Status      string `json:"status"`
}

func (h *Handler) createRental(c *fiber.Ctx) error {
	role, err := user.GetRoleFromCtx(c)
	if err != nil || role != user.RoleAdmin {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(createRentalRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.UserID == "" || payload.PropertyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing userId or propertyId"})
	}
	if payload.Status != "" && payload.Status != StatusActive && payload.Status != StatusCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid status"})
	}

	created, err := h.service.Create(Rental{
		UserID:      payload.UserID,
		PropertyID:  payload.PropertyID,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		MonthlyRent: payload.MonthlyRent,
		Status:      payload.Status,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
