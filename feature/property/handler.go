package property

import (
	"errors"

	"property-engine/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for properties.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the property routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/properties")
	group.Get("/id/:id", h.HandleGetByID)
	group.Get("/:slug", h.HandleGetBySlug)
}

// HandleGetBySlug returns the canonical property for a slug.
// @Summary Get Property
// @Description Resolve a listing by slug. An optional id query parameter also matches.
// @Tags properties
// @Produce json
// @Param slug path string true "Listing slug (e.g. 'deniz-manzarali-villa')"
// @Param id query string false "Listing id"
// @Success 200 {object} Property "Canonical property"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /properties/{slug} [get]
func (h *Handler) HandleGetBySlug(c *fiber.Ctx) error {
	return h.respond(c, c.Params("slug"), c.Query("id"))
}

// HandleGetByID returns the canonical property for an id.
// @Summary Get Property By ID
// @Description Resolve a listing by id.
// @Tags properties
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} Property "Canonical property"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /properties/id/{id} [get]
func (h *Handler) HandleGetByID(c *fiber.Ctx) error {
	return h.respond(c, "", c.Params("id"))
}

func (h *Handler) respond(c *fiber.Ctx, slug, id string) error {
	l := logger.WithRayID(h.service.logger, c)

	p, err := h.service.Get(c.Context(), slug, id)
	switch {
	case errors.Is(err, ErrEmptyLookup):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		l.Debug("Property not found", zap.String("slug", slug), zap.String("id", id))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Property lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(p)
}
