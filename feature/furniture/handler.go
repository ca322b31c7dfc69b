package furniture

import (
	"tooltips/core/integration"
	"tooltips/core/logger"
	"tooltips/core/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler exposes furniture dispatch over HTTP.
type Handler struct {
	registry *integration.Registry
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(registry *integration.Registry, logger *zap.Logger) *Handler {
	return &Handler{registry: registry, logger: logger}
}

// RegisterRoutes registers the furniture routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/furniture")
	group.Get("/at", h.HandleFurnitureAt)
	group.Get("/entity/:id", h.HandleFurnitureOf)
}

// HandleFurnitureAt resolves the furniture occupying a block.
// @Summary Furniture at location
// @Tags furniture
// @Produce json
// @Param world query string true "World name"
// @Param x query int true "Block x"
// @Param y query int true "Block y"
// @Param z query int true "Block z"
// @Success 200 {object} integration.Furniture
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /furniture/at [get]
func (h *Handler) HandleFurnitureAt(c *fiber.Ctx) error {
	loc, err := utils.ParseLocation(c.Query("world"), c.Query("x"), c.Query("y"), c.Query("z"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	f, ok := h.registry.ResolveByLocation(c.UserContext(), loc)
	if !ok {
		logger.WithRayID(h.logger, c).Debug("No furniture at location", zap.Stringer("location", loc))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no furniture at location"})
	}
	return c.JSON(f)
}

// HandleFurnitureOf resolves the furniture backed by an entity.
// @Summary Furniture of entity
// @Tags furniture
// @Produce json
// @Param id path string true "Entity UUID"
// @Success 200 {object} integration.Furniture
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /furniture/entity/{id} [get]
func (h *Handler) HandleFurnitureOf(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid entity id"})
	}

	entity := integration.Entity{ID: id, Type: c.Query("type")}
	f, ok := h.registry.ResolveByEntity(c.UserContext(), entity)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no furniture for entity"})
	}
	return c.JSON(f)
}
