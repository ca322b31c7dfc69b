package area

import (
	"tooltips/core/integration"
	"tooltips/core/utils"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes area enumeration over HTTP.
type Handler struct {
	registry *integration.Registry
}

// NewHandler creates a new HTTP handler.
func NewHandler(registry *integration.Registry) *Handler {
	return &Handler{registry: registry}
}

// RegisterRoutes registers the area routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Group("/areas").Get("/at", h.HandleAreasAt)
}

// HandleAreasAt lists every area covering a block.
// @Summary Areas at location
// @Tags areas
// @Produce json
// @Param world query string true "World name"
// @Param x query int true "Block x"
// @Param y query int true "Block y"
// @Param z query int true "Block z"
// @Success 200 {array} integration.Area
// @Failure 400 {object} map[string]string
// @Router /areas/at [get]
func (h *Handler) HandleAreasAt(c *fiber.Ctx) error {
	loc, err := utils.ParseLocation(c.Query("world"), c.Query("x"), c.Query("y"), c.Query("z"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	areas := h.registry.AreasAt(c.UserContext(), loc)
	if areas == nil {
		areas = []integration.Area{}
	}
	return c.JSON(areas)
}
