package catalog

import (
	"tooltips/core/integration"
	"tooltips/core/loader"
	"tooltips/core/script"

	"github.com/gofiber/fiber/v2"
)

// Status is the bootstrap state exposed over HTTP.
type Status struct {
	Integrations       []loader.Result `json:"integrations"`
	FurnitureProviders []string        `json:"furniture_providers"`
	AreaProviders      []string        `json:"area_providers"`
	PacketProvider     string          `json:"packet_provider,omitempty"`
	Conditions         []string        `json:"conditions"`
	Actions            []string        `json:"actions"`
	Placeholders       []string        `json:"placeholders"`
}

// Snapshot collects the current bootstrap state.
func Snapshot(m *loader.Manager, registry *integration.Registry, scripts *script.Registry) Status {
	s := Status{
		Integrations:       m.Report(),
		FurnitureProviders: registry.FurnitureProviderIDs(),
		AreaProviders:      registry.AreaProviderIDs(),
	}
	if p, ok := registry.PacketProvider(); ok {
		s.PacketProvider = p.Identifier()
	}
	s.Conditions, s.Actions, s.Placeholders = scripts.Names()
	return s
}

// Handler exposes the bootstrap report over HTTP.
type Handler struct {
	manager  *loader.Manager
	registry *integration.Registry
	scripts  *script.Registry
}

// NewHandler creates a new HTTP handler.
func NewHandler(manager *loader.Manager, registry *integration.Registry, scripts *script.Registry) *Handler {
	return &Handler{manager: manager, registry: registry, scripts: scripts}
}

// RegisterRoutes registers the integration routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/integrations", h.HandleStatus)
}

// HandleStatus reports which integrations were registered and what they provide.
// @Summary Integration status
// @Tags integrations
// @Produce json
// @Success 200 {object} catalog.Status
// @Router /integrations [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(Snapshot(h.manager, h.registry, h.scripts))
}
