package placeholder_test

import (
	"context"
	"testing"

	"tooltips/core/integration"
	"tooltips/core/script"
	"tooltips/feature/placeholder"

	"github.com/stretchr/testify/assert"
)

type furnitureStub struct {
	id    string
	items map[integration.Location]string
}

func (s furnitureStub) Identifier() string { return s.id }

func (s furnitureStub) FurnitureAt(_ context.Context, loc integration.Location) (integration.Furniture, bool) {
	id, ok := s.items[loc]
	if !ok {
		return integration.Furniture{}, false
	}
	return integration.Furniture{ID: id, Provider: s.id, Location: loc}, true
}

func (s furnitureStub) FurnitureOf(context.Context, integration.Entity) (integration.Furniture, bool) {
	return integration.Furniture{}, false
}

type areaStub struct {
	id      string
	regions []string
}

func (s areaStub) Identifier() string { return s.id }

func (s areaStub) AreaAt(context.Context, integration.Location) (integration.Area, bool) {
	if len(s.regions) == 0 {
		return integration.Area{}, false
	}
	return integration.Area{Provider: s.id, Regions: s.regions}, true
}

func TestExpansion_Resolve(t *testing.T) {
	loc := integration.Location{World: "world", X: 1, Y: 64, Z: 1}
	registry := integration.NewRegistry(nil)
	registry.RegisterFurnitureProvider(furnitureStub{id: "oraxen", items: map[integration.Location]string{loc: "oraxen:chair"}})
	registry.RegisterAreaProvider(areaStub{id: "worldguard", regions: []string{"spawn", "market"}})
	registry.RegisterAreaProvider(areaStub{id: "empty"})
	registry.RegisterAreaProvider(areaStub{id: "towny", regions: []string{"town"}})

	scripts := script.NewRegistry()
	scripts.RegisterExpansion(placeholder.NewExpansion(registry))

	ctx := context.Background()
	target := script.Target{Location: loc}

	assert.Equal(t, "oraxen:chair by oraxen", scripts.Expand(ctx, "%tooltips_furniture% by %tooltips_provider%", target))
	assert.Equal(t, "spawn,market,town", scripts.Expand(ctx, "%tooltips_areas%", target))
	assert.Equal(t, "%tooltips_unknown%", scripts.Expand(ctx, "%tooltips_unknown%", target))

	elsewhere := script.Target{Location: integration.Location{World: "nether"}}
	assert.Equal(t, "[]", scripts.Expand(ctx, "[%tooltips_furniture%]", elsewhere))
}

func TestExpansion_EmptyRegistry(t *testing.T) {
	e := placeholder.NewExpansion(integration.NewRegistry(nil))

	v, ok := e.Resolve(context.Background(), script.Target{}, "areas")
	assert.True(t, ok)
	assert.Empty(t, v)
	assert.Equal(t, "tooltips", e.Identifier())
}
