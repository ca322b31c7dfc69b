// Package furniture implements the placement-backed furniture adapter.
//
// Furniture plugins (Nexo, Oraxen, ItemsAdder, MythicCrucible, CraftEngine)
// export the furniture they place to the shared furniture_placements table.
// A Provider answers furniture lookups for one of those sources, so each
// component is registered as its own integration.FurnitureProvider.
//
// # Components
//
//   - Provider: gorm backed integration.FurnitureProvider scoped to one source.
//   - LookingAt: script condition built on any furniture provider.
//   - Handler: HTTP endpoints dispatching through the capability registry.
//
// # HTTP Endpoints
//
//   - GET /furniture/at?world=&x=&y=&z= : furniture occupying a block.
//   - GET /furniture/entity/:id : furniture backed by an entity.
package furniture
