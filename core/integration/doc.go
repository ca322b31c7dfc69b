// Package integration holds the capability registry of the host.
//
// Companion components are wired into the host through adapters implementing
// one of three capability interfaces:
//   - FurnitureProvider: resolves a location or an entity to furniture.
//   - AreaProvider: resolves a location to the protected regions covering it.
//   - PacketProvider: the low-level network layer, opaque to this package.
//
// # Registry
//
// A Registry keeps one ordered, keyed set per capability kind (furniture,
// area) plus an exclusive slot for the packet capability. Providers are keyed
// by their Identifier; registering the same identifier twice replaces the
// previous provider in place.
//
// # Dispatch
//
// ResolveByLocation and ResolveByEntity query furniture providers in
// registration order and return the first present answer. AreasAt returns
// every area answer, since regions may legitimately overlap.
//
// # Usage
//
//	reg := integration.NewRegistry(logger)
//	reg.RegisterFurnitureProvider(nexo)
//	reg.RegisterFurnitureProvider(oraxen)
//
//	if f, ok := reg.ResolveByLocation(ctx, loc); ok {
//	    logger.Info("Furniture found", zap.String("id", f.ID))
//	}
package integration
