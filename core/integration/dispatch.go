package integration

import "context"

// ResolveByLocation returns the furniture at loc from the first provider,
// in registration order, that recognizes it.
func (r *Registry) ResolveByLocation(ctx context.Context, loc Location) (Furniture, bool) {
	for p := range r.FurnitureProviders() {
		if f, ok := p.FurnitureAt(ctx, loc); ok {
			return f, true
		}
	}
	return Furniture{}, false
}

// ResolveByEntity returns the furniture backed by entity from the first provider,
// in registration order, that recognizes it.
func (r *Registry) ResolveByEntity(ctx context.Context, entity Entity) (Furniture, bool) {
	for p := range r.FurnitureProviders() {
		if f, ok := p.FurnitureOf(ctx, entity); ok {
			return f, true
		}
	}
	return Furniture{}, false
}

// AreasAt returns the answer of every area provider that covers loc, in registration order.
func (r *Registry) AreasAt(ctx context.Context, loc Location) []Area {
	var areas []Area
	for p := range r.AreaProviders() {
		if a, ok := p.AreaAt(ctx, loc); ok {
			areas = append(areas, a)
		}
	}
	return areas
}

// FirstAreaAt returns the area from the first provider that covers loc.
func (r *Registry) FirstAreaAt(ctx context.Context, loc Location) (Area, bool) {
	for p := range r.AreaProviders() {
		if a, ok := p.AreaAt(ctx, loc); ok {
			return a, true
		}
	}
	return Area{}, false
}
