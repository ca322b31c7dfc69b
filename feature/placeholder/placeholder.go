package placeholder

import (
	"context"
	"strings"

	"tooltips/core/integration"
	"tooltips/core/script"
)

// Identifier is the prefix of the placeholders this expansion resolves.
const Identifier = "tooltips"

// Expansion resolves "%tooltips_<key>%" placeholders through the registry's dispatcher.
type Expansion struct {
	registry *integration.Registry
}

// NewExpansion creates an expansion reading from registry.
func NewExpansion(registry *integration.Registry) *Expansion {
	return &Expansion{registry: registry}
}

// Identifier implements script.Expansion.
func (e *Expansion) Identifier() string {
	return Identifier
}

// Resolve implements script.Expansion. Known keys resolve to an empty string
// when nothing is found at the target location.
func (e *Expansion) Resolve(ctx context.Context, target script.Target, key string) (string, bool) {
	switch strings.ToLower(key) {
	case "furniture":
		f, _ := e.registry.ResolveByLocation(ctx, target.Location)
		return f.ID, true
	case "provider":
		f, _ := e.registry.ResolveByLocation(ctx, target.Location)
		return f.Provider, true
	case "areas":
		var regions []string
		for _, a := range e.registry.AreasAt(ctx, target.Location) {
			regions = append(regions, a.Regions...)
		}
		return strings.Join(regions, ","), true
	default:
		return "", false
	}
}
