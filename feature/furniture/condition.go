package furniture

import (
	"context"

	"tooltips/core/integration"
	"tooltips/core/script"
)

// LookingAt returns a condition that holds when provider recognizes
// furniture at the block the target is looking at.
func LookingAt(provider integration.FurnitureProvider) script.Condition {
	return func(ctx context.Context, target script.Target) bool {
		_, ok := provider.FurnitureAt(ctx, target.Location)
		return ok
	}
}
