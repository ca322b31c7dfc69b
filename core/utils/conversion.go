package utils

import (
	"fmt"
	"strconv"
	"strings"

	"tooltips/core/integration"
)

// ParseLocation builds a location from its textual parts, as received in
// query strings or command arguments.
func ParseLocation(world, x, y, z string) (integration.Location, error) {
	loc := integration.Location{World: strings.TrimSpace(world)}
	if loc.World == "" {
		return loc, fmt.Errorf("missing world")
	}

	coords := []struct {
		name string
		raw  string
		dst  *int
	}{
		{"x", x, &loc.X},
		{"y", y, &loc.Y},
		{"z", z, &loc.Z},
	}
	for _, c := range coords {
		v, err := strconv.Atoi(strings.TrimSpace(c.raw))
		if err != nil {
			return loc, fmt.Errorf("invalid %s coordinate %q", c.name, c.raw)
		}
		*c.dst = v
	}
	return loc, nil
}
