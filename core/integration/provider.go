package integration

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Location is a block position inside a world.
type Location struct {
	// World is the name of the world the block belongs to.
	World string `json:"world"`
	// X is the block x coordinate.
	X int `json:"x"`
	// Y is the block y coordinate.
	Y int `json:"y"`
	// Z is the block z coordinate.
	Z int `json:"z"`
}

// String returns the location as "world:x,y,z".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d,%d,%d", l.World, l.X, l.Y, l.Z)
}

// Entity is a handle to a mobile entity of the host.
type Entity struct {
	// ID is the unique id the host assigned to the entity.
	ID uuid.UUID `json:"id"`
	// Type is the host entity type (e.g. "item_display").
	Type string `json:"type"`
	// Location is the block the entity currently occupies.
	Location Location `json:"location"`
}

// Furniture is the answer of a furniture lookup.
// Its contents are owned by the adapter that produced it.
type Furniture struct {
	// ID is the furniture id within the providing adapter (e.g. "oak_chair").
	ID string `json:"id"`
	// Provider is the identifier of the adapter that resolved the furniture.
	Provider string `json:"provider"`
	// Location is the anchor block of the furniture.
	Location Location `json:"location"`
	// Entity is the backing entity, if the furniture is entity based.
	Entity *uuid.UUID `json:"entity,omitempty"`
	// Attributes holds adapter specific data.
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Area is the answer of an area lookup.
type Area struct {
	// Provider is the identifier of the adapter that resolved the area.
	Provider string `json:"provider"`
	// Regions lists the regions covering the location, most relevant first.
	Regions []string `json:"regions"`
}

// FurnitureProvider resolves host objects to furniture.
// Lookups report a miss with ok == false; they never fail.
type FurnitureProvider interface {
	// Identifier returns the unique, stable key of the provider (e.g. "nexo").
	Identifier() string

	// FurnitureAt returns the furniture occupying the given block.
	FurnitureAt(ctx context.Context, loc Location) (Furniture, bool)

	// FurnitureOf returns the furniture backed by the given entity.
	FurnitureOf(ctx context.Context, entity Entity) (Furniture, bool)
}

// AreaProvider resolves a location to the protected area covering it.
type AreaProvider interface {
	// Identifier returns the unique, stable key of the provider (e.g. "worldguard").
	Identifier() string

	// AreaAt returns the area covering the given block.
	AreaAt(ctx context.Context, loc Location) (Area, bool)
}

// PacketProvider is the network layer of the host.
// The send and receive surface is defined by the adapter.
type PacketProvider interface {
	Identifier() string
}
