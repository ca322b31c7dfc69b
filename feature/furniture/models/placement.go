package models

// Placement is one furniture instance a companion component placed in a world.
// Components export their placements to the shared furniture_placements table.
type Placement struct {
	ID uint `gorm:"primaryKey"`
	// Source is the identifier of the component owning the furniture (e.g. "nexo").
	Source string `gorm:"size:64;not null;index:idx_placement_block,priority:1"`
	// FurnitureID is the component's id for the furniture type (e.g. "oak_chair").
	FurnitureID string `gorm:"size:128;not null"`
	World       string `gorm:"size:64;not null;index:idx_placement_block,priority:2"`
	X           int    `gorm:"not null;index:idx_placement_block,priority:3"`
	Y           int    `gorm:"not null;index:idx_placement_block,priority:4"`
	Z           int    `gorm:"not null;index:idx_placement_block,priority:5"`
	// EntityID is the UUID of the backing entity, if the furniture is entity based.
	EntityID *string `gorm:"size:36;index"`
	// Attributes holds component specific data.
	Attributes map[string]string `gorm:"serializer:json"`
}

// TableName overrides the gorm default.
func (Placement) TableName() string {
	return "furniture_placements"
}

// RequiredColumns lists the columns a placement table must expose.
var RequiredColumns = []string{"source", "furniture_id", "world", "x", "y", "z", "entity_id", "attributes"}
