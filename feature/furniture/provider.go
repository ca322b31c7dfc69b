package furniture

import (
	"context"
	"fmt"

	"tooltips/core/database"
	"tooltips/core/integration"
	"tooltips/feature/furniture/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Provider resolves furniture from the placements one component exported.
// It implements integration.FurnitureProvider.
type Provider struct {
	source string
	db     *gorm.DB
	logger *zap.Logger
}

// NewProvider creates a provider answering for the placements of source.
func NewProvider(db *gorm.DB, source string, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		source: source,
		db:     db,
		logger: logger.With(zap.String("provider", source)),
	}
}

// Migrate creates or updates the placement table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Placement{})
}

// Verify checks that the placement table exposes every required column.
func (p *Provider) Verify(ctx context.Context) error {
	missing, err := database.MissingColumns(p.db.WithContext(ctx), models.Placement{}.TableName(), models.RequiredColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns %v", models.Placement{}.TableName(), missing)
	}
	return nil
}

// Identifier implements integration.FurnitureProvider.
func (p *Provider) Identifier() string {
	return p.source
}

// FurnitureAt implements integration.FurnitureProvider.
func (p *Provider) FurnitureAt(ctx context.Context, loc integration.Location) (integration.Furniture, bool) {
	return p.first(ctx, "source = ? AND world = ? AND x = ? AND y = ? AND z = ?",
		p.source, loc.World, loc.X, loc.Y, loc.Z)
}

// FurnitureOf implements integration.FurnitureProvider.
func (p *Provider) FurnitureOf(ctx context.Context, entity integration.Entity) (integration.Furniture, bool) {
	return p.first(ctx, "source = ? AND entity_id = ?", p.source, entity.ID.String())
}

// first runs the lookup. Database errors are logged and reported as a miss.
func (p *Provider) first(ctx context.Context, query string, args ...any) (integration.Furniture, bool) {
	var placements []models.Placement
	err := p.db.WithContext(ctx).
		Where(query, args...).
		Order("id").
		Limit(1).
		Find(&placements).Error
	if err != nil {
		p.logger.Warn("Furniture lookup failed", zap.Error(err))
		return integration.Furniture{}, false
	}
	if len(placements) == 0 {
		return integration.Furniture{}, false
	}
	return toFurniture(placements[0]), true
}

func toFurniture(pl models.Placement) integration.Furniture {
	f := integration.Furniture{
		ID:       pl.FurnitureID,
		Provider: pl.Source,
		Location: integration.Location{
			World: pl.World,
			X:     pl.X,
			Y:     pl.Y,
			Z:     pl.Z,
		},
		Attributes: pl.Attributes,
	}
	if pl.EntityID != nil {
		if id, err := uuid.Parse(*pl.EntityID); err == nil {
			f.Entity = &id
		}
	}
	return f
}
