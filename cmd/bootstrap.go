package cmd

import (
	"context"

	"tooltips/core/config"
	"tooltips/core/database"
	"tooltips/core/integration"
	"tooltips/core/loader"
	"tooltips/core/script"
	"tooltips/core/storage"
	"tooltips/feature/catalog"
	"tooltips/feature/furniture"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// host is the wired integration layer shared by the commands.
type host struct {
	registry *integration.Registry
	scripts  *script.Registry
	manager  *loader.Manager
}

// newHost connects the optional resources and registers the default catalog.
// Neither the database nor the storage is required: integrations needing a
// missing one are skipped at bootstrap.
func newHost(ctx context.Context, cfg *config.Config, logg *zap.Logger, migrate bool) *host {
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
		logg.Info("Connected to placement database", zap.String("driver", cfg.Database.Driver))
		if migrate || cfg.Database.Driver == "sqlite" {
			if err := furniture.Migrate(db); err != nil {
				logg.Warn("Placement table migration failed", zap.Error(err))
			}
		}
	}

	var store storage.Client
	if client, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("Optional storage client failed", zap.Error(err))
	} else {
		store = client
	}

	h := &host{
		registry: integration.NewRegistry(logg),
		scripts:  script.NewRegistry(),
	}
	h.manager = loader.NewManager(loader.ParseComponents(cfg.Integration.Components), h.registry, h.scripts, logg)

	catalog.Install(h.manager, catalog.Deps{
		DB:      db,
		Storage: store,
		Bucket:  cfg.Storage.Bucket,
		Config:  cfg.Integration,
		Logger:  logg,
	})
	h.manager.LoadAll(ctx)
	return h
}
