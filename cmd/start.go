package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"tooltips/core/config"
	"tooltips/core/logger"
	"tooltips/core/server"
	"tooltips/feature/area"
	"tooltips/feature/catalog"
	"tooltips/feature/furniture"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "tooltips/docs/swagger"
)

// @title Tooltips API
// @version 1.0
// @description Capability lookups of the tooltips integration host.
// @host localhost:8080
// @BasePath /

var migrateFlag bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the integration host",
	Long:  `Bootstraps every available integration and serves the capability lookups over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Bootstrap integrations
		ctx := context.Background()
		h := newHost(ctx, cfg, logg, migrateFlag)

		// 4. HTTP surface
		app := server.New(cfg.Server, logg)
		catalog.NewHandler(h.manager, h.registry, h.scripts).RegisterRoutes(app)
		furniture.NewHandler(h.registry, logg).RegisterRoutes(app)
		area.NewHandler(h.registry).RegisterRoutes(app)

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 5. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout()); err != nil {
			logg.Warn("HTTP shutdown incomplete", zap.Error(err))
		}

		shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout())
		defer cancel()
		if err := h.manager.Shutdown(shutdownCtx); err != nil {
			logg.Error("Integration shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	startCmd.Flags().BoolVar(&migrateFlag, "migrate", false, "Create or update the placement table before bootstrapping")
	RootCmd.AddCommand(startCmd)
}
