package cmd

import (
	"context"
	"fmt"
	"os"

	"tooltips/core/config"
	"tooltips/core/logger"
	"tooltips/core/storage"
	"tooltips/feature/area"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// regionsCmd represents the regions command
var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Manage protected region definitions",
}

// regionsPushCmd uploads a region document
var regionsPushCmd = &cobra.Command{
	Use:   "push <file>",
	Short: "Validate a region document and upload it to storage",
	Long:  `Validates the region document and uploads it to the configured bucket under the regions object read by the WorldGuard integration.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		ctx := context.Background()
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return err
		}

		n, err := area.Push(ctx, client, cfg.Storage.Bucket, cfg.Integration.RegionsObject, data)
		if err != nil {
			return err
		}

		logg.Info("Region document uploaded",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("object", cfg.Integration.RegionsObject),
			zap.Int("regions", n),
		)
		return nil
	},
}

func init() {
	regionsCmd.AddCommand(regionsPushCmd)
	RootCmd.AddCommand(regionsCmd)
}
