package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"tooltips/core/config"
	"tooltips/core/logger"
	"tooltips/feature/catalog"

	"github.com/spf13/cobra"
)

// integrationsCmd represents the integrations command
var integrationsCmd = &cobra.Command{
	Use:   "integrations",
	Short: "Bootstrap the integrations and print the report",
	Long:  `Runs the integration bootstrap against the configured components and prints which integrations were registered, skipped or absent. Use --json for machine readable output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		ctx := context.Background()
		h := newHost(ctx, cfg, logg, false)
		defer h.manager.Shutdown(ctx)

		status := catalog.Snapshot(h.manager, h.registry, h.scripts)

		if jsonOutput {
			data, err := json.MarshalIndent(status, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "INTEGRATION\tCOMPONENT\tVERSION\tSTATUS\tREASON")
		for _, r := range status.Integrations {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Name, dash(r.Component), dash(r.Version), r.Status, r.Reason)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Println("\n=== Capabilities ===")
		fmt.Printf("Furniture providers: %s\n", dash(strings.Join(status.FurnitureProviders, ", ")))
		fmt.Printf("Area providers: %s\n", dash(strings.Join(status.AreaProviders, ", ")))
		fmt.Printf("Packet provider: %s\n", dash(status.PacketProvider))
		fmt.Printf("Conditions: %s\n", dash(strings.Join(status.Conditions, ", ")))
		fmt.Printf("Actions: %s\n", dash(strings.Join(status.Actions, ", ")))
		fmt.Printf("Placeholders: %s\n", dash(strings.Join(status.Placeholders, ", ")))
		return nil
	},
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	integrationsCmd.Flags().Bool("json", false, "Print the report as JSON")
	RootCmd.AddCommand(integrationsCmd)
}
