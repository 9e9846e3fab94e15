package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SanikaB-Works/cursor-ecom-project/internal/config"
	"github.com/SanikaB-Works/cursor-ecom-project/internal/loader"
	"github.com/SanikaB-Works/cursor-ecom-project/internal/schema"
)

// statusCmd reports per-table row counts of the destination store.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show row counts for the ingested store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		l, err := loader.Open(cfg.Database.Path)
		if err != nil {
			return err
		}
		defer l.Close()

		counts, err := l.Counts(context.Background())
		if err != nil {
			return fmt.Errorf("failed to read store: %w", err)
		}

		color.Cyan("📊 %s", cfg.Database.Path)
		for _, name := range schema.LoadOrder {
			color.Green("  %-12s %d rows", name, counts[name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
