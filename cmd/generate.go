package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SanikaB-Works/cursor-ecom-project/internal/config"
	"github.com/SanikaB-Works/cursor-ecom-project/internal/dataset"
	"github.com/SanikaB-Works/cursor-ecom-project/internal/synth"
)

var (
	generateSeed int64
	generateOut  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic dataset as CSV files",
	Long: `Derive entity counts from the seed, generate products, users, orders,
order items and reviews with consistent cross-references, reconcile order
totals, and write one CSV file per entity to the data directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if generateSeed > 0 {
			cfg.Seed = generateSeed
		}
		if generateOut != "" {
			cfg.DataPath = generateOut
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		ds, err := generateDataset(cfg)
		if err != nil {
			return err
		}

		if err := dataset.WriteAll(cfg.DataPath, ds.Tables()); err != nil {
			return err
		}

		color.Green("✅ Dataset written to %s", cfg.DataPath)
		return nil
	},
}

func generateDataset(cfg *config.Config) (*synth.Dataset, error) {
	anchor, err := cfg.Anchor()
	if err != nil {
		return nil, err
	}

	color.Cyan("🎲 Generating dataset (seed %d)...", cfg.Seed)

	session := synth.NewSession(cfg.Seed, anchor)
	ds := synth.GenerateAll(session)

	color.Cyan("  📦 products:    %d", len(ds.Products))
	color.Cyan("  👤 users:       %d", len(ds.Users))
	color.Cyan("  🧾 orders:      %d", len(ds.Orders))
	color.Cyan("  📋 order items: %d", len(ds.Items))
	color.Cyan("  ⭐ reviews:     %d", len(ds.Reviews))

	return ds, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Override the configured seed")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Override the data directory")
}
