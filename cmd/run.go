package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SanikaB-Works/cursor-ecom-project/internal/config"
	"github.com/SanikaB-Works/cursor-ecom-project/internal/dataset"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate and ingest in one step",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if err := cfg.EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to create directories: %w", err)
		}

		ds, err := generateDataset(cfg)
		if err != nil {
			return err
		}
		if err := dataset.WriteAll(cfg.DataPath, ds.Tables()); err != nil {
			return err
		}

		return ingestDataset(cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
