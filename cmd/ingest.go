package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SanikaB-Works/cursor-ecom-project/internal/config"
	"github.com/SanikaB-Works/cursor-ecom-project/internal/dataset"
	"github.com/SanikaB-Works/cursor-ecom-project/internal/loader"
)

var (
	ingestData string
	ingestDB   string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the generated CSV files into the SQLite store",
	Long: `Create the five-table schema with constraints and foreign keys, insert
every entity collection in dependency order, and build the indexes - all in a
single transaction. Any failure rolls the store back to its pre-run state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if ingestData != "" {
			cfg.DataPath = ingestData
		}
		if ingestDB != "" {
			cfg.Database.Path = ingestDB
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if err := cfg.EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to create directories: %w", err)
		}

		return ingestDataset(cfg)
	},
}

func ingestDataset(cfg *config.Config) error {
	color.Cyan("🗄️  Ingesting %s into %s...", cfg.DataPath, cfg.Database.Path)

	l, err := loader.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer l.Close()

	if err := l.Load(context.Background(), cfg.DataPath); err != nil {
		if errors.Is(err, dataset.ErrSourceNotFound) {
			color.Red("❌ Missing interchange file, nothing was loaded")
		} else {
			color.Red("❌ Load failed, store rolled back")
		}
		return err
	}

	color.Green("✅ Ingestion committed")
	return nil
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringVar(&ingestData, "data", "", "Override the CSV directory")
	ingestCmd.Flags().StringVar(&ingestDB, "db", "", "Override the SQLite database path")
}
