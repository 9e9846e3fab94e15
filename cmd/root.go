package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.3"
)

var rootCmd = &cobra.Command{
	Use:   "ecomforge",
	Short: "Synthesize and ingest a referentially consistent e-commerce dataset",
	Long: `
ecomforge builds a deterministic synthetic e-commerce dataset (products,
users, orders, order items, reviews) and loads it into a constraint-enforcing
SQLite store.

The pipeline has two stages:
- generate: seed-driven, cross-entity-consistent data written as CSV files
- ingest:   ordered, transactional load with schema, foreign keys and indexes

Equal seeds produce byte-identical datasets.`,
	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			cmd.Printf("ecomforge version %s\n", Version)
			return
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./ecomforge.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("ecomforge.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
