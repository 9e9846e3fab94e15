package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DefaultAnchor is the fixed reference "now" for date windows. Pinning it
// instead of using the wall clock keeps equal-seed runs byte-identical.
const DefaultAnchor = "2025-06-01T00:00:00Z"

type Config struct {
	Seed       int64    `json:"seed" mapstructure:"seed"`
	DataPath   string   `json:"data_path" mapstructure:"data_path"`
	AnchorDate string   `json:"anchor_date" mapstructure:"anchor_date"`
	Database   Database `json:"database" mapstructure:"database"`
}

type Database struct {
	Path string `json:"path" mapstructure:"path"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	if cfg.DataPath == "" {
		cfg.DataPath = "data"
	}
	if cfg.AnchorDate == "" {
		cfg.AnchorDate = DefaultAnchor
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = filepath.Join(cfg.DataPath, "ecom.db")
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Seed <= 0 {
		return fmt.Errorf("seed must be positive, got %d", c.Seed)
	}
	if c.DataPath == "" {
		return fmt.Errorf("data_path cannot be empty")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if _, err := c.Anchor(); err != nil {
		return err
	}
	return nil
}

// Anchor parses the configured anchor date.
func (c *Config) Anchor() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, c.AnchorDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid anchor_date %q: %w", c.AnchorDate, err)
	}
	return t, nil
}

func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.DataPath,
		filepath.Dir(c.Database.Path),
	}

	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
