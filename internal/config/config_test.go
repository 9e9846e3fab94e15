package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Seed != 42 {
		t.Errorf("Expected default seed 42, got %d", cfg.Seed)
	}
	if cfg.DataPath != "data" {
		t.Errorf("Expected data_path to be 'data', got '%s'", cfg.DataPath)
	}
	if cfg.Database.Path != filepath.Join("data", "ecom.db") {
		t.Errorf("Expected database path to default under data_path, got '%s'", cfg.Database.Path)
	}
	if cfg.AnchorDate != DefaultAnchor {
		t.Errorf("Expected anchor_date to be '%s', got '%s'", DefaultAnchor, cfg.AnchorDate)
	}
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	tempDir, err := os.MkdirTemp("", "ecomforge-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	configPath := filepath.Join(tempDir, "ecomforge.config.json")
	content := `{"seed": 7, "data_path": "out", "database": {"path": "out/shop.db"}}`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", cfg.Seed)
	}
	if cfg.DataPath != "out" {
		t.Errorf("Expected data_path 'out', got '%s'", cfg.DataPath)
	}
	if cfg.Database.Path != "out/shop.db" {
		t.Errorf("Expected database path 'out/shop.db', got '%s'", cfg.Database.Path)
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{Seed: 42, DataPath: "data", AnchorDate: DefaultAnchor, Database: Database{Path: "data/ecom.db"}}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid config to pass, got %v", err)
	}

	cases := map[string]*Config{
		"negative seed": {Seed: -1, DataPath: "data", AnchorDate: DefaultAnchor, Database: Database{Path: "x.db"}},
		"empty data":    {Seed: 42, DataPath: "", AnchorDate: DefaultAnchor, Database: Database{Path: "x.db"}},
		"empty db":      {Seed: 42, DataPath: "data", AnchorDate: DefaultAnchor, Database: Database{Path: ""}},
		"bad anchor":    {Seed: 42, DataPath: "data", AnchorDate: "yesterday", Database: Database{Path: "x.db"}},
	}
	for name, cfg := range cases {
		if err := cfg.Validate(); err == nil {
			t.Errorf("Case %s: expected validation failure", name)
		}
	}
}

func TestAnchor(t *testing.T) {
	cfg := &Config{AnchorDate: "2024-03-01T00:00:00Z"}
	anchor, err := cfg.Anchor()
	if err != nil {
		t.Fatalf("Anchor failed: %v", err)
	}
	if anchor.Year() != 2024 || anchor.Month() != 3 {
		t.Errorf("Unexpected anchor: %v", anchor)
	}
}

func TestEnsureDirectories(t *testing.T) {
	tempDir := t.TempDir()
	cfg := &Config{
		Seed:       42,
		DataPath:   filepath.Join(tempDir, "data"),
		AnchorDate: DefaultAnchor,
		Database:   Database{Path: filepath.Join(tempDir, "db", "ecom.db")},
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	for _, dir := range []string{cfg.DataPath, filepath.Dir(cfg.Database.Path)} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			t.Errorf("Directory %s was not created", dir)
		}
	}
}
