package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTier is the storage tier raw data is ingested from.
const DefaultTier = "locker"

// Config holds catalog and storage settings.
type Config struct {
	Database DatabaseConfig `yaml:"database" json:"database"`
	Storage  StorageConfig  `yaml:"storage" json:"storage"`
}

// DatabaseConfig configures the catalog SQLite database.
type DatabaseConfig struct {
	DSN   string `yaml:"dsn" json:"dsn"`
	Debug bool   `yaml:"debug" json:"debug"`
}

// StorageConfig maps storage tier names to mount locations.
type StorageConfig struct {
	DefaultTier string                `yaml:"default_tier" json:"default_tier"`
	Tiers       map[string]TierConfig `yaml:"tiers" json:"tiers"`
}

// TierConfig describes one storage tier: where it is mounted locally
// and the canonical (global) root recorded in the catalog.
type TierConfig struct {
	LocalRoot  string `yaml:"local_root" json:"local_root"`
	GlobalRoot string `yaml:"global_root" json:"global_root"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Database: DatabaseConfig{DSN: "catalog.db"},
		Storage:  StorageConfig{DefaultTier: DefaultTier},
	}
}

// Load parses YAML bytes into a Config and applies defaults.
func Load(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	cfg = applyDefaults(cfg)

	for name, tier := range cfg.Storage.Tiers {
		if tier.LocalRoot == "" {
			return Config{}, fmt.Errorf("storage tier %s: local_root is required", name)
		}
		if tier.GlobalRoot == "" {
			return Config{}, fmt.Errorf("storage tier %s: global_root is required", name)
		}
	}

	return cfg, nil
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Load(data)
}

// Tier returns the named storage tier config or an error if missing.
func (c Config) Tier(name string) (TierConfig, error) {
	if c.Storage.Tiers == nil {
		return TierConfig{}, fmt.Errorf("no storage tiers configured")
	}
	tier, ok := c.Storage.Tiers[name]
	if !ok {
		return TierConfig{}, fmt.Errorf("storage tier %s not found", name)
	}
	return tier, nil
}

func applyDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = def.Database.DSN
	}
	if cfg.Storage.DefaultTier == "" {
		cfg.Storage.DefaultTier = def.Storage.DefaultTier
	}
	return cfg
}
