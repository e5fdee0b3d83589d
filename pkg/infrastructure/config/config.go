package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml", "csv"}

// Config holds settings for a simulation run. The zero-flag defaults
// reproduce the plain order-summary output.
type Config struct {
	Seed        int64  `yaml:"seed"`
	MinQuantity int64  `yaml:"min_quantity"`
	MaxQuantity int64  `yaml:"max_quantity"`
	MaxOrders   int    `yaml:"max_orders"`
	Format      string `yaml:"format"`
	LogLevel    string `yaml:"log_level"`
	MetricsFile string `yaml:"metrics_file"`
	OrdersFile  string `yaml:"orders_file"` // replay orders from CSV instead of generating them
	Summary     bool   `yaml:"summary"`
}

// Default returns the configuration used when no file or flags are given
func Default() Config {
	return Config{
		MinQuantity: 1,
		MaxQuantity: 5,
		Format:      "text",
		LogLevel:    "warn",
	}
}

// Load reads a YAML file on top of Default. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	if c.MinQuantity < 1 {
		return errors.Errorf("min_quantity must be at least 1, got %d", c.MinQuantity)
	}
	if c.MaxQuantity < c.MinQuantity {
		return errors.Errorf("max_quantity %d is below min_quantity %d", c.MaxQuantity, c.MinQuantity)
	}
	if c.MaxOrders < 0 {
		return errors.Errorf("max_orders cannot be negative, got %d", c.MaxOrders)
	}
	if !isValidFormat(c.Format) {
		return errors.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	return nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
