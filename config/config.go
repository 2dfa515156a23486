// Package config loads the YAML run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full run configuration.
type Config struct {
	Data     DataConfig `yaml:"data"`
	Currency string     `yaml:"currency"`
	TopN     int        `yaml:"top_n"`
	Auth     AuthConfig `yaml:"auth"`
	LogLevel string     `yaml:"log_level"`
}

// DataConfig points at the dataset files.
type DataConfig struct {
	Branches string `yaml:"branches"`
	Sales    string `yaml:"sales"`
	Products string `yaml:"products"`
	Snapshot string `yaml:"snapshot"`
}

// AuthConfig holds the single-user login credentials.
type AuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Branches: "data/branches.csv",
			Sales:    "data/sales.csv",
			Products: "data/products.csv",
		},
		Currency: "LKR",
		TopN:     10,
		LogLevel: "info",
	}
}

// Load reads a YAML config file, filling unset fields from Default.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.Data.Branches == "" || c.Data.Sales == "" || c.Data.Products == "" {
		if c.Data.Snapshot == "" {
			return fmt.Errorf("either all three data files or a snapshot must be set")
		}
	}
	return nil
}
