// Package config loads glazekb settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings. Zero values are replaced by defaults.
type Config struct {
	// DataDir overrides the bundled datasets with files from disk.
	DataDir     string `yaml:"data_dir"`
	Database    string `yaml:"database"`
	LogMode     string `yaml:"log_mode"`
	LoadWorkers int    `yaml:"load_workers"`
}

const (
	DefaultDatabase    = "glazekb.db"
	DefaultLogMode     = "dev"
	DefaultLoadWorkers = 4
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Database:    DefaultDatabase,
		LogMode:     DefaultLogMode,
		LoadWorkers: DefaultLoadWorkers,
	}
}

// Load reads path. An empty path yields Default(); a named file that does not
// exist is an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, rejecting unknown keys, and fills in defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if cfg.LoadWorkers < 0 {
		return Config{}, fmt.Errorf("load_workers must not be negative, got %d", cfg.LoadWorkers)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	if c.LogMode == "" {
		c.LogMode = DefaultLogMode
	}
	if c.LoadWorkers == 0 {
		c.LoadWorkers = DefaultLoadWorkers
	}
}
