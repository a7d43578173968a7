// Package config loads the flat tatlam configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Environment variable overrides, applied after the config file.
const (
	EnvDBPath       = "TATLAM_DB_PATH"
	EnvTableName    = "TATLAM_TABLE_NAME"
	EnvTemplatePath = "TATLAM_TEMPLATE_PATH"
)

// Config represents the flat tatlam configuration.
type Config struct {
	DBPath       string `json:"db_path"`
	TableName    string `json:"table_name"`
	TemplatePath string `json:"template_path,omitempty"` // empty means the embedded card template
}

// Default returns the configuration used when no config file exists:
// the store under ~/.tatlam/ and the standard table name.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DBPath:    filepath.Join(home, ".tatlam", "tatlam.db"),
		TableName: "scenarios",
	}
}

// Load reads .tatlam/config.json from the specified directory, falling
// back to defaults when the file does not exist. Environment overrides
// are applied last.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, ".tatlam", "config.json")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// Save writes config.json to the directory.
func Save(dir string, cfg *Config) error {
	tatlamDir := filepath.Join(dir, ".tatlam")
	if err := os.MkdirAll(tatlamDir, 0755); err != nil {
		return fmt.Errorf("failed to create .tatlam dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(tatlamDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvTableName); v != "" {
		c.TableName = v
	}
	if v := os.Getenv(EnvTemplatePath); v != "" {
		c.TemplatePath = v
	}
}
