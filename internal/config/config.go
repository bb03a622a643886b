package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file kept at the root of the data directory.
const FileName = "fdkeep.yaml"

// VaultFileName is the encrypted vault file kept next to the config.
const VaultFileName = "vault.fdk"

// Config represents the top-level fdkeep.yaml configuration.
type Config struct {
	Owner   string        `yaml:"owner"`
	Display DisplayConfig `yaml:"display"`
	Git     GitConfig     `yaml:"git"`
}

// DisplayConfig controls output formatting.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// GitConfig controls optional git snapshots of the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a fdkeep.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data dir.
// Snapshots default off; the vault file is already the durable copy.
func Default(owner string) *Config {
	return &Config{
		Owner: owner,
		Display: DisplayConfig{
			Currency: "NRs",
		},
		Git: GitConfig{
			AutoCommit: false,
		},
	}
}

// Path returns the config file location inside dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// VaultPath returns the vault file location inside dataDir.
func VaultPath(dataDir string) string {
	return filepath.Join(dataDir, VaultFileName)
}
