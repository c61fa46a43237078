// Package config reads and writes the ausgabe.yaml project configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file name.
const FileName = "ausgabe.yaml"

// Config represents the top-level ausgabe.yaml configuration.
type Config struct {
	Data      DataConfig      `yaml:"data"`
	Statement StatementConfig `yaml:"statement"`
	Git       GitConfig       `yaml:"git"`
}

// DataConfig locates the persisted state.
type DataConfig struct {
	Dir            string `yaml:"dir"`             // relative to project root
	CategoriesFile string `yaml:"categories_file"` // categorization rules YAML
}

// StatementConfig controls statement parsing.
type StatementConfig struct {
	Format       string `yaml:"format"`                  // parser registry key
	FallbackYear int    `yaml:"fallback_year,omitempty"` // for statements without NN/YYYY
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads an ausgabe.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir:            "data",
			CategoriesFile: "categories.yaml",
		},
		Statement: StatementConfig{
			Format: "volksbank",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "AusgabeAnalyst",
			AuthorEmail: "ausgabe@localhost",
		},
	}
}
