// Package config loads the fsmctl CLI's optional YAML configuration,
// mirroring projectdiscovery-alterx's config.go/internal/runner/config.go
// shape (a small struct round-tripped through github.com/goccy/go-yaml).
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds named alphabets and patterns so repeated fsmctl invocations
// don't need to respecify them on the command line.
type Config struct {
	Alphabets map[string][]string `yaml:"alphabets"`
	Patterns  map[string][]string `yaml:"patterns"`
}

// NewConfig reads a Config from a YAML file at filePath.
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample writes a sample config file with a couple of example
// entries to filePath.
func GenerateSample(filePath string) error {
	cfg := Config{
		Alphabets: map[string][]string{"binary": {"0", "1"}},
		Patterns:  map[string][]string{"double-zero": {"0", "0"}},
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
