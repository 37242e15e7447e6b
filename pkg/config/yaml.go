package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileNames are the configuration file names searched for in the
// working directory, in priority order.
var FileNames = []string{".slidefmt.yml", ".slidefmt.yaml"}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ToYAML serializes the configuration to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadFile reads and parses the configuration at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads configuration for a run. An explicit path wins; without
// one, the working directory is searched for the known file names, and a
// default Config is returned when none exists. The second return value
// is the path the configuration was loaded from, empty for defaults.
func Discover(workDir, explicitPath string) (*Config, string, error) {
	if explicitPath != "" {
		cfg, err := LoadFile(explicitPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, explicitPath, nil
	}

	for _, name := range FileNames {
		path := filepath.Join(workDir, name)
		cfg, err := LoadFile(path)
		if err == nil {
			return cfg, path, nil
		}
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return nil, "", err
	}
	return NewConfig(), "", nil
}
