package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileNames lists the file names probed during discovery, in order.
//
//nolint:gochecknoglobals // Shared constant list for discovery
var ConfigFileNames = []string{".taglint.yaml", ".taglint.yml", "taglint.yaml"}

// ErrNoConfigFile indicates that discovery found no configuration file.
var ErrNoConfigFile = errors.New("no config file found")

// LoadYAML reads and decodes a YAML config file.
// Unknown top-level keys are rejected so typos surface immediately.
func LoadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := NewConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.SeverityDefault != "" && !Severity(cfg.SeverityDefault).IsValid() {
		return nil, fmt.Errorf("config %s: invalid severity_default %q", path, cfg.SeverityDefault)
	}

	return cfg, nil
}

// Discover searches workDir and its ancestors for a config file.
// Returns the path of the first match, or ErrNoConfigFile.
func Discover(workDir string) (string, error) {
	dir := workDir
	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoConfigFile
		}
		dir = parent
	}
}

// Load resolves the effective configuration: an explicit path when given,
// otherwise discovery from workDir, otherwise defaults.
func Load(explicitPath, workDir string) (*Config, string, error) {
	if explicitPath != "" {
		cfg, err := LoadYAML(explicitPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, explicitPath, nil
	}

	path, err := Discover(workDir)
	if errors.Is(err, ErrNoConfigFile) {
		return NewConfig(), "", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := LoadYAML(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// SaveYAML writes a config file with the given content.
func SaveYAML(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
