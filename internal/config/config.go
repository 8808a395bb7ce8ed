// Package config loads and saves the .vbump.yaml configuration file, which
// lists the source files whose embedded versions are reconciled and bumped.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/lcrosetto/vbump/internal/core"
	"github.com/lcrosetto/vbump/internal/source"
)

// DefaultConfigFile is the configuration file looked up in the working
// directory.
const DefaultConfigFile = ".vbump.yaml"

// ConfigFilePerm defines file permissions for the config file (owner
// read/write only).
const ConfigFilePerm = core.PermOwnerRW

// SourceConfig describes one version source file.
type SourceConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format,omitempty"`
	Field  string `yaml:"field,omitempty"`
}

// Config is the main configuration structure for vbump.
type Config struct {
	Sources []SourceConfig `yaml:"sources"`
}

// Default returns the configuration used when no config file exists:
// the packaging descriptor and the README in the working directory.
func Default() *Config {
	return &Config{
		Sources: []SourceConfig{
			{Path: "setup.py"},
			{Path: "README.md"},
		},
	}
}

// FileConfigs converts the configured sources into source.FileConfig values
// with formats inferred where unset.
func (c *Config) FileConfigs() []source.FileConfig {
	out := make([]source.FileConfig, len(c.Sources))
	for i, s := range c.Sources {
		out[i] = source.FileConfig{
			Path:   s.Path,
			Format: source.Format(s.Format),
			Field:  s.Field,
		}.Normalize()
	}
	return out
}

// Validate checks that every source has a path and a known format.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("config has no sources")
	}
	for i, s := range c.Sources {
		if s.Path == "" {
			return fmt.Errorf("source %d has no path", i)
		}
		if s.Format != "" && !source.Format(s.Format).IsValid() {
			return fmt.Errorf("source %q has invalid format %q", s.Path, s.Format)
		}
	}
	return nil
}

// LoadConfigFn loads the configuration. It is a variable so tests can
// substitute a failing or canned loader. A nil Config with a nil error means
// no config file was found and the caller should fall back to Default.
var LoadConfigFn = loadConfig

func loadConfig() (*Config, error) {
	path := DefaultConfigFile

	// Highest priority: ENV variable pointing at an alternate config file.
	if envPath := os.Getenv("VBUMP_CONFIG"); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid VBUMP_CONFIG: path traversal not allowed, use absolute path instead")
		}
		path = cleanPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // fallback to default
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
