// Package config loads CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// DefaultFileName is searched in the working directory and the user config dir.
const DefaultFileName = "config.yaml"

// localFileName is the per-project override in the working directory.
const localFileName = ".md2docx.yaml"

// Config holds all configuration for document generation.
type Config struct {
	Format  string       `yaml:"format"`  // "docx", "html", "pdf" (default: "docx")
	Math    MathConfig   `yaml:"math"`    // math parsing flags
	Style   StyleConfig  `yaml:"style"`   // post-generation styling
	Output  OutputConfig `yaml:"output"`  // output destination
	Timeout string       `yaml:"timeout"` // Go duration string (default: "60s")
}

// MathConfig defines which math syntaxes the converter parses.
type MathConfig struct {
	Dollar    bool `yaml:"dollar"`    // $…$ and $$…$$
	Backslash bool `yaml:"backslash"` // \(…\) and \[…\]
}

// StyleConfig defines post-generation style enhancement options.
type StyleConfig struct {
	Enabled bool `yaml:"enabled"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // default output directory (empty = same as input)
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Format:  "docx",
		Math:    MathConfig{Dollar: true, Backslash: true},
		Style:   StyleConfig{Enabled: true},
		Timeout: "60s",
	}
}

// ParseTimeout returns the configured timeout as a duration.
func (c Config) ParseTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 60 * time.Second, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, c.Timeout)
	}
	return d, nil
}

// SearchPaths returns the config locations in resolution order.
func SearchPaths() []string {
	paths := []string{localFileName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "go-md2docx", DefaultFileName))
	}
	return paths
}

// Load resolves and parses the configuration. An explicit path must exist;
// otherwise the search paths are tried in order and defaults are returned
// when none is present.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		if !fileExists(explicitPath) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, explicitPath)
		}
		return parseFile(explicitPath)
	}

	for _, p := range SearchPaths() {
		if fileExists(p) {
			return parseFile(p)
		}
	}
	return Default(), nil
}

func parseFile(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own flag or home dir
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
