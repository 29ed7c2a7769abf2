// Package config handles loading, merging, and validation of EnvForge
// configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// envPrefix is the prefix for environment variable overrides.
const envPrefix = "ENVFORGE"

// Config is the active EnvForge configuration.
type Config struct {
	// CIIndicators is the detection table for continuous-integration
	// environments: if any of these environment variables is set to a
	// non-empty value, local-only variables are skipped.
	CIIndicators []string `yaml:"ci_indicators"`

	// SkipDirectives lists directive types the resolution pipeline should
	// skip outright, leaving the variable unresolved without a warning.
	SkipDirectives []string `yaml:"skip_directives"`

	// DeprecatedVars names variables that are configured as retired: when
	// present in an actual env file they are reported as deprecated rather
	// than extra.
	DeprecatedVars []string `yaml:"deprecated_vars"`

	// Plugins controls the bundled plugins.
	Plugins PluginsConfig `yaml:"plugins"`
}

// PluginsConfig enables or disables the bundled plugins.
type PluginsConfig struct {
	// Expr enables the expression value source (@expr directives).
	Expr bool `yaml:"expr"`

	// Keyring enables the OS keyring value source (@keyring directives).
	Keyring KeyringConfig `yaml:"keyring"`
}

// KeyringConfig configures the keyring value source.
type KeyringConfig struct {
	Enabled bool `yaml:"enabled"`

	// Service is the keyring service name secrets are stored under.
	Service string `yaml:"service"`
}

// Load reads the configuration from path, or from the default XDG location
// when path is empty. A missing file yields the built-in defaults.
// Priority: ENV > user config file > defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		if custom := os.Getenv(envPrefix + "_CONFIG"); custom != "" {
			path = custom
		} else {
			path = DefaultPath()
		}
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Config file is optional.
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvironmentOverrides(cfg)
	MergeDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultPath returns the XDG-compliant config file path.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "envforge", "config.yaml")
}

// CIDetected reports whether any configured CI indicator variable is set.
func (c *Config) CIDetected() bool {
	for _, name := range c.CIIndicators {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// SkipsDirective reports whether the directive type is configured to be skipped.
func (c *Config) SkipsDirective(directiveType string) bool {
	for _, t := range c.SkipDirectives {
		if t == directiveType {
			return true
		}
	}
	return false
}

// IsDeprecated reports whether the variable name is configured as retired.
func (c *Config) IsDeprecated(name string) bool {
	for _, n := range c.DeprecatedVars {
		if n == name {
			return true
		}
	}
	return false
}
