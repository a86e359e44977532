package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// ReadConfig reads the configuration from the path. Files ending in .yaml
// or .yml are parsed as YAML, anything else as JSON with comments and
// trailing commas. A missing file yields the default configuration.
func ReadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		c := &Config{}
		if err := c.finish(); err != nil {
			return nil, err
		}
		c.path = path
		return c, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	var c *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c, err = ParseYAMLConfig(b)
	default:
		c, err = ParseConfig(b)
	}
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	c.path = path
	return c, nil
}

// ParseConfig returns config from JSON bytes. Comments and trailing
// commas are allowed.
func ParseConfig(b []byte) (*Config, error) {
	var c Config

	std, err := hujson.Standardize(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}
	if err := json.Unmarshal(std, &c); err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}

	if err := c.finish(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseYAMLConfig returns config from YAML bytes.
func ParseYAMLConfig(b []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	if err := c.finish(); err != nil {
		return nil, err
	}
	return &c, nil
}

// finish applies the environment overrides, the defaults, and validates.
func (c *Config) finish() error {
	c.ApplyEnv()

	if err := c.Default(); err != nil {
		return errors.Wrap(err, "defaulting")
	}

	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "validating")
	}
	return nil
}
