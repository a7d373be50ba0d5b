// Package config handles configuration loading and shared data structures.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/woozymasta/chinacrs"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the processor.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatGeoJSON = "geojson"
)

// DefaultPrecision is the number of decimals written in text output.
const DefaultPrecision = 6

// ErrInvalidFormat is returned for an unsupported output format.
var ErrInvalidFormat = errors.New("invalid output format")

// Config represents the root configuration file structure.
type Config struct {
	From      *chinacrs.System `yaml:"from,omitempty" json:"from,omitempty"`
	To        *chinacrs.System `yaml:"to,omitempty" json:"to,omitempty"`
	Format    string           `yaml:"format,omitempty" json:"format,omitempty"`
	Points    []Point          `yaml:"points,omitempty" json:"points,omitempty"`
	Precision int              `yaml:"precision,omitempty" json:"precision,omitempty"`
	Exact     bool             `yaml:"exact,omitempty" json:"exact,omitempty"`
}

// Point is a named coordinate converted on every run.
type Point struct {
	Name string  `yaml:"name,omitempty" json:"name,omitempty"`
	Lat  float64 `yaml:"lat" json:"lat"`
	Lon  float64 `yaml:"lon" json:"lon"`
}

// Default returns a configuration converting WGS-84 to GCJ-02 as text.
func Default() *Config {
	cfg := &Config{}
	cfg.Normalize()
	return cfg
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadOptional is Load that returns Default when the file does not exist.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Normalize fills unset fields with defaults.
func (c *Config) Normalize() {
	if c.From == nil {
		from := chinacrs.WGS84
		c.From = &from
	}
	if c.To == nil {
		to := chinacrs.GCJ02
		c.To = &to
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.Precision <= 0 {
		c.Precision = DefaultPrecision
	}
}

// Validate checks the normalized configuration.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML, FormatGeoJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}

	return nil
}
