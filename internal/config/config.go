// Package config holds the tunable constants of the whole rendering
// pipeline in one JSON-loadable structure.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akshaye1/Artifex-Canvas/pkg/compositor"
	"github.com/akshaye1/Artifex-Canvas/pkg/geometry"
	"github.com/akshaye1/Artifex-Canvas/pkg/motion"
	"github.com/akshaye1/Artifex-Canvas/pkg/shadow"
	"github.com/akshaye1/Artifex-Canvas/pkg/silhouette"
	"github.com/akshaye1/Artifex-Canvas/pkg/texture"
)

// Config aggregates the per-component tuning constants plus output defaults.
type Config struct {
	Geometry   geometry.Config   `json:"geometry"`
	Silhouette silhouette.Config `json:"silhouette"`
	Shadow     shadow.Config     `json:"shadow"`
	Texture    texture.Config    `json:"texture"`
	Compositor compositor.Config `json:"compositor"`
	Motion     motion.Config     `json:"motion"`
	Output     OutputConfig      `json:"output"`
}

// OutputConfig holds export defaults.
type OutputConfig struct {
	Format   string `json:"format"` // "", png, jpeg or webp; "" keeps the upload format
	Quality  int    `json:"quality"`
	Lossless bool   `json:"lossless"`
	Dir      string `json:"dir"`
	Suffix   string `json:"suffix"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Geometry:   geometry.DefaultConfig(),
		Silhouette: silhouette.DefaultConfig(),
		Shadow:     shadow.DefaultConfig(),
		Texture:    texture.DefaultConfig(),
		Compositor: compositor.DefaultConfig(),
		Motion:     motion.DefaultConfig(),
		Output: OutputConfig{
			Quality: 90,
			Dir:     "./output",
			Suffix:  "_torn",
		},
	}
}

// LoadFromFile loads configuration from a JSON file. Fields absent from the
// file keep their defaults.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a JSON file.
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Geometry.MaxWidth < 1 || c.Geometry.MaxHeight < 1 {
		return fmt.Errorf("geometry.max_width and geometry.max_height must be positive")
	}

	if c.Geometry.BorderFraction <= 0 || c.Geometry.BorderFraction > 0.5 {
		return fmt.Errorf("geometry.border_fraction must be in (0,0.5]")
	}

	if c.Silhouette.TearFraction+c.Silhouette.CutoutFraction >= 0.5 {
		return fmt.Errorf("silhouette.tear_fraction plus cutout_fraction must stay below 0.5 so tears fit inside the border")
	}

	if c.Silhouette.MinSegmentsPerEdge < 3 {
		return fmt.Errorf("silhouette.min_segments_per_edge must be at least 3")
	}

	if c.Shadow.MaxOpacity < 0 || c.Shadow.MaxOpacity > 1 {
		return fmt.Errorf("shadow.max_opacity must be between 0 and 1")
	}

	if c.Texture.FiberMinLength > c.Texture.FiberMaxLength {
		return fmt.Errorf("texture.fiber_min_length must not exceed fiber_max_length")
	}

	if c.Motion.SlowPeriod <= c.Motion.FastPeriod {
		return fmt.Errorf("motion.slow_period must exceed motion.fast_period")
	}

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	return nil
}

// GetConfigPath returns the default configuration file path.
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "artifex", "config.json")
}
