package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero container", func(c *Config) { c.Geometry.MaxWidth = 0 }},
		{"huge border fraction", func(c *Config) { c.Geometry.BorderFraction = 0.9 }},
		{"tear band too wide", func(c *Config) { c.Silhouette.TearFraction = 0.5 }},
		{"too few segments", func(c *Config) { c.Silhouette.MinSegmentsPerEdge = 1 }},
		{"opacity out of range", func(c *Config) { c.Shadow.MaxOpacity = 1.5 }},
		{"inverted fiber lengths", func(c *Config) { c.Texture.FiberMinLength = 20 }},
		{"inverted periods", func(c *Config) { c.Motion.SlowPeriod = 1 }},
		{"bad quality", func(c *Config) { c.Output.Quality = 0 }},
	}

	for _, tt := range tests {
		c := Default()
		tt.mutate(c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	c := Default()
	c.Geometry.MaxWidth = 1234
	c.Motion.MaxAmplitude = 7
	if err := c.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if loaded.Geometry.MaxWidth != 1234 {
		t.Errorf("MaxWidth = %d, want 1234", loaded.Geometry.MaxWidth)
	}
	if loaded.Motion.MaxAmplitude != 7 {
		t.Errorf("MaxAmplitude = %v, want 7", loaded.Motion.MaxAmplitude)
	}
	if err := loaded.Validate(); err != nil {
		t.Errorf("loaded config should validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
