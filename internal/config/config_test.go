package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}

	def := DefaultConfig()
	if *cfg != *def {
		t.Errorf("Expected defaults %+v, got %+v", def, cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[window]
title = "Shooter"
scale = 1.5

[assets]
dir = "art"

[audio]
volume = 0.25
muted = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Window.Title != "Shooter" {
		t.Errorf("Expected title 'Shooter', got '%s'", cfg.Window.Title)
	}
	if cfg.Assets.Dir != "art" {
		t.Errorf("Expected assets dir 'art', got '%s'", cfg.Assets.Dir)
	}
	// Keys not present keep their defaults
	if cfg.Assets.Background != DefaultConfig().Assets.Background {
		t.Errorf("Expected default background, got '%s'", cfg.Assets.Background)
	}

	w, h := cfg.WindowSize()
	if w != 1125 || h != 1125 {
		t.Errorf("Expected window 1125x1125, got %dx%d", w, h)
	}
	if v := cfg.EffectiveVolume(); v != 0 {
		t.Errorf("Expected muted volume 0, got %v", v)
	}
}

func TestLoadConfigNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[window]\nscale = -2\n[audio]\nvolume = 4.0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Window.Scale != 1.0 {
		t.Errorf("Expected scale clamped to 1.0, got %v", cfg.Window.Scale)
	}
	if cfg.Audio.Volume != 1.0 {
		t.Errorf("Expected volume clamped to 1.0, got %v", cfg.Audio.Volume)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[window\ntitle ="), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected an error for malformed TOML")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SPACESHOOTER_TEST_KEY", "set")
	if got := GetEnv("SPACESHOOTER_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("Expected 'set', got '%s'", got)
	}
	if got := GetEnv("SPACESHOOTER_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("Expected 'fallback', got '%s'", got)
	}
}
