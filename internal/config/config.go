// Package config holds the fixed gameplay constants and the presentation
// settings that are loaded from a TOML file at startup.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/BurntSushi/toml"
)

// Playfield and timing
const (
	ScreenWidth  = 750
	ScreenHeight = 750
	FPS          = 60
)

// Session rules. These are not configurable.
const (
	InitialLives      = 5
	PlayerHealth      = 100
	PlayerStartX      = 300
	PlayerStartY      = 630
	InitialWaveLength = 5
	WaveIncrement     = 5

	PlayerVelocity = 8
	EnemyVelocity  = 2
	LaserVelocity  = 8

	LaserDamage     = 10
	CollisionDamage = 20

	EnemyFireChance  = 2 * 60 // one shot attempt in this many frames
	LostGraceSeconds = 3
	HealthBarMargin  = 15 // extra room kept below the player for the health bar

	StarCount = 100
)

// EnvConfigPath names the environment variable that overrides the config file location.
const EnvConfigPath = "SPACESHOOTER_CONFIG"

// DefaultConfigPath is used when EnvConfigPath is unset.
const DefaultConfigPath = "config.toml"

// Config holds presentation settings. Gameplay is fixed and lives in the
// constants above.
type Config struct {
	Window WindowConfig `toml:"window"`
	Assets AssetsConfig `toml:"assets"`
	Audio  AudioConfig  `toml:"audio"`
}

// WindowConfig controls the OS window.
type WindowConfig struct {
	Title string  `toml:"title"`
	Scale float64 `toml:"scale"` // window size multiplier over the logical screen
}

// AssetsConfig locates sprites, background and sounds.
type AssetsConfig struct {
	Dir        string `toml:"dir"`
	Background string `toml:"background"`
	LaserSound string `toml:"laser_sound"`
}

// AudioConfig controls the laser cue.
type AudioConfig struct {
	Volume float64 `toml:"volume"` // 0..1
	Muted  bool    `toml:"muted"`
}

// DefaultConfig returns the settings the game ships with.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title: "Space Shooter",
			Scale: 1.0,
		},
		Assets: AssetsConfig{
			Dir:        "assets",
			Background: "background.png",
			LaserSound: "pew.mp3",
		},
		Audio: AudioConfig{
			Volume: 0.5,
		},
	}
}

// LoadConfig loads settings from a TOML file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Printf("Warning: unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.normalize()
	return cfg, nil
}

// WindowSize returns the OS window size for the configured scale.
func (c *Config) WindowSize() (width, height int) {
	return int(ScreenWidth * c.Window.Scale), int(ScreenHeight * c.Window.Scale)
}

// EffectiveVolume returns the cue volume, zero when muted.
func (c *Config) EffectiveVolume() float64 {
	if c.Audio.Muted {
		return 0
	}
	return c.Audio.Volume
}

func (c *Config) normalize() {
	if c.Window.Scale <= 0 {
		c.Window.Scale = 1.0
	}
	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	}
	if c.Audio.Volume > 1 {
		c.Audio.Volume = 1
	}
	if c.Assets.Dir == "" {
		c.Assets.Dir = "."
	}
}
