// Package config loads game settings from a TOML file layered over defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-rogue/constants"
	"github.com/lixenwraith/vi-rogue/mapgen"
)

// ErrInvalidConfig is returned when a loaded value is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete game configuration
type Config struct {
	Map       MapConfig       `toml:"map"`
	Player    PlayerConfig    `toml:"player"`
	Occupants OccupantsConfig `toml:"occupants"`
	Audio     AudioConfig     `toml:"audio"`
	Web       WebConfig       `toml:"web"`
}

// MapConfig holds level generation parameters
type MapConfig struct {
	Width       int   `toml:"width"`
	Height      int   `toml:"height"`
	MaxRooms    int   `toml:"max_rooms"`
	MinSize     int   `toml:"min_size"`
	MaxSize     int   `toml:"max_size"`
	MaxAttempts int   `toml:"max_attempts"`
	Seed        int64 `toml:"seed"`
}

// PlayerConfig holds player parameters
type PlayerConfig struct {
	ViewRange int `toml:"view_range"`
}

// OccupantsConfig controls monsters spawned in rooms after the first
type OccupantsConfig struct {
	Count     int `toml:"count"`
	ViewRange int `toml:"view_range"`
}

// AudioConfig toggles sound cues
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// WebConfig configures the optional web front-end
type WebConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Map: MapConfig{
			Width:       constants.MapWidth,
			Height:      constants.MapHeight,
			MaxRooms:    constants.MaxRooms,
			MinSize:     constants.RoomMinSize,
			MaxSize:     constants.RoomMaxSize,
			MaxAttempts: constants.RoomPlacementAttempts,
		},
		Player: PlayerConfig{
			ViewRange: constants.PlayerViewRange,
		},
		Occupants: OccupantsConfig{
			Count:     constants.MaxOccupants,
			ViewRange: constants.MonsterViewRange,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Web: WebConfig{
			Addr: constants.WebAddr,
		},
	}
}

// Load reads path over the defaults. An empty or missing path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read %s: %w", path, err)
	}

	cfg, err := decode(string(data))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults
func Parse(data string) (Config, error) {
	return decode(data)
}

// decode layers data over the defaults, rejects unknown keys and validates
func decode(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown key %q: %w", undecoded[0].String(), ErrInvalidConfig)
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the generator or systems cannot use
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig))
		}
	}

	check(c.Map.Width > 0 && c.Map.Height > 0, "map size %dx%d must be positive", c.Map.Width, c.Map.Height)
	check(c.Map.MaxRooms >= 0, "map.max_rooms %d must not be negative", c.Map.MaxRooms)
	check(c.Map.MinSize >= 1, "map.min_size %d must be at least 1", c.Map.MinSize)
	check(c.Map.MaxSize >= c.Map.MinSize, "map.max_size %d below min_size %d", c.Map.MaxSize, c.Map.MinSize)
	check(c.Map.MaxAttempts >= 0, "map.max_attempts %d must not be negative", c.Map.MaxAttempts)
	check(c.Player.ViewRange >= 0, "player.view_range %d must not be negative", c.Player.ViewRange)
	check(c.Occupants.Count >= 0, "occupants.count %d must not be negative", c.Occupants.Count)
	check(c.Occupants.ViewRange >= 0, "occupants.view_range %d must not be negative", c.Occupants.ViewRange)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %.2f outside [0,1]", c.Audio.Volume)

	return errors.Join(errs...)
}

// Generator converts the map section into generator parameters
func (c Config) Generator() mapgen.Config {
	return mapgen.Config{
		Width:       c.Map.Width,
		Height:      c.Map.Height,
		MaxRooms:    c.Map.MaxRooms,
		MinSize:     c.Map.MinSize,
		MaxSize:     c.Map.MaxSize,
		MaxAttempts: c.Map.MaxAttempts,
		Seed:        c.Map.Seed,
	}
}

// Encode writes c as TOML
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
