package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/log"
)

type Config struct {
	// Debug enables the debug overlay at startup
	Debug  bool         `toml:"debug"`
	Window WindowConfig `toml:"window"`
	Log    LogConfig    `toml:"log"`
	Game   GameConfig   `toml:"game"`
}

type WindowConfig struct {
	// Width and Height are the logical size of the field; the window is scaled to fit
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
	// TPS is the number of updates per second
	TPS int `toml:"tps"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type GameConfig struct {
	// Seed seeds the ball direction draws; 0 picks a random seed
	Seed uint64 `toml:"seed"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     int(constants.DefaultFieldWidth),
			Height:    int(constants.DefaultFieldHeight),
			Title:     "Pong",
			Resizable: true,
			TPS:       60,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s does not exist", path)
		}
		return nil, fmt.Errorf("failed to stat config file: %v", err)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file: %v", err)
	}
	for _, key := range md.Undecoded() {
		log.Warn("Unknown config key %s in %s", key.String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %v", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration can run a game.
func (c *Config) Validate() error {
	minWidth := int(2 * (constants.PaddleWidth + constants.Padding))
	if c.Window.Width < minWidth {
		return fmt.Errorf("window width must be at least %d, got %d", minWidth, c.Window.Width)
	}
	if c.Window.Height < int(constants.PaddleHeight) {
		return fmt.Errorf("window height must be at least %d, got %d", int(constants.PaddleHeight), c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.Window.TPS)
	}
	if _, err := log.ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	return nil
}
