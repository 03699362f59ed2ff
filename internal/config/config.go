package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the application configuration, loaded from a TOML file. Every
// field has a playable default so the game runs without any file present.
type Config struct {
	Window WindowConfig `toml:"window"`
	Cards  CardsConfig  `toml:"cards"`
	Assets AssetsConfig `toml:"assets"`
	App    AppConfig    `toml:"app"`
}

// WindowConfig sets the fixed board size in pixels.
type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// CardsConfig sets the display card size and the vertical fan offset between
// stacked cards. All board geometry derives from these.
type CardsConfig struct {
	Width      int `toml:"width"`
	Height     int `toml:"height"`
	FanSpacing int `toml:"fan_spacing"`
}

// AssetsConfig points at the card image pack: one <name>.png per card (e.g.
// AH.png, 10S.png) plus the back image.
type AssetsConfig struct {
	Dir  string `toml:"dir"`
	Back string `toml:"back"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	LogLevel  string `toml:"log_level"`
	PrettyLog bool   `toml:"pretty_log"`
}

// DefaultConfig returns the default configuration: the classic 1000x650 board
// with 90x130 cards.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{Width: 1000, Height: 650},
		Cards:  CardsConfig{Width: 90, Height: 130, FanSpacing: 20},
		Assets: AssetsConfig{Dir: "assets", Back: "red_back.png"},
		App:    AppConfig{LogLevel: "info", PrettyLog: true},
	}
}

// Load reads the configuration from path. A missing file is not an error; the
// defaults are returned instead.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Cards.Width <= 0 || c.Cards.Height <= 0 || c.Cards.FanSpacing <= 0 {
		return fmt.Errorf("card dimensions must be positive")
	}
	return nil
}
