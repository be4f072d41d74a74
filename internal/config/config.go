package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Display Display `toml:"display"`
	Splash  Splash  `toml:"splash"`
	Menu    Menu    `toml:"menu"`
	About   About   `toml:"about"`
	Locale  Locale  `toml:"locale"`
	Log     Log     `toml:"log"`
}

// Display holds the window size and the logical canvas the UI is laid out
// on. The canvas is scaled to fit the window.
type Display struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	CanvasWidth  int    `toml:"canvas_width"`
	CanvasHeight int    `toml:"canvas_height"`
	Title        string `toml:"title"`
	TPS          int    `toml:"tps"`
}

type Splash struct {
	// Frames is the number of fixed updates the splash stays up.
	Frames int `toml:"frames"`
}

type Menu struct {
	ButtonWidth   float64 `toml:"button_width"`
	ButtonHeight  float64 `toml:"button_height"`
	ButtonSpacing float64 `toml:"button_spacing"`
	ButtonBorder  float64 `toml:"button_border"`
	FontSize      float64 `toml:"font_size"`
}

type About struct {
	Version       string `toml:"version"`
	LinkURL       string `toml:"link_url"`
	CopyOnFailure bool   `toml:"copy_on_failure"`
}

type Locale struct {
	Language string `toml:"language"`
}

type Log struct {
	Level string `toml:"level"`
}

func Default() *Config {
	return &Config{
		Display: Display{
			Width:        1280,
			Height:       720,
			CanvasWidth:  1920,
			CanvasHeight: 1080,
			Title:        "Corylus",
			TPS:          60,
		},
		Splash: Splash{Frames: 60},
		Menu: Menu{
			ButtonWidth:   800,
			ButtonHeight:  150,
			ButtonSpacing: 40,
			ButtonBorder:  5,
			FontSize:      70,
		},
		About: About{
			Version:       "0.1.0",
			LinkURL:       "https://twitter.com/FrancoisMockers",
			CopyOnFailure: true,
		},
		Locale: Locale{Language: "en"},
		Log:    Log{Level: "info"},
	}
}

// Load reads path on top of the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := cfg.decode(string(data)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config keys %v", undecoded)
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	switch {
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return fmt.Errorf("display size must be positive")
	case c.Display.CanvasWidth <= 0 || c.Display.CanvasHeight <= 0:
		return fmt.Errorf("display canvas size must be positive")
	case c.Display.TPS <= 0:
		return fmt.Errorf("display.tps must be positive")
	case c.Splash.Frames < 0:
		return fmt.Errorf("splash.frames must not be negative")
	case c.Menu.ButtonWidth <= 0 || c.Menu.ButtonHeight <= 0 || c.Menu.ButtonBorder <= 0:
		return fmt.Errorf("menu button sizes must be positive")
	case c.Menu.ButtonBorder >= min(c.Menu.ButtonWidth, c.Menu.ButtonHeight):
		return fmt.Errorf("menu.button_border must be smaller than the button")
	case c.Menu.FontSize <= 0:
		return fmt.Errorf("menu.font_size must be positive")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
