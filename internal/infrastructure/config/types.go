package config

import (
	"fmt"
	"image/color"
	"runtime"
	"strconv"
	"strings"
)

// AppConfig is the root config for app.yaml
type AppConfig struct {
	Window   WindowConfig  `yaml:"window"`
	Features FeatureConfig `yaml:"features"`
	Assets   AssetConfig   `yaml:"assets"`
	Log      LogConfig     `yaml:"log"`
	Storage  StorageConfig `yaml:"storage"`
}

type WindowConfig struct {
	Title      string `yaml:"title" env:"GAMEMENU_TITLE"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Resizable  bool   `yaml:"resizable"`
	VSync      bool   `yaml:"vsync"`
	TPS        int    `yaml:"tps"`
	ClearColor string `yaml:"clearColor"` // #rrggbb
}

// FeatureConfig toggles target-dependent behavior.
// Resolved once at startup into a Target.
type FeatureConfig struct {
	Debug    bool `yaml:"debug" env:"GAMEMENU_DEBUG"`
	ForceWeb bool `yaml:"forceWeb" env:"GAMEMENU_WEB"` // behave as the browser build on native targets
}

type AssetConfig struct {
	Font string `yaml:"font" env:"GAMEMENU_FONT"` // empty = bundled font
}

type LogConfig struct {
	Level string `yaml:"level" env:"GAMEMENU_LOG_LEVEL"`
}

type StorageConfig struct {
	AppName string `yaml:"appName"` // gdata namespace for persisted settings
}

// Default returns the built-in configuration used when app.yaml omits a field
func Default() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Title:      "GAME_NAME",
			Width:      1280,
			Height:     720,
			Resizable:  true,
			VSync:      true,
			TPS:        60,
			ClearColor: "#2b2b2b",
		},
		Log:     LogConfig{Level: "info"},
		Storage: StorageConfig{AppName: "gamemenu"},
	}
}

// Validate checks that the config can drive a window
func (c *AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", c.Window.TPS)
	}
	if _, err := ParseHexColor(c.Window.ClearColor); err != nil {
		return fmt.Errorf("invalid clearColor: %w", err)
	}
	return nil
}

// Target describes the build target and mode the app runs as
type Target struct {
	Web   bool
	Debug bool
}

// ResolveTarget folds the runtime platform and feature flags into a Target
func (c *AppConfig) ResolveTarget() Target {
	return Target{
		Web:   runtime.GOOS == "js" || c.Features.ForceWeb,
		Debug: c.Features.Debug,
	}
}

// QuitAvailable reports whether the app offers an explicit quit action
func (t Target) QuitAvailable() bool {
	return !t.Web
}

// InspectorEnabled reports whether the world inspector overlay is shown
func (t Target) InspectorEnabled() bool {
	return t.Debug && !t.Web
}

// ParseHexColor parses "#rrggbb" into an opaque color
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
