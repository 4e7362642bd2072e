package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are user preferences persisted between runs
type Settings struct {
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"`
	Fullscreen   bool    `yaml:"fullscreen"`
}

// DefaultSettings returns the settings used on first launch
func DefaultSettings() *Settings {
	return &Settings{
		SoundVolume:  0.8,
		SoundEnabled: true,
		Fullscreen:   false,
	}
}

// Storage keys
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsStore loads and saves Settings through gdata.
// A nil manager keeps settings in memory only.
type SettingsStore struct {
	manager  *gdata.Manager
	settings *Settings
	logger   *log.Logger
}

// OpenSettingsStore opens gdata storage for appName and loads saved settings.
// Storage or load failures are logged and fall back to defaults.
func OpenSettingsStore(appName string, logger *log.Logger) *SettingsStore {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("settings storage unavailable, using in-memory settings", "error", err)
		manager = nil
	}
	return NewSettingsStore(manager, logger)
}

// NewSettingsStore creates a store over manager and loads saved settings
func NewSettingsStore(manager *gdata.Manager, logger *log.Logger) *SettingsStore {
	s := &SettingsStore{
		manager:  manager,
		settings: DefaultSettings(),
		logger:   logger,
	}
	if err := s.Load(); err != nil {
		logger.Warn("failed to load settings, using defaults", "error", err)
	}
	return s
}

// Load reads saved settings, keeping defaults when nothing is saved
func (s *SettingsStore) Load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		s.settings = DefaultSettings()
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		s.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		s.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	s.settings = loaded
	s.logger.Debug("settings loaded", "volume", loaded.SoundVolume, "sound", loaded.SoundEnabled, "fullscreen", loaded.Fullscreen)
	return nil
}

// Save writes the current settings. In-memory stores succeed without writing.
func (s *SettingsStore) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	s.logger.Debug("settings saved")
	return nil
}

// Settings returns the live settings. Callers may mutate them before Save.
func (s *SettingsStore) Settings() *Settings {
	return s.settings
}

// Persistent reports whether settings survive restarts
func (s *SettingsStore) Persistent() bool {
	return s.manager != nil
}

// SetSoundVolume sets the volume clamped to [0, 1]
func (s *Settings) SetSoundVolume(v float64) {
	s.SoundVolume = clampVolume(v)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
