package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/m96-chan/slacko-teams/internal/consts"
)

//go:embed config.toml
var defaultConfig []byte

// Config holds the application configuration.
type Config struct {
	Mouse       bool   `toml:"mouse"`
	AsciiIcons  bool   `toml:"ascii_icons"`
	DefaultTeam string `toml:"default_team"`

	Store     Store     `toml:"store"`
	TeamsTree TeamsTree `toml:"teams_tree"`

	Keybinds Keybinds `toml:"keybinds"`
	Theme    Theme    `toml:"theme"`
}

// Store controls the action store.
type Store struct {
	// LogActions logs every dispatched action type at debug level.
	LogActions bool `toml:"log_actions"`
	// HistoryLimit is how many recent action types are kept; 0 disables.
	HistoryLimit int `toml:"history_limit"`
}

// TeamsTree controls what the teams tree shows.
type TeamsTree struct {
	ShowMembers bool `toml:"show_members"`
	ShowRole    bool `toml:"show_role"`
	// FilterLimit caps the teams listed while filtering; 0 is unlimited.
	FilterLimit int `toml:"filter_limit"`
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, consts.Name, "config.toml")
}

// Load reads the config from the given path. If the file does not exist,
// it writes the default config and loads that. Config loading is two-phase:
// embedded defaults are applied first, then the user file overlays on top.
// The theme preset named by the user file is expanded before the overlay,
// so explicit style tables win over the preset.
func Load(path string) (*Config, error) {
	// Phase 1: unmarshal embedded defaults.
	var cfg Config
	if err := toml.Unmarshal(defaultConfig, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}

	// Write default config if file does not exist.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, defaultConfig, 0o600); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var probe struct {
		Theme struct {
			Preset string `toml:"preset"`
		} `toml:"theme"`
	}
	if err := toml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	preset := probe.Theme.Preset
	if preset == "" {
		preset = cfg.Theme.Preset
	}
	cfg.Theme = BuiltinTheme(preset)

	// Phase 2: overlay user file on top of defaults.
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// validate checks that config values are within acceptable ranges.
func validate(cfg *Config) error {
	if cfg.Store.HistoryLimit < 0 || cfg.Store.HistoryLimit > 10000 {
		return fmt.Errorf("store.history_limit must be between 0 and 10000, got %d", cfg.Store.HistoryLimit)
	}
	if cfg.TeamsTree.FilterLimit < 0 || cfg.TeamsTree.FilterLimit > 1000 {
		return fmt.Errorf("teams_tree.filter_limit must be between 0 and 1000, got %d", cfg.TeamsTree.FilterLimit)
	}
	if !isPreset(cfg.Theme.Preset) {
		return fmt.Errorf("unknown theme preset %q", cfg.Theme.Preset)
	}
	if cfg.Keybinds.Quit == "" {
		return fmt.Errorf("keybinds.quit must not be empty")
	}
	return nil
}
