// Package config loads chronotrack settings from CHRONOTRACK_* environment
// variables over compiled defaults using koanf.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CHRONOTRACK_"

const (
	DriverSQLite = "sqlite"
	DriverJSON   = "json"

	DefaultSQLitePath = "chronotrack.db"
	DefaultJSONPath   = "chronotrack.json"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Storage              StorageConfig `koanf:"storage"`
	TickInterval         time.Duration `koanf:"tick_interval"`
	DesktopNotifications bool          `koanf:"desktop_notifications"`
	MilestoneBuffer      int           `koanf:"milestone_buffer"`
	Log                  LogConfig     `koanf:"log"`
}

type StorageConfig struct {
	Driver string `koanf:"driver"`
	Path   string `koanf:"path"`
}

// LogConfig points the logger at a file. An empty File discards logs, since
// the terminal belongs to the UI.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

func Defaults() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: DriverSQLite,
			Path:   DefaultSQLitePath,
		},
		TickInterval:         time.Second,
		DesktopNotifications: false,
		MilestoneBuffer:      64,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the environment over Defaults and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	cfg := Defaults()

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if !k.Exists("storage.path") {
		cfg.Storage.Path = DefaultPath(cfg.Storage.Driver)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps CHRONOTRACK_STORAGE_DRIVER to storage.driver and
// CHRONOTRACK_TICK_INTERVAL to tick_interval.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, section := range []string{"storage", "log"} {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
}

// DefaultPath is the store location used when none is configured.
func DefaultPath(driver string) string {
	if driver == DriverJSON {
		return DefaultJSONPath
	}
	return DefaultSQLitePath
}

func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	c.Storage.Path = strings.TrimSpace(c.Storage.Path)
	switch c.Storage.Driver {
	case DriverSQLite, DriverJSON:
	default:
		return fmt.Errorf("%w: storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("%w: storage.path is empty", ErrInvalidConfig)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalidConfig)
	}
	if c.MilestoneBuffer <= 0 {
		c.MilestoneBuffer = 1
	}
	return nil
}
