package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none"

	// Where the pieces come from (at least one is required)
	Catalog CatalogConfig `koanf:"catalog"`

	// Simulated device behaviour
	Playback PlaybackConfig `koanf:"playback"`

	Log LogConfig `koanf:"log"`
}

// CatalogConfig holds the catalog sources.
type CatalogConfig struct {
	File    string `koanf:"file"`     // TOML catalog file
	ScanDir string `koanf:"scan_dir"` // folder of tagged audio files
}

// PlaybackConfig holds playback settings.
type PlaybackConfig struct {
	BufferMillis *int `koanf:"buffer_ms"` // time spent buffering before playing (0-10000, default: 800)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error (default: info)
	Format string `koanf:"format"` // json or text (default: json)
	File   string `koanf:"file"`   // default: $XDG_STATE_HOME/pieces/pieces.log
}

const (
	defaultBufferMillis = 800
	maxBufferMillis     = 10000
)

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths())
}

// LoadFrom loads the existing files among paths, later files overriding
// earlier ones.
func LoadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Catalog.File = expandPath(cfg.Catalog.File)
	cfg.Catalog.ScanDir = expandPath(cfg.Catalog.ScanDir)
	cfg.Log.File = expandPath(cfg.Log.File)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/pieces/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "pieces", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasCatalogSource returns true if a catalog file or scan folder is configured.
func (c *Config) HasCatalogSource() bool {
	return c.Catalog.File != "" || c.Catalog.ScanDir != ""
}

// BufferDuration returns the simulated buffering delay with defaults applied.
func (c *Config) BufferDuration() time.Duration {
	ms := defaultBufferMillis
	if c.Playback.BufferMillis != nil {
		ms = min(max(*c.Playback.BufferMillis, 0), maxBufferMillis)
	}
	return time.Duration(ms) * time.Millisecond
}

// GetLogConfig returns the logging configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Level = "info"
	}
	if cfg.Format != "text" {
		cfg.Format = "json"
	}

	return cfg
}
