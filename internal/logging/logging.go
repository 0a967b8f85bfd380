// Package logging sets up the application logger. The terminal belongs to
// the UI, so log output goes to a file.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/pieces/internal/config"
)

const (
	appName     = "pieces"
	logFileName = "pieces.log"
)

// New creates a logger writing to out with the given level and format.
func New(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "text" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    true,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Setup opens the log file, installs the logger globally and returns it.
// The returned closer must be closed on exit.
func Setup(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	path := cfg.File
	if path == "" {
		var err error
		path, err = xdg.StateFile(filepath.Join(appName, logFileName))
		if err != nil {
			return zerolog.Nop(), nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	logger := New(cfg, f)
	log.Logger = logger
	logger.Info().Str("path", path).Msg("logger initialized")

	return logger, f, nil
}
