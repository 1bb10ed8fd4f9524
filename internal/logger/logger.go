// Package logger builds the zerolog logger used for per-file progress output.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"icptargets/internal/config"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// NewWithWriter returns a logger writing to out in the configured format and level.
func NewWithWriter(cfg config.Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	var w io.Writer = out
	if cfg.LogFormat != FormatJSON {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.DateTime,
			NoColor:    true,
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
