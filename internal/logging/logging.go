// Package logging wires the configured level and format into a zerolog
// logger shared by the CLI and the server.
package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/webatelier/siteaudit/internal/config"
)

// New builds a logger from the logging configuration. Unknown levels
// fall back to info; unknown formats fall back to console output.
func New(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if strings.EqualFold(cfg.Format, "json") {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger.Level(level).With().Timestamp().Logger()
}
