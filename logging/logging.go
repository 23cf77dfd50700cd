/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package logging builds zerolog loggers from configuration.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/suparena/entitystate/config"
	"github.com/suparena/entitystate/errors"
)

// New returns a logger writing to w (stderr when nil) at the configured level.
// Format "json" writes one JSON object per line; anything else writes
// human-readable console output.
func New(cfg config.LoggingConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), errors.NewValidationError("logging.level", err.Error())
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if w == nil {
		w = os.Stderr
	}
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
