// Package logger builds the process-wide *slog.Logger. JSON output is
// written by zerolog through a slog.Handler bridge so every component keeps
// using the slog API.
package logger

import (
	"io"
	"log/slog"
	"time"

	"github.com/rs/zerolog"

	"storerank/internal/config/configs"
)

// New returns a logger writing to w according to cfg.
func New(cfg configs.Logger, w io.Writer) *slog.Logger {
	level := cfg.SlogLevel()
	switch cfg.SlogFormat() {
	case "json":
		zl := zerolog.New(w).Level(zerologLevel(level)).With().Timestamp().Logger()
		return slog.New(NewZerologHandler(&zl, level))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	}
}

func zerologLevel(l slog.Level) zerolog.Level {
	switch {
	case l <= slog.LevelDebug:
		return zerolog.DebugLevel
	case l <= slog.LevelInfo:
		return zerolog.InfoLevel
	case l <= slog.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}
