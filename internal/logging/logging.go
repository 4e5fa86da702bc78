// Package logging configures the process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// New returns a tint logger writing to w. Colour is only used on a
// terminal.
func New(w io.Writer, level slog.Level, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !color,
	}))
}

// Setup installs the default logger. The terminal UI owns stdout and
// stderr, so logs go to file when one is given and are dropped otherwise.
// The returned closer releases the file.
func Setup(file, level string) (*slog.Logger, func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if file == "" {
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)
		return logger, func() error { return nil }, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := New(f, lvl, false)
	slog.SetDefault(logger)
	return logger, f.Close, nil
}

// Stderr returns a coloured logger for commands that do not take over the
// terminal.
func Stderr(level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := New(os.Stderr, lvl, true)
	slog.SetDefault(logger)
	return logger, nil
}
