// Package logging builds the structured logger. The TUI owns the terminal,
// so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
)

const (
	// EnvFormat selects the record encoding: text or json.
	EnvFormat = "LOG_FORMAT"
	// EnvLevel sets the lowest level written: debug, info, warn or error.
	EnvLevel = "LOG_LEVEL"
)

var (
	formats = []string{"text", "json"}

	levels = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

// Config selects how log records are encoded and filtered.
type Config struct {
	Format string
	Level  slog.Level
}

// DefaultConfig writes text records at info level.
func DefaultConfig() Config {
	return Config{Format: formats[0], Level: slog.LevelInfo}
}

// LoadConfigFromEnv reads EnvFormat and EnvLevel. Unset variables keep the
// DefaultConfig values; unknown values are an error.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if raw := normalize(os.Getenv(EnvFormat)); raw != "" {
		if !slices.Contains(formats, raw) {
			return Config{}, fmt.Errorf("%s=%q: want one of %s", EnvFormat, raw, strings.Join(formats, ", "))
		}
		cfg.Format = raw
	}

	if raw := normalize(os.Getenv(EnvLevel)); raw != "" {
		level, ok := levels[raw]
		if !ok {
			return Config{}, fmt.Errorf("%s=%q: want one of debug, info, warn, error", EnvLevel, raw)
		}
		cfg.Level = level
	}

	return cfg, nil
}

// NewLogger returns a logger that writes cfg-encoded records to w, tagged
// with the app name. A nil w gives a logger with every level disabled.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	if w == nil {
		return slog.New(slog.DiscardHandler)
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if normalize(cfg.Format) == "json" {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h).With("app", "freshstars")
}

// Open appends records to the file at path, creating it if needed. With an
// empty path nothing is written. The close function is never nil and must
// be called once the program exits.
func Open(cfg Config, path string) (*slog.Logger, func() error, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return NewLogger(cfg, nil), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return NewLogger(cfg, f), f.Close, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
