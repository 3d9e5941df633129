// Package logutil builds the structured logger used across commands.
package logutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// FromConfig builds a slog logger writing to stderr so log lines never
// contaminate CSV on stdout. Level accepts debug|info|warn|error (empty
// means info); format accepts text|json (empty means text).
func FromConfig(level, format string) (*slog.Logger, error) {
	return New(os.Stderr, level, format)
}

// New builds a logger writing to w.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	parsed, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: parsed}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown logging format %q (use text or json)", format)
	}
	return slog.New(handler), nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown logging level %q (use debug, info, warn or error)", level)
	}
}
