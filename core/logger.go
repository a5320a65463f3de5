package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string // debug, info, warn or error
	Format string // text or json
	Output io.Writer
}

// DefaultLogConfig returns the logger configuration used when no flags are given
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: "text",
		Output: os.Stderr,
	}
}

// InitLogger installs the default slog logger for the process
func InitLogger(cfg LogConfig) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	case "", "text":
		handler = slog.NewTextHandler(output, opts)
	default:
		return NewUserErrorF("unknown log format %q", cfg.Format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, NewUserError(fmt.Sprintf("unknown log level %q", s))
	}
}
