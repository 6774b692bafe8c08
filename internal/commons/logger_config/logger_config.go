package logger_config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the shared structured logger.
// It is safe for concurrent use.
var Logger *slog.Logger

var level = new(slog.LevelVar)

func init() {
	level.Set(parseLevel(os.Getenv("LOG_LEVEL"))) // debug|info|warn|error
	SetOutput(os.Stdout)
}

// SetOutput rebuilds the shared logger on top of w, keeping the current level.
// The terminal frontend uses it to keep log lines off the screen.
func SetOutput(w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: true, // file:line
	}

	handler := slog.NewTextHandler(w, opts)
	Logger = slog.New(handler)

	slog.SetDefault(Logger)
}

// SetLevel re-applies a level name after .env or config files were loaded.
func SetLevel(s string) {
	level.Set(parseLevel(s))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}

// Sugar helpers (printf-style), convenient for quick telemetry.
func Debugf(format string, args ...any) { Logger.Debug(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { Logger.Info(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { Logger.Warn(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { Logger.Error(fmt.Sprintf(format, args...)) }
