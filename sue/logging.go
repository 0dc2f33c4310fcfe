package sue

import (
	"context"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level is a logging severity, ordered from most to least verbose, matching
// the five severities named in §6.
type Level int

const (
	FullDebug Level = iota
	FullNotifications
	MediumNotifications
	LowNotifications
	None
)

// Logger is the sink the MSA driver emits diagnostics through. The core
// depends only on this interface, never on a concrete sink (§6).
type Logger interface {
	Log(level Level, msg string, fields ...any)
}

// NopLogger discards everything; it is the default when no Logger is
// supplied to Options.
type NopLogger struct{}

// Log implements Logger by discarding the record.
func (NopLogger) Log(Level, string, ...any) {}

// SlogLogger adapts a *slog.Logger to Logger, mirroring
// Hola-to-network_logistics_problem/pkg/logger's slog + lumberjack pairing:
// leveled, optionally rotated logs without a hand-rolled sink.
type SlogLogger struct {
	logger   *slog.Logger
	minLevel Level
}

// FileConfig configures rotation for NewFileLogger, matching lumberjack's
// own knobs.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewSlogLogger wraps w (e.g. os.Stdout) as a Logger at the given minimum
// severity.
func NewSlogLogger(w io.Writer, minLevel Level) *SlogLogger {
	return &SlogLogger{
		logger:   slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: toSlogLevel(minLevel)})),
		minLevel: minLevel,
	}
}

// NewFileLogger wraps a lumberjack-rotated file as a Logger.
func NewFileLogger(cfg FileConfig, minLevel Level) *SlogLogger {
	w := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return NewSlogLogger(w, minLevel)
}

// Log implements Logger.
func (l *SlogLogger) Log(level Level, msg string, fields ...any) {
	if level < l.minLevel {
		return
	}
	l.logger.Log(context.Background(), toSlogLevel(level), msg, fields...)
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case FullDebug:
		return slog.LevelDebug
	case FullNotifications, MediumNotifications:
		return slog.LevelInfo
	case LowNotifications:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

var _ Logger = (*SlogLogger)(nil)
