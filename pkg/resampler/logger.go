package resampler

import (
	"context"
	"log/slog"
)

// Logger is the resampler's logging seam. The default is a no-op so that
// constructing a resampler without configuring one adds no overhead to
// the processing path, matching spec.md §9's requirement that logging be
// disable-able without source changes. Callers on the processing path
// must check Enabled() before building the args for Debug, so that a
// disabled logger costs nothing beyond the branch.
type Logger interface {
	Enabled() bool
	Debug(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Enabled() bool        { return false }
func (noopLogger) Debug(string, ...any) {}

// slogLogger adapts the standard library's structured logger, the same
// one the teacher application wires up via slog.SetDefault at startup.
type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps l (or slog.Default() if l is nil) as a Logger.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return slogLogger{l: l}
}

func (s slogLogger) Enabled() bool {
	return s.l.Enabled(context.Background(), slog.LevelDebug)
}

func (s slogLogger) Debug(msg string, args ...any) {
	s.l.Debug(msg, args...)
}
