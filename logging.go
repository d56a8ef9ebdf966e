package tileseed

import (
	"fmt"
	"log/slog"
)

// Logger is the logging collaborator: three severity channels taking a
// format template plus arguments. A nil Logger is valid and logs nothing.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// slogLogger adapts the printf-style channels onto a slog.Logger.
type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger returns a Logger backed by the given slog.Logger. Passing
// nil uses slog.Default().
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &slogLogger{l: l}
}

func (s *slogLogger) Debugf(format string, args ...any) {
	s.l.Debug(fmt.Sprintf(format, args...))
}

func (s *slogLogger) Infof(format string, args ...any) {
	s.l.Info(fmt.Sprintf(format, args...))
}

func (s *slogLogger) Errorf(format string, args ...any) {
	s.l.Error(fmt.Sprintf(format, args...))
}

// nil-safe logging helpers used throughout the package

func debugf(l Logger, format string, args ...any) {
	if l != nil {
		l.Debugf(format, args...)
	}
}

func infof(l Logger, format string, args ...any) {
	if l != nil {
		l.Infof(format, args...)
	}
}

func errorf(l Logger, format string, args ...any) {
	if l != nil {
		l.Errorf(format, args...)
	}
}
