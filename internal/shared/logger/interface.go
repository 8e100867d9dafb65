package logger

import "log/slog"

// Interface is the logging contract handed to use cases, handlers and
// infrastructure components.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})
}

type slogAdapter struct {
	l *slog.Logger
}

// NewLogger returns an Interface backed by the process logger.
func NewLogger() Interface {
	return &slogAdapter{l: Get()}
}

func NewLoggerWithSlog(l *slog.Logger) Interface {
	return &slogAdapter{l: l}
}

func (a *slogAdapter) Debug(msg string, args ...any) { a.l.Debug(msg, args...) }
func (a *slogAdapter) Info(msg string, args ...any)  { a.l.Info(msg, args...) }
func (a *slogAdapter) Warn(msg string, args ...any)  { a.l.Warn(msg, args...) }
func (a *slogAdapter) Error(msg string, args ...any) { a.l.Error(msg, args...) }

func (a *slogAdapter) Fatal(msg string, args ...any) {
	a.l.Error(msg, args...)
	panic("fatal error: " + msg)
}

func (a *slogAdapter) With(args ...any) Interface {
	return &slogAdapter{l: a.l.With(args...)}
}

func (a *slogAdapter) Named(name string) Interface {
	return &slogAdapter{l: a.l.With("logger", name)}
}

func (a *slogAdapter) Debugw(msg string, keysAndValues ...interface{}) { a.l.Debug(msg, keysAndValues...) }
func (a *slogAdapter) Infow(msg string, keysAndValues ...interface{})  { a.l.Info(msg, keysAndValues...) }
func (a *slogAdapter) Warnw(msg string, keysAndValues ...interface{})  { a.l.Warn(msg, keysAndValues...) }
func (a *slogAdapter) Errorw(msg string, keysAndValues ...interface{}) { a.l.Error(msg, keysAndValues...) }

func (a *slogAdapter) Fatalw(msg string, keysAndValues ...interface{}) {
	a.Fatal(msg, keysAndValues...)
}
