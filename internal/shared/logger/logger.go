package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"helpdesk/internal/shared/config"
)

var (
	mu          sync.RWMutex
	root        *slog.Logger
	atomicLevel = new(slog.LevelVar)
)

// Init configures the process-wide logger. In debug mode every level carries
// source information, otherwise only warnings and errors do.
func Init(cfg *config.LoggerConfig, debug bool) error {
	atomicLevel.Set(parseLevel(cfg.Level))

	writer, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}

	sourceLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if debug {
		sourceLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	}

	var base slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		base = slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: atomicLevel})
	} else {
		base = newTintHandler(writer, atomicLevel)
	}

	set(slog.New(NewSourceHandler(base, sourceLevels...)))
	return nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
}

func newTintHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func set(l *slog.Logger) {
	mu.Lock()
	root = l
	mu.Unlock()
	slog.SetDefault(l)
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level slog.Level) {
	atomicLevel.Set(level)
}

// Get returns the process logger, creating a console logger on first use.
func Get() *slog.Logger {
	mu.RLock()
	l := root
	mu.RUnlock()
	if l != nil {
		return l
	}

	atomicLevel.Set(slog.LevelInfo)
	l = slog.New(NewSourceHandler(newTintHandler(os.Stdout, atomicLevel), slog.LevelWarn, slog.LevelError))
	set(l)
	return l
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}

func WithComponent(component string) Interface {
	return NewLoggerWithSlog(Get().With("component", component))
}
