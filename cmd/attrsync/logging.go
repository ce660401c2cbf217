package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
)

// logFanout is a [slog.Handler] passing every record on to all of its
// handlers.
type logFanout struct {
	handlers []slog.Handler
}

func newLogFanout(handlers ...slog.Handler) *logFanout {
	return &logFanout{
		handlers: handlers,
	}
}

func (f *logFanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (f *logFanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error

	for _, h := range f.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (f *logFanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, 0, len(f.handlers))
	for _, h := range f.handlers {
		handlers = append(handlers, h.WithAttrs(attrs))
	}

	return newLogFanout(handlers...)
}

func (f *logFanout) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, 0, len(f.handlers))
	for _, h := range f.handlers {
		handlers = append(handlers, h.WithGroup(name))
	}

	return newLogFanout(handlers...)
}

// levelCounter is a [slog.Handler] that only counts the records at or above
// its level. Derived handlers share the same count.
type levelCounter struct {
	level slog.Leveler
	count *atomic.Int64
}

func newLevelCounter(level slog.Leveler) *levelCounter {
	return &levelCounter{
		level: level,
		count: &atomic.Int64{},
	}
}

func (c *levelCounter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level.Level()
}

func (c *levelCounter) Handle(_ context.Context, _ slog.Record) error {
	c.count.Add(1)

	return nil
}

func (c *levelCounter) WithAttrs(_ []slog.Attr) slog.Handler {
	return c
}

func (c *levelCounter) WithGroup(_ string) slog.Handler {
	return c
}

// Count returns the number of records counted so far.
func (c *levelCounter) Count() int {
	return int(c.count.Load())
}

// setupLogging installs the default logger, printing to out at the given
// level and counting all warnings and errors for the report.
func setupLogging(out io.Writer, level slog.Leveler) *levelCounter {
	warnings := newLevelCounter(slog.LevelWarn)

	slog.SetDefault(slog.New(newLogFanout(
		tint.NewHandler(out, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
		warnings,
	)))

	return warnings
}
