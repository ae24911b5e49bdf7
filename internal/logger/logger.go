package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var levels = map[string]int32{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger zerolog.Logger
	level  atomic.Int32
}

// New creates a new Logger writing to stdout.
// format is "json" for JSON lines, anything else for the console writer.
func New(level, format string) Logger {
	return newLogger(os.Stdout, level, format)
}

func newLogger(w io.Writer, level, format string) *implLogger {
	if strings.ToLower(format) != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime, NoColor: true}
	}

	l := &implLogger{
		logger: zerolog.New(w).With().Timestamp().Logger(),
	}
	l.SetLevel(level)
	return l
}

// SetLevel changes the minimum level; unknown levels fall back to info.
func (l *implLogger) SetLevel(level string) {
	current, ok := levels[strings.ToLower(level)]
	if !ok {
		current = levels["info"]
	}
	l.level.Store(current)
}

func (l *implLogger) shouldLog(level string) bool {
	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= l.level.Load()
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "debug", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "info", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "warn", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "error", msg, args)
}

func (l *implLogger) write(ctx context.Context, level, msg string, args []interface{}) {
	if !l.shouldLog(level) {
		return
	}

	var evt *zerolog.Event
	switch level {
	case "debug":
		evt = l.logger.Debug()
	case "warn":
		evt = l.logger.Warn()
	case "error":
		evt = l.logger.Error()
	default:
		evt = l.logger.Info()
	}

	if id := RequestID(ctx); id != "" {
		evt = evt.Str("request_id", id)
	}

	if len(args) == 0 {
		evt.Msg(msg)
		return
	}
	evt.Msg(fmt.Sprintf(msg, args...))
}
