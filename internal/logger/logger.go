package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var levelNames = map[string]level{
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

type implLogger struct {
	logger *log.Logger
	level  level
}

// New creates a Logger writing to stdout
func New(lvl string) Logger {
	return NewWithWriter(os.Stdout, lvl)
}

// NewWithWriter creates a Logger writing to w. Unknown levels fall back to info.
func NewWithWriter(w io.Writer, lvl string) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  parseLevel(lvl),
	}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return NewWithWriter(io.Discard, "error")
}

func parseLevel(lvl string) level {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(lvl))]; ok {
		return l
	}
	return levelInfo
}

func (l *implLogger) shouldLog(target level) bool {
	return target >= l.level
}

func (l *implLogger) printf(target level, tag, msg string, args ...interface{}) {
	if l.shouldLog(target) {
		l.logger.Printf("["+tag+"] "+msg, args...)
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.printf(levelDebug, "DEBUG", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.printf(levelInfo, "INFO", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.printf(levelWarn, "WARN", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.printf(levelError, "ERROR", msg, args...)
}
