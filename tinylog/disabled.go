//go:build tinylog_disabled

package tinylog

import "io"

// Hook matches the enabled build's signature so call sites compile
// unchanged.
type Hook func(io.Writer)

// Logger carries no state in disabled builds. Every method is an empty
// stub the compiler inlines away, so call sites cost nothing beyond
// evaluating their own arguments.
type Logger struct{}

// New returns the inert logger.
func New() *Logger {
	return &Logger{}
}

func (l *Logger) Begin(level Level, output io.Writer, showLevel bool) {}

func (l *Logger) SetLevel(level Level) {}

// GetLevel always reports SilentLevel in disabled builds.
func (l *Logger) GetLevel() Level {
	return SilentLevel
}

func (l *Logger) SetShowLevel(showLevel bool) {}

// GetShowLevel always reports false in disabled builds.
func (l *Logger) GetShowLevel() bool {
	return false
}

func (l *Logger) SetPrefix(h Hook) {}

func (l *Logger) SetSuffix(h Hook) {}

func (l *Logger) Fatal(format string, args ...any) {}

func (l *Logger) Error(format string, args ...any) {}

func (l *Logger) Warn(format string, args ...any) {}

func (l *Logger) Info(format string, args ...any) {}

func (l *Logger) Debug(format string, args ...any) {}

func (l *Logger) Trace(format string, args ...any) {}
