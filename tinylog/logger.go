//go:build !tinylog_disabled

package tinylog

import (
	"fmt"
	"io"
)

// Hook is a per-line decorator invoked with the output sink. Installed
// hooks run on every emitted line, before (prefix) or after (suffix)
// the message body. Typical use is a timestamp or a line terminator.
type Hook func(io.Writer)

// Logger filters calls against a severity threshold and writes the
// survivors to an output sink. The sink is borrowed, never owned: the
// caller configures it before Begin and keeps it alive for as long as
// the logger is in use.
//
// Logger performs no locking. It is meant for a single execution
// context; concurrent callers must provide their own mutual exclusion.
type Logger struct {
	level     Level
	showLevel bool
	out       io.Writer
	prefix    Hook
	suffix    Hook
}

// New returns a logger with the threshold at SilentLevel, level tags
// enabled and no output sink bound. Until Begin binds a sink, every
// logging call is a silent no-op.
func New() *Logger {
	return &Logger{level: SilentLevel, showLevel: true}
}

// Begin binds the output sink and sets the threshold and tag display.
// It must be called before any logging call produces output, and may be
// called again later to rebind. The level is clamped to the valid
// range.
func (l *Logger) Begin(level Level, output io.Writer, showLevel bool) {
	l.SetLevel(level)
	l.SetShowLevel(showLevel)
	l.out = output
}

// SetLevel sets the emission threshold, clamped to
// [SilentLevel, TraceLevel].
func (l *Logger) SetLevel(level Level) {
	l.level = clampLevel(level)
}

// GetLevel returns the current emission threshold.
func (l *Logger) GetLevel() Level {
	return l.level
}

// SetShowLevel controls whether each emitted line starts with a
// one-character level tag ("E: ", "I: ", ...).
func (l *Logger) SetShowLevel(showLevel bool) {
	l.showLevel = showLevel
}

// GetShowLevel reports whether level tags are emitted.
func (l *Logger) GetShowLevel() bool {
	return l.showLevel
}

// SetPrefix installs a hook that runs before each emitted message.
// Passing nil removes it.
func (l *Logger) SetPrefix(h Hook) {
	l.prefix = h
}

// SetSuffix installs a hook that runs after each emitted message.
// Passing nil removes it.
func (l *Logger) SetSuffix(h Hook) {
	l.suffix = h
}

// Fatal logs a fatal error message, tagged "F: ".
func (l *Logger) Fatal(format string, args ...any) {
	l.emit(FatalLevel, format, args...)
}

// Error logs an error message, tagged "E: ".
func (l *Logger) Error(format string, args ...any) {
	l.emit(ErrorLevel, format, args...)
}

// Warn logs a warning message, tagged "W: ".
func (l *Logger) Warn(format string, args ...any) {
	l.emit(WarnLevel, format, args...)
}

// Info logs an informational message, tagged "I: ".
func (l *Logger) Info(format string, args ...any) {
	l.emit(InfoLevel, format, args...)
}

// Debug logs a debug message, tagged "D: ".
func (l *Logger) Debug(format string, args ...any) {
	l.emit(DebugLevel, format, args...)
}

// Trace logs a trace message, tagged "T: ".
func (l *Logger) Trace(format string, args ...any) {
	l.emit(TraceLevel, format, args...)
}

// emit is the single dispatch point behind the six emitters. Filtered
// calls return before touching the sink; everything else is written
// directly and synchronously, fire-and-forget: sink write errors are
// dropped so that logging can never be the reason the device fails.
func (l *Logger) emit(level Level, format string, args ...any) {
	if level > l.level || l.out == nil {
		return
	}
	if l.prefix != nil {
		l.prefix(l.out)
	}
	if l.showLevel {
		fmt.Fprintf(l.out, "%c: ", level.tag())
	}
	fmt.Fprintf(l.out, format, args...)
	if l.suffix != nil {
		l.suffix(l.out)
	}
}
