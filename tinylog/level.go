package tinylog

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is the severity of a log call and, on the logger, the emission
// threshold. A call is written only when its own level is at or below
// the threshold, so raising the threshold enables more output.
type Level int

const (
	// SilentLevel suppresses all output. It is a threshold value only,
	// never a call severity.
	SilentLevel Level = iota
	// FatalLevel marks unrecoverable failures.
	FatalLevel
	// ErrorLevel marks errors.
	ErrorLevel
	// WarnLevel marks warnings.
	WarnLevel
	// InfoLevel marks informational notices.
	InfoLevel
	// DebugLevel marks debugging detail.
	DebugLevel
	// TraceLevel marks the most verbose output.
	TraceLevel
)

// CR is the line terminator for use in format strings. The logger never
// appends one itself.
const CR = "\n"

// levelTags holds the one-character line tags, indexed by Level-1.
const levelTags = "FEWIDT"

// tag returns the one-character line tag for a call severity.
// Only valid for FatalLevel through TraceLevel.
func (l Level) tag() byte {
	return levelTags[l-1]
}

// String returns the lower-case level name. Out-of-range values render
// as their numeric value.
func (l Level) String() string {
	switch l {
	case SilentLevel:
		return "silent"
	case FatalLevel:
		return "fatal"
	case ErrorLevel:
		return "error"
	case WarnLevel:
		return "warn"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	case TraceLevel:
		return "trace"
	}
	return strconv.Itoa(int(l))
}

// ParseLevel parses a level name ("silent", "fatal", "error", "warn",
// "info", "debug", "trace", case-insensitive) or a bare integer, which
// is clamped to the valid range. It is meant for wiring the threshold
// to flags or environment variables.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent", "none":
		return SilentLevel, nil
	case "fatal":
		return FatalLevel, nil
	case "error":
		return ErrorLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return clampLevel(Level(n)), nil
	}
	return SilentLevel, fmt.Errorf("unknown log level %q", s)
}

// clampLevel constrains a level to [SilentLevel, TraceLevel].
// Out-of-range inputs are adjusted, never rejected.
func clampLevel(l Level) Level {
	if l < SilentLevel {
		return SilentLevel
	}
	if l > TraceLevel {
		return TraceLevel
	}
	return l
}
