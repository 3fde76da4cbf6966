//go:build tinylog_disabled

package tinylog

import (
	"bytes"
	"io"
	"testing"
)

// Run with -tags tinylog_disabled to exercise the stub build.

func TestDisabledBuildIsInert(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.Begin(TraceLevel, &buf, true)
	l.SetPrefix(func(w io.Writer) { io.WriteString(w, "never") })
	l.SetSuffix(func(w io.Writer) { io.WriteString(w, "never") })

	l.Fatal("f")
	l.Error("e")
	l.Warn("w")
	l.Info("i")
	l.Debug("d")
	l.Trace("t")

	if buf.Len() != 0 {
		t.Fatalf("disabled build wrote %q", buf.String())
	}
}

func TestDisabledBuildAccessors(t *testing.T) {
	l := New()
	l.Begin(TraceLevel, io.Discard, true)
	l.SetLevel(DebugLevel)
	l.SetShowLevel(true)

	if got := l.GetLevel(); got != SilentLevel {
		t.Fatalf("expected SilentLevel from disabled build, got %v", got)
	}
	if l.GetShowLevel() {
		t.Fatal("expected GetShowLevel to report false in disabled build")
	}
}
