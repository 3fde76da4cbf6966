//go:build !tinylog_disabled

package tinylog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestFileAsSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.log")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create log file: %v", err)
	}

	l := New()
	l.Begin(DebugLevel, f, true)
	l.SetSuffix(func(w io.Writer) { io.WriteString(w, CR) })

	l.Info("sensor %s online", "bme280")
	l.Debug("raw=%04x", 0x2a)
	l.Trace("dropped")

	if err := f.Close(); err != nil {
		t.Fatalf("close log file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	want := "I: sensor bme280 online\nD: raw=002a\n"
	if string(data) != want {
		t.Fatalf("expected file contents %q, got %q", want, string(data))
	}
}

func TestBeginRebindsSink(t *testing.T) {
	var first, second bytes.Buffer
	l := New()

	l.Begin(InfoLevel, &first, false)
	l.Info("to first")

	l.Begin(InfoLevel, &second, false)
	l.Info("to second")

	if got := first.String(); got != "to first" {
		t.Fatalf("first sink got %q", got)
	}
	if got := second.String(); got != "to second" {
		t.Fatalf("second sink got %q", got)
	}
}

func TestSinkWriteErrorsAreDropped(t *testing.T) {
	l := New()
	l.Begin(TraceLevel, failingWriter{}, true)

	// Nothing to assert beyond the absence of a panic: writes are
	// fire-and-forget.
	l.Error("lost to the void")
	l.Trace("also lost")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, io.ErrClosedPipe
}
