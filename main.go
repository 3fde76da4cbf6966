package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mordilloSan/go-tinylog/tinylog"
)

// Example demonstrating tinylog usage.
func main() {
	level := tinylog.TraceLevel

	// Override the threshold from the environment.
	// Example: TINYLOG_LEVEL=warn ./go-tinylog
	if env := os.Getenv("TINYLOG_LEVEL"); env != "" {
		parsed, err := tinylog.ParseLevel(env)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		level = parsed
	}

	log := tinylog.New()
	log.Begin(level, os.Stdout, true)
	log.SetSuffix(func(w io.Writer) { io.WriteString(w, tinylog.CR) })

	log.Info("threshold set to %v", log.GetLevel())

	// One line per severity; anything above the threshold is dropped.
	log.Fatal("fatal: %s", "unrecoverable condition")
	log.Error("error: sensor %s returned %d", "bme280", -1)
	log.Warn("warning: battery at %d%%", 12)
	log.Info("info: %d samples buffered", 42)
	log.Debug("debug: raw=%04x", 0x2a)
	log.Trace("trace: loop iteration %d", 7)

	// Hooks decorate every emitted line; here, a timestamp prefix.
	log.SetPrefix(func(w io.Writer) {
		fmt.Fprintf(w, "%s ", time.Now().Format("15:04:05.000"))
	})
	log.Info("timestamped from here on")

	// Tags can be turned off for raw output.
	log.SetShowLevel(false)
	log.Info("no tag on this line")

	// SetLevel takes effect immediately.
	log.SetLevel(tinylog.ErrorLevel)
	log.Info("dropped after the threshold change")
	log.Error("still emitted")
}
