// Package tinylog provides a minimal leveled logging facade for
// resource-constrained targets: a severity threshold, an io.Writer
// sink, printf-style formatting and optional per-line hooks. Nothing
// else — no buffering, no rotation, no locking, no timestamps.
//
// # Features
//
//   - Seven-value severity scale from SilentLevel to TraceLevel;
//     a call is emitted only when its level is at or below the threshold
//   - Any io.Writer as the sink (serial port, file, buffer, stdout);
//     the sink stays owned and configured by the caller
//   - Optional one-character level tag per line ("E: ", "I: ", ...)
//   - Prefix/suffix hooks for timestamps, tags or line terminators
//   - Fire-and-forget writes: sink errors never propagate
//   - Build tag tinylog_disabled compiles every method down to an
//     empty stub for release firmware
//
// # Usage
//
// Construct one logger at startup, bind the sink once, and pass the
// logger to whoever needs it:
//
//	log := tinylog.New()
//	log.Begin(tinylog.InfoLevel, os.Stdout, true)
//
//	log.Info("boot complete, %d sensors%s", n, tinylog.CR)
//	log.Debug("filtered below the threshold%s", tinylog.CR)
//
// Messages are written exactly as formatted; end format strings with
// tinylog.CR (or install a suffix hook) to terminate lines:
//
//	log.SetSuffix(func(w io.Writer) { io.WriteString(w, tinylog.CR) })
//	log.SetPrefix(func(w io.Writer) {
//	    fmt.Fprintf(w, "%d ", time.Now().UnixMilli())
//	})
//
// # Level Filtering
//
// The threshold can change at any time via SetLevel and is always
// clamped to the valid range. ParseLevel converts flag or environment
// values:
//
//	if lvl, err := tinylog.ParseLevel(os.Getenv("TINYLOG_LEVEL")); err == nil {
//	    log.SetLevel(lvl)
//	}
//
// # Concurrency
//
// The logger assumes a single execution context and takes no locks.
// Callers logging from multiple goroutines must serialize access
// themselves.
package tinylog
