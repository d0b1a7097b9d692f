// Package logging provides structured logging utilities shared by the
// framesight components.
//
// It wraps the standard library slog package with project defaults:
// JSON output to stderr, environment-based level configuration
// (LOG_LEVEL), automatic module/version context, and source location
// tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("framesight", version)
//
//	    slog.Info("observing", "frames", 600)
//	    slog.Debug("cache hit", "frame", frame)
//	}
//
// The LOG_LEVEL environment variable controls verbosity (debug, info,
// warn, error); unset defaults to info. Note that these are the wire
// levels of the host logger, distinct from the diagnostic record levels
// in pkg/level.
package logging
