// Package debug provides conditional debug logging for tp.
//
// Debug logging is enabled by setting the TP_DEBUG environment variable:
//
//	TP_DEBUG=1 tp
//
// When enabled, debug messages are written to stderr with timestamps.
// When disabled (default), all debug functions are no-ops.
package debug

import (
	"log"
	"os"
	"time"
)

var (
	enabled bool
	logger  *log.Logger
)

func init() {
	if os.Getenv("TP_DEBUG") != "" {
		enabled = true
		logger = log.New(os.Stderr, "[TP_DEBUG] ", log.Ltime|log.Lmicroseconds)
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	return enabled
}

// Log writes a formatted debug message when debug logging is enabled.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming logs the duration of a named operation.
func LogTiming(name string, elapsed time.Duration) {
	if !enabled {
		return
	}
	logger.Printf("%s took %s", name, elapsed)
}
