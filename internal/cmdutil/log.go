// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// LogLevels are the accepted --log-level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// NewLogger builds the CLI logger on w. verbose wins over quiet, and both
// win over level. An unknown level falls back to info with a warning.
func NewLogger(w io.Writer, level string, quiet, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "pfa"})
	switch {
	case verbose:
		logger.SetLevel(log.DebugLevel)
	case quiet:
		logger.SetLevel(log.ErrorLevel)
	default:
		lvl, err := log.ParseLevel(strings.ToLower(level))
		if err != nil || level == "" {
			logger.SetLevel(log.InfoLevel)
			if level != "" {
				logger.Warn("unknown log level, defaulting to info", "provided", level)
			}
			return logger
		}
		logger.SetLevel(lvl)
	}
	return logger
}
