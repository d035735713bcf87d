package logger

import (
	"io"
	"os"

	"github.com/pion/logging"
)

// New returns a leveled logger for scope. Debug raises the level from Warn
// to Debug. A nil writer logs to stderr.
func New(scope string, debug bool, w io.Writer) logging.LeveledLogger {
	if w == nil {
		w = os.Stderr
	}
	level := logging.LogLevelWarn
	if debug {
		level = logging.LogLevelDebug
	}
	return logging.NewDefaultLeveledLoggerForScope(scope, level, w)
}
