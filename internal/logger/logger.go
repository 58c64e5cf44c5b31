// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console logger at the given level. Verbose enables debug
// output; the pipeline logs progress and per-unit skips through it.
func New(out io.Writer, verbose bool) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
