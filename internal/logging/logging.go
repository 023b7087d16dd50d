// Package logging builds the process logger. The driver packages take an
// injected zerolog.Logger and default to a no-op one, so this is the only
// place a real logger is constructed.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger for the named tool. Verbose lowers the level
// to debug, which traces every command and response on the wire.
func New(app string, verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
}
