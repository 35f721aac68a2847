// Package logging provides the package-level structured logger used across
// the equihash module, replacing the reference implementation's
// LogPrint("pow", ...) calls with zerolog events.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the module-wide logger. It defaults to a quiet console writer
// at info level; callers that want round-by-round solver tracing should
// call SetLevel(zerolog.DebugLevel).
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
	With().Timestamp().Logger().Level(zerolog.InfoLevel)

// SetLevel adjusts the minimum level the module-wide logger emits.
func SetLevel(level zerolog.Level) {
	Logger = Logger.Level(level)
}

// SetOutput redirects the module-wide logger to w, preserving its level.
func SetOutput(w io.Writer) {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().Timestamp().Logger().Level(Logger.GetLevel())
}
