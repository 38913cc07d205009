package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// New builds a leveled JSON logger. Unknown levels fall back to info.
func New(level string, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}
