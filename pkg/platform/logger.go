package platform

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger for console use and returns it.
// Unknown levels fall back to info.
func InitLogger(level string) zerolog.Logger {
	return initLogger(os.Stderr, level)
}

func initLogger(out io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).
		Level(lvl).
		With().Timestamp().Logger()
	return log.Logger
}
