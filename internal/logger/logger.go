package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New creates the root logger. Unknown levels fall back to info.
func New(level string) *zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log := zerolog.New(writer).Level(parsed).With().Timestamp().Logger()

	return &log
}
