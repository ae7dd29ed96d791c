package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds a logger from c.
func NewLogger(c LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("touchkit: invalid log level %q: %w", c.Level, err)
	}

	var out io.Writer
	switch strings.ToLower(c.Output) {
	case "stdout":
		out = os.Stdout
	case "", "stderr":
		out = os.Stderr
	default:
		return zerolog.Nop(), fmt.Errorf("touchkit: invalid log output %q", c.Output)
	}

	return newLogger(out, c.Format, level)
}

func newLogger(out io.Writer, format string, level zerolog.Level) (zerolog.Logger, error) {
	switch strings.ToLower(format) {
	case "", "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("touchkit: invalid log format %q", format)
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
