package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"yogastudio/web/internal/config"
)

func New(environment string, cfg config.LoggingConfig) zerolog.Logger {
	return newWithWriter(os.Stdout, environment, cfg)
}

func newWithWriter(out io.Writer, environment string, cfg config.LoggingConfig) zerolog.Logger {
	var writer io.Writer = out
	if !strings.EqualFold(cfg.Format, "json") {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    environment == "production",
		}
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Str("env", environment).
		Logger()

	zerolog.SetGlobalLevel(level(environment, cfg.Level))
	return logger
}

// level honours an explicit setting and otherwise picks debug outside
// production.
func level(environment, configured string) zerolog.Level {
	if configured != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(configured)); err == nil && lvl != zerolog.NoLevel {
			return lvl
		}
	}
	if environment != "production" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
