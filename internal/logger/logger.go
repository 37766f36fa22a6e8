// Package logger configures the global zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Level parses a level name: DEBUG, INFO, WARN, ERROR or DISABLED
func Level(name string) (zerolog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return zerolog.DebugLevel, nil
	case "", "INFO":
		return zerolog.InfoLevel, nil
	case "WARN":
		return zerolog.WarnLevel, nil
	case "ERROR":
		return zerolog.ErrorLevel, nil
	case "DISABLED":
		return zerolog.Disabled, nil
	}
	return zerolog.NoLevel, fmt.Errorf("incorrect log level %s", name)
}

// Init sets the global level and routes log output to a console writer on w (stderr when nil)
func Init(level string, w io.Writer) error {
	parsed, err := Level(level)
	if err != nil {
		return err
	}
	if w == nil {
		w = os.Stderr
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: true})
	log.Debug().Str("level", parsed.String()).Msg("logger initialized")
	return nil
}
