package logger

import (
	"frontdesk/config"
	"frontdesk/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a human readable console logger at trace level. SetLogLevel narrows it once
// the configuration is known.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies LOG_LEVEL, falling back to trace. In production the console writer is
// replaced by JSON lines on out tagged with the app name.
func SetLogLevel(config *config.Config) {
	setLogLevel(config, os.Stdout)
}

func setLogLevel(config *config.Config, out io.Writer) {
	if config.Server.Env == constant.ServerEnvProduction {
		log.Logger = zerolog.New(out).With().Timestamp().Str("app", config.App.Name).Logger()
	}

	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
	}

	// The level is applied first so the line below respects it.
	zerolog.SetGlobalLevel(level)

	if err != nil {
		log.Debug().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")

		return
	}

	log.Debug().Str("loglevel", level.String()).Msg("Desired log level detected.")
}
