package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"frontdesk/config"
	"frontdesk/shared/constant"
	"frontdesk/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Helper()

	original, level := log.Logger, zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.ErrorWithStack(errors.New("room grid encode failed"))

	assert.Contains(t, buf.String(), "room grid encode failed")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     zerolog.Level
	}{
		{name: "debug", logLevel: "debug", want: zerolog.DebugLevel},
		{name: "info", logLevel: "info", want: zerolog.InfoLevel},
		{name: "warn", logLevel: "warn", want: zerolog.WarnLevel},
		{name: "error", logLevel: "error", want: zerolog.ErrorLevel},
		{name: "disabled", logLevel: "disabled", want: zerolog.Disabled},
		{name: "invalid falls back to trace", logLevel: "verbose", want: zerolog.TraceLevel},
		{name: "empty parses as no level", logLevel: "", want: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetLogLevel_ProductionWritesJSON(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "frontdesk"

	var buf bytes.Buffer

	logger.SetLogLevelTo(cfg, &buf)
	log.Info().Int64("booking_id", 21).Msg("booking created")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "frontdesk", line["app"])
	assert.Equal(t, "booking created", line["message"])
	assert.InDelta(t, 21, line["booking_id"], 0)
}

func TestSetLogLevel_ProductionStartIsQuietAboveDebug(t *testing.T) {
	restore(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction
	cfg.Server.LogLevel = "info"

	var buf bytes.Buffer

	logger.SetLogLevelTo(cfg, &buf)

	assert.Empty(t, buf.String())
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
