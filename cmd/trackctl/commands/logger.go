package commands

import (
	"os"

	"github.com/rs/zerolog"
)

// zerologAdapter exposes a zerolog console logger through the tracking.Logger
// interface.
type zerologAdapter struct {
	log zerolog.Logger
}

func newZerologAdapter() *zerologAdapter {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()

	return &zerologAdapter{log: logger}
}

func (a *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	a.log.Debug().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	a.log.Info().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	a.log.Warn().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	a.log.Error().Fields(fields).Msg(msg)
}
