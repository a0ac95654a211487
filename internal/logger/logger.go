// Package logger builds the zap logger used for diagnostics.
//
// User-facing output goes to stdout through progress events; the logger
// writes structured records to stderr, or to a file when stderr is in use
// by a terminal UI.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production zap logger at the given level
// ("debug", "info", "warn" or "error") writing to output, which is
// "stderr", "stdout" or a file path opened for appending.
func New(level, output string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.LevelKey = "level"
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{output}

	return config.Build()
}
