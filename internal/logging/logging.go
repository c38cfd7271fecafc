// Package logging configures the global zap logger for the CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New builds a logger writing to stderr; stdout belongs to the walkthrough.
// Debug lowers the level, format picks the encoder.
func New(debug bool, format string) (logger *zap.Logger, err error) {
	var cfg zap.Config

	switch format {
	case FormatConsole:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.Development = false
	case FormatJSON:
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		err = fmt.Errorf("unknown log format %q", format)
		return
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

// Setup builds a logger with New and installs it as the zap global.
func Setup(debug bool, format string) error {
	logger, err := New(debug, format)
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)
	return nil
}
