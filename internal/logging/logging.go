// Package logging builds the process logger. Setup is called exactly
// once by the entry point; the returned logger is handed to the
// components that need it instead of being read from package state.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment defaults, read by OptionsFromEnv.
const (
	EnvLevel      = "TATLAM_LOG_LEVEL"
	EnvStructured = "TATLAM_LOG_STRUCTURED"
)

// Options configures the process logger.
type Options struct {
	Level      string // zap level name, empty means the config default
	Structured bool   // JSON output instead of console output
}

// OptionsFromEnv reads logger options from the environment.
func OptionsFromEnv() Options {
	return Options{
		Level:      os.Getenv(EnvLevel),
		Structured: os.Getenv(EnvStructured) == "1",
	}
}

// Setup builds the logger. An unknown level name is a configuration
// error.
func Setup(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	if opts.Structured {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	if opts.Level != "" {
		level, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
