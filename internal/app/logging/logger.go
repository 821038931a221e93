package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apperrors "mp3-transcriber/internal/app/errors"
)

// NewLogger creates a zap logger. Development mode writes colored console
// output; otherwise JSON. level is one of debug, info, warn, error.
func NewLogger(development bool, level string) (*zap.Logger, error) {
	var config zap.Config

	if development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, apperrors.Mark(apperrors.InvalidField("log_level", level), apperrors.ErrInvalidConfig)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	// stdout carries transcripts in the CLI
	config.OutputPaths = []string{"stderr"}

	return config.Build()
}

// MustNewLogger creates a new logger and panics if it fails
func MustNewLogger(development bool, level string) *zap.Logger {
	logger, err := NewLogger(development, level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}
