// Package runtime holds state shared by all a2t subcommands.
package runtime

import (
	"go.uber.org/zap"

	"mp3-transcriber/internal/app/logging"
	"mp3-transcriber/internal/config"
)

type Options struct {
	ConfigFile string
	Verbose    bool
}

// Global is bound to the root command's persistent flags.
var Global Options

// Load reads .env, the config file and the environment, then builds the logger.
func Load() (*config.Config, *zap.Logger, error) {
	if _, err := config.LoadEnv(); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(Global.ConfigFile)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel
	if Global.Verbose {
		level = "debug"
	}
	logger, err := logging.NewLogger(cfg.Environment != "production", level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
