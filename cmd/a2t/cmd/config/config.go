package config

import (
	"github.com/spf13/cobra"

	"mp3-transcriber/cmd/a2t/cmd/runtime"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the effective configuration as YAML.

- Values come from the --config file, .env and environment variables
- Secrets are masked`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := runtime.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		return cfg.Dump(cmd.OutOrStdout())
	},
}
