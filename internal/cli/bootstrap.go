// Package cli contains the tatlam subcommands.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tatlam/internal/config"
	"github.com/example/tatlam/internal/logging"
	"github.com/example/tatlam/internal/wire"
)

// RegisterGlobalFlags adds the flags shared by every subcommand to the
// root command.
func RegisterGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().String("config-dir", "", "directory holding .tatlam/config.json (default: working directory)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "emit structured JSON logs")
}

// bootstrap builds the wired container for one command invocation:
// config from file and environment, logger set up once, store opened.
func bootstrap(cmd *cobra.Command) (*wire.Container, error) {
	configDir, _ := cmd.Flags().GetString("config-dir")
	if configDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		configDir = cwd
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}

	opts := logging.OptionsFromEnv()
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		opts.Level = level
	}
	if structured, _ := cmd.Flags().GetBool("log-json"); structured {
		opts.Structured = true
	}

	logger, err := logging.Setup(opts)
	if err != nil {
		return nil, err
	}

	return wire.New(cfg, logger)
}
