// Package cli holds the coursesvc command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

const (
	defaultConfigPath = "configs/config.yaml"
	defaultEnvFile    = ".env"
)

type rootOptions struct {
	configPath string
	envFile    string
}

// NewRootCmd builds the command tree. Running it without a subcommand serves the API.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:               "coursesvc",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "Course catalogue REST API",
		Long:              `coursesvc serves the /api/v1/courses REST API and manages its database`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnvFile(opts.envFile); err != nil {
				logger.Error().Err(err).Msg("Failed to load env file")
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath, "path to the YAML config file")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", defaultEnvFile, "optional .env file loaded before the config")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newSeedCmd(opts))

	return cmd
}

// Execute runs the command tree and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
