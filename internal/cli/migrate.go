package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yigit/coursehub/internal/bootstrap"
	"github.com/yigit/coursehub/internal/db"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts.configPath)
			if err != nil {
				return err
			}

			if cfg.UsesMemoryStore() {
				lgr.Warn().Msg("In-memory course store has no schema, nothing to migrate")
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to migrate")
				return nil
			}

			database, err := db.NewPostgresDB(cmd.Context(), cfg)
			if err != nil {
				lgr.Error().Err(err).Msg("Failed to connect to database")
				return err
			}
			defer database.Close()

			if err := bootstrap.RunMigrations(cmd.Context(), database.Pool, lgr); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
