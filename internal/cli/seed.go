package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yigit/coursehub/internal/bootstrap"
	"github.com/yigit/coursehub/internal/seed"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default course catalogue",
		Long:  `Create any default courses that are missing. Runs regardless of seed.enabled`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts.configPath)
			if err != nil {
				return err
			}

			dbPool, err := bootstrap.SetupDatabase(cmd.Context(), cfg, lgr)
			if err != nil {
				return err
			}
			if dbPool != nil {
				defer dbPool.Close()
			}

			deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
			if err != nil {
				return err
			}

			created, err := seed.CreateDefaultData(cmd.Context(), deps.Repos.CourseRepository, lgr)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d courses\n", created)
			return nil
		},
	}
}
