package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"librarian/internal/platform/config"
	"librarian/internal/platform/logger"
)

func newMigrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded schema migrations to the configured SQL store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(*envFile); err != nil {
				return err
			}
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if cfg.Store.Driver == config.DriverMemory {
				return fmt.Errorf("STORE_DRIVER=%s has no schema to migrate", config.DriverMemory)
			}

			log := logger.New(cfg.LogLevel)
			st, err := openStores(cmd.Context(), cfg.Store, log)
			if err != nil {
				return err
			}
			defer st.pool.Close() //nolint:errcheck // process exits next

			fmt.Fprintf(cmd.OutOrStdout(), "migrated %s store\n", st.pool.Driver())
			return nil
		},
	}
}
