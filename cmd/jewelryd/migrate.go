package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jewelry-production-service/internal/config"
	"jewelry-production-service/internal/repository/postgresql"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Storage != config.StoragePostgres {
			return fmt.Errorf("migrate needs STORAGE=%s", config.StoragePostgres)
		}

		pool, err := postgresql.NewPool(cmd.Context(), cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("pg: %w", err)
		}
		defer pool.Close()

		if err := postgresql.Migrate(cmd.Context(), pool); err != nil {
			return err
		}
		fmt.Printf("%s schema is up to date (%s)\n", color.GreenString("✓"), config.RedactDSN(cfg.PostgresDSN))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
