package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jewelry-production-service/internal/config"
	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/repository/postgresql"
)

var (
	userUsername string
	userFullName string
	userRole     string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage workshop accounts",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an owner or worker account",
	RunE: func(cmd *cobra.Command, args []string) error {
		role := entity.Role(strings.ToLower(userRole))
		if !role.Valid() {
			return fmt.Errorf("--role must be one of owner, caster, filer, setter, polisher")
		}
		if strings.TrimSpace(userUsername) == "" || strings.TrimSpace(userFullName) == "" {
			return fmt.Errorf("--username and --name are required")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Storage != config.StoragePostgres {
			return fmt.Errorf("user add needs STORAGE=%s", config.StoragePostgres)
		}
		pool, err := postgresql.NewPool(cmd.Context(), cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("pg: %w", err)
		}
		defer pool.Close()

		u, err := postgresql.NewUserRepository(pool).Create(cmd.Context(), strings.TrimSpace(userUsername), strings.TrimSpace(userFullName), role)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s created user %d %s (%s)\n", color.GreenString("✓"), u.ID, u.Username, u.Role)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userUsername, "username", "", "login name")
	userAddCmd.Flags().StringVar(&userFullName, "name", "", "full name shown in reports")
	userAddCmd.Flags().StringVar(&userRole, "role", "", "owner, caster, filer, setter or polisher")
	userCmd.AddCommand(userAddCmd)
	rootCmd.AddCommand(userCmd)
}
