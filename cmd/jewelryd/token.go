package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"jewelry-production-service/internal/auth"
)

var tokenUserID int64

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for an existing active user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenUserID <= 0 {
			return errors.New("--user-id is required")
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		u, err := a.store.Users().GetByID(cmd.Context(), tokenUserID)
		if err != nil {
			return err
		}
		if !u.IsActive {
			return fmt.Errorf("user %d is inactive", u.ID)
		}

		tok, exp, err := auth.NewTokenService(a.cfg.JWTSecret, a.cfg.TokenTTL).Issue(u)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "token for %s (%s), expires %s\n", u.Username, u.Role, exp.Format(time.RFC3339))
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().Int64Var(&tokenUserID, "user-id", 0, "id of the user the token is for")
	rootCmd.AddCommand(tokenCmd)
}
