// Command admintoken mints a bearer token for the moderation admin API.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bookexchange/covers/internal/auth"
	"github.com/bookexchange/covers/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "admintoken",
		Short: "Issue an admin JWT signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if cfg.IsProduction() && cfg.JWTSecret == "change_me_in_production" {
				return fmt.Errorf("refusing to sign with the default JWT_SECRET in production")
			}

			token, err := auth.IssueToken(cfg.JWTSecret, subject, auth.RoleAdmin, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "operator identity recorded in moderation logs")
	cmd.Flags().DurationVar(&ttl, "ttl", auth.DefaultTTL, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
