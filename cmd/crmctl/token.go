package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	jwttoken "barhub/internal/jwt_token"
	"barhub/internal/platform/config"
	id "barhub/pkg/domain"
)

func tokenCmd() *cobra.Command {
	var (
		tenant  string
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a tenant-scoped bearer token signed with JWT_SIGNING_KEY",
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := id.ParseTenantID(tenant)
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.UsesDevSigningKey() {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: signing with the development key")
			}

			tokens := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, jwttoken.Issuer, jwttoken.Audience)
			token, err := tokens.GenerateTenantToken(tenantID, subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&tenant, "tenant", "", "tenant ID (UUID)")
	cmd.Flags().StringVar(&subject, "subject", "crmctl", "token subject, for log correlation")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}
