package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/staylog/internal/auth"
	"github.com/pkordes/staylog/internal/config"
)

func addToken(topLevel *cobra.Command) {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for --user signed with JWT_SECRET.",
		Example: `
staylog token --user alice
staylog token --user alice --ttl 1h
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			userID, err := requireUser()
			if err != nil {
				return err
			}
			cfg, err := config.Read()
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			if !cmd.Flags().Changed("ttl") {
				ttl = cfg.TokenTTL
			}
			token, err := auth.NewIssuer(cfg.JWTSecret, ttl).Issue(userID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime; defaults to TOKEN_TTL_HOURS, 0 never expires")
	topLevel.AddCommand(cmd)
}
