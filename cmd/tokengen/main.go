// Command tokengen issues bearer tokens for the voice-keeper API.
//
// Accounts are managed outside voice-keeper; an operator runs tokengen with
// the server's APP_TOKEN_SIGN_KEY to hand a user a token.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-voice-keeper/internal/config"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/service"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:          "tokengen --user-id <id>",
		Short:        "Issue a signed bearer token for a user",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetTokenConfig()
			if err != nil {
				return err
			}

			token, err := service.NewAuthService(*cfg, logger.Nop()).CreateToken(context.Background(), userID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token.String())
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user-id", 0, "id of the user the token is issued for")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
