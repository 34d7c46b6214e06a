package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maheshrc27/postflow-tools/pkg/utils"
)

var (
	tokenClientID string
	tokenTTL      time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the HTTP server",
	Long: `Mint a bearer token signed with SECRET_KEY.

Examples:
  socialctl token --client-id assistant --ttl 720h`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.SecretKey == "" {
			return errors.New("SECRET_KEY is not set")
		}

		token, err := utils.GenerateToken(cfg.SecretKey, tokenClientID, tokenTTL)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenClientID, "client-id", "socialctl", "client identifier embedded in the token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
}
