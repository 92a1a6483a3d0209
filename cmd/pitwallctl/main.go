package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/zoobzio/clockz"

	"redline-garage/pitwall/internal/auth"
	"redline-garage/pitwall/internal/config"
	"redline-garage/pitwall/internal/db"
	"redline-garage/pitwall/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "pitwallctl",
	Short: "Operator tooling for the Pitwall API",
	Long: `pitwallctl issues development tokens and applies the database schema.

Configuration is read from .env and the environment, the same way the
server reads it.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	tokenCmd.Flags().String("user", "", "user id placed in the token subject (required)")
	tokenCmd.Flags().String("name", "", "display name claim")
	tokenCmd.Flags().String("email", "", "email claim")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(migrateCmd)
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a signed bearer token for local testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		userID, _ := cmd.Flags().GetString("user")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		token, err := auth.NewTokenVerifier(cfg.JWTSecret, cfg.JWTIssuer, clockz.RealClock).Issue(userID, name, email, ttl)
		if err != nil {
			return fmt.Errorf("failed to issue token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := logging.Init(cfg.AppEnv); err != nil {
			return err
		}
		defer logging.Close()

		gormDB, err := db.InitPostgresORM(cfg.Postgres.DSN())
		if err != nil {
			return err
		}
		if err := db.Migrate(gormDB); err != nil {
			return err
		}

		logging.Info("Schema migrated", "database", cfg.Postgres.DB)
		return nil
	},
}
