package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"resto-backend/config"
	"resto-backend/internal/database"
	"resto-backend/internal/logger"
	"resto-backend/internal/middleware"
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Development data and token tool for the restaurant backend",
	PersistentPreRun: func(*cobra.Command, []string) {
		// .env is optional; the script may run with a plain environment.
		_ = godotenv.Load()
	},
}

var (
	adminSubject  string
	adminEmail    string
	adminPassword string
)

// seedCmd fills an empty database with reference data and one administrator.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert roles, a location, dish categories and an administrator",
	RunE:  runSeed,
}

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a bearer token signed with JWT_SECRET",
	RunE:  runToken,
}

func init() {
	seedCmd.Flags().StringVar(&adminSubject, "admin-subject", "", "token subject for the administrator (random when empty)")
	seedCmd.Flags().StringVar(&adminEmail, "admin-email", "", "administrator email")
	seedCmd.Flags().StringVar(&adminPassword, "admin-password", "admin123", "administrator password")

	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "token subject (employee user_id)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(seedCmd, tokenCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log.Level, "console", "resto-seeder")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()
	res, err := database.SeedAll(ctx, db, database.SeedOptions{
		AdminRoleID:   cfg.Schedule.AdminRoleID,
		AdminUserID:   adminSubject,
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	}, log)
	if err != nil {
		log.Error("seeding failed", zap.Error(err))
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "admin subject: %s\n", res.AdminUserID)
	return nil
}

func runToken(cmd *cobra.Command, _ []string) error {
	secret := config.GetEnv("JWT_SECRET", "")
	if secret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	tok, err := middleware.SignToken(secret, tokenSubject, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
