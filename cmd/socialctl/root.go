package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "github.com/maheshrc27/postflow-tools/configs"
	"github.com/maheshrc27/postflow-tools/internal/app"
)

var (
	envFile string
	cfg     *config.Config
	appInst *app.App
)

var rootCmd = &cobra.Command{
	Use:   "socialctl",
	Short: "Publish, schedule and analyze social media posts",
	Long: `socialctl exposes the postflow tools (create_post, schedule_posts,
get_analytics, generate_hashtags, optimize_media, get_trending and
manage_calendar) over HTTP, a line-delimited JSON stdio stream, or one-off
command line calls.

Platform credentials are read from the environment or a .env file.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: closeApp,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(stdioCmd)
	rootCmd.AddCommand(tokenCmd)
}

func initializeApp(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg = config.LoadConfig()
	slog.SetDefault(app.SetupLogger(cfg.LogLevel))

	// token only needs the secret key
	if cmd.Name() == tokenCmd.Name() {
		return nil
	}

	a, err := app.New(getContext(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	appInst = a

	return nil
}

func closeApp(cmd *cobra.Command, args []string) error {
	if appInst != nil {
		appInst.Close()
		appInst = nil
	}
	return nil
}

func getContext() context.Context {
	return context.Background()
}
