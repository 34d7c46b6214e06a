package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	config "github.com/maheshrc27/postflow-tools/configs"
	"github.com/maheshrc27/postflow-tools/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded", "error", err)
	}

	cfg := config.LoadConfig()
	slog.SetDefault(app.SetupLogger(cfg.LogLevel))

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Serve(); err != nil {
		slog.Error(err.Error())
		a.Close()
		os.Exit(1)
	}
}
