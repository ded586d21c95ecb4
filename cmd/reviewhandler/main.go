package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spacesedan/reviewlens/config"
	"github.com/spacesedan/reviewlens/internal/app"
	"github.com/spacesedan/reviewlens/internal/logging"
)

var cfg *config.Config

// init runs once per Lambda cold start
func init() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	var err error
	cfg, err = config.Load()
	if err != nil {
		slog.Error("Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogLevel, cfg.LogColor)
	slog.Info("Lambda cold start: configuration loaded", slog.String("environment", cfg.AppEnv))
}

func main() {
	h, err := app.NewReviewHandler(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to initialize review handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}
