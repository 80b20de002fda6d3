package main

import (
	"log/slog"
	"os"

	"github.com/briangreenhill/extrack/internal/activity"
	"github.com/briangreenhill/extrack/internal/config"
)

var version = "dev"

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	activityService := activity.NewService(logger)
	cli := activity.NewCLI(os.Stdout, logger, activityService, cfg, version)

	if err := cli.Run(os.Args[1:]); err != nil {
		logger.Error("Error running extrack", slog.Any("error", err))
		os.Exit(1)
	}
}
