package main

import (
	"log/slog"
	"os"

	"travelo-api/internal/app"
	"travelo-api/internal/logger"
)

func main() {
	logHandler := logger.New(os.Stdout, os.Getenv("APP_ENV"), slog.LevelInfo)
	slog.SetDefault(slog.New(logHandler))

	application, err := app.New()
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		slog.Error("application run failed", "error", err)
		os.Exit(1)
	}
}
