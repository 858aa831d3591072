package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/edustack/coachhub/internal/bootstrap"
	"github.com/edustack/coachhub/internal/pkg/logger"
)

// @title CoachHub API
// @version 1.0
// @description Coaching center directory, book marketplace, demo class booking and AI tutoring for students.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is a development convenience; deployments set real env vars
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	app, err := bootstrap.NewApp(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to start application")
	}
	defer app.Close()

	go func() {
		if err := app.Server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
	logger.Info().Msg("Server stopped")
}
