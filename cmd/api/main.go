package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/api"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/config"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/database"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/provider/rekognition"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	logger.Info("starting Faceproof API",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	// Rekognition provider
	providerCfg := rekognition.DefaultConfig()
	providerCfg.Region = cfg.AWSRegion
	faceProvider, err := rekognition.NewProvider(ctx, providerCfg,
		rekognition.WithLivenessThreshold(cfg.LivenessThreshold),
	)
	if err != nil {
		return fmt.Errorf("failed to create rekognition provider: %w", err)
	}

	// Setup router
	router := api.NewRouter(logger, &api.Dependencies{
		LivenessProvider:    faceProvider,
		FaceComparer:        faceProvider,
		ReferenceStore:      repository.NewReferenceStore(),
		AttemptRepo:         repository.NewAttemptRepository(pool),
		DB:                  pool,
		APIKey:              cfg.APIKey,
		SimilarityThreshold: cfg.SimilarityThreshold,
	})
	router.Setup()

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("server listening", slog.String("addr", addr))
		if err := router.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server...")
	if err := router.Shutdown(); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}

	<-shutdownCtx.Done()
	logger.Info("server stopped")

	return nil
}
