package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"trainingdiary/internal/auth"
	"trainingdiary/internal/cache"
	"trainingdiary/internal/config"
	"trainingdiary/internal/db"
	"trainingdiary/internal/logging"
	"trainingdiary/internal/seed"
	"trainingdiary/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.NewJSON(os.Stderr, cfg.LogLevel)

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error(context.Background(), "seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	logger.Info(ctx, "starting seed", "store", cfg.StoreDriver, "reset", cfg.ResetDB)

	stores, err := db.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("store init: %w", err)
	}
	defer func() {
		if err := stores.Close(ctx); err != nil {
			logger.Error(ctx, "store close", "error", err)
		}
	}()

	// Issued tokens invalidate the server's cached user entries.
	var cacheClient *cache.Client
	if cfg.RedisEnabled {
		cacheClient = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer cacheClient.Close()
	}

	authService := service.NewAuthService(stores.Users, auth.NewTokenService(cfg.JWTSecret), cacheClient, cfg.BcryptCost)
	trainingService := service.NewTrainingService(stores.Trainings)

	results, err := seed.New(authService, trainingService, logger).Run(ctx)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("%s\t%s\tx-auth: %s\n", r.User.Email, r.User.ID, r.Token)
	}
	logger.Info(ctx, "seed completed", "users", len(results))
	return nil
}
