package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"trainingdiary/internal/auth"
	"trainingdiary/internal/authn"
	"trainingdiary/internal/cache"
	"trainingdiary/internal/config"
	"trainingdiary/internal/db"
	"trainingdiary/internal/handler"
	"trainingdiary/internal/logging"
	"trainingdiary/internal/router"
	"trainingdiary/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Training Diary API
// @version 1.0.0
// @description Personal training diary: trainings, exercises and series owned by authenticated users.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey AuthToken
// @in header
// @name x-auth
// @description Token returned in the x-auth header of register and login.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := db.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "store init failed", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}

	var cacheClient *cache.Client
	if cfg.RedisEnabled {
		cacheClient = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := cacheClient.Ping(ctx); err != nil {
			logger.Warn(ctx, "redis unreachable, user lookups go to the store", "addr", cfg.RedisAddr, "error", err)
		}
	}

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(stores.Users, tokenService, cacheClient, cfg.BcryptCost)
	userService := service.NewUserService(stores.Users, cacheClient)
	trainingService := service.NewTrainingService(stores.Trainings)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(
		e,
		cfg,
		logger,
		authn.Required(tokenService, userService, logger),
		handler.NewInfoHandler(cfg.APIName, cfg.APIVersion),
		handler.NewAuthHandler(authService, logger),
		handler.NewUserHandler(),
		handler.NewTrainingHandler(trainingService, logger),
	)

	addr := ":" + cfg.ServerPort
	go func() {
		logger.Info(ctx, "server started", "addr", addr, "store", cfg.StoreDriver, "swagger", "/swagger/index.html")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "server start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "server shutdown", "error", err)
	}
	if err := stores.Close(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "store close", "error", err)
	}
	if err := cacheClient.Close(); err != nil {
		logger.Error(shutdownCtx, "cache close", "error", err)
	}
	logger.Info(shutdownCtx, "server stopped")
}
