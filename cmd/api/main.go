// Package main is the entry point for the asset management API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/relutech/asset-management/docs"
	"github.com/relutech/asset-management/internal/api"
	"github.com/relutech/asset-management/internal/infrastructure/bootstrap"
	"github.com/relutech/asset-management/internal/infrastructure/config"
	mongodb "github.com/relutech/asset-management/internal/infrastructure/db/mongo"
	redisdb "github.com/relutech/asset-management/internal/infrastructure/db/redis"
	"github.com/relutech/asset-management/pkg/logger"
)

// @title        Relutech Asset Management API
// @version      1.0
// @description  Internal asset and license management for developer accounts.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
// @description  Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	accountRepo := mongodb.NewAccountRepository(db)
	if err := bootstrap.Superuser(ctx, accountRepo, cfg.Bootstrap, log); err != nil {
		log.Fatal().Err(err).Msg("superuser bootstrap failed")
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret, cfg.TokenTTL, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
