package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bms-ph/records-system/internal/api"
	"github.com/bms-ph/records-system/internal/infrastructure/config"
	mongodb "github.com/bms-ph/records-system/internal/infrastructure/db/mongo"
	redisdb "github.com/bms-ph/records-system/internal/infrastructure/db/redis"
	"github.com/bms-ph/records-system/internal/infrastructure/queue"
	"github.com/bms-ph/records-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewResidentRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("resident index creation failed")
	}
	if err := mongodb.NewDocumentRequestRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("document request index creation failed")
	}

	lastSeen := queue.NewLastSeenRecorder(0, userRepo, log)
	lastSeen.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, log, lastSeen)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting records api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
