package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"draw-tool-backend/internal/common/config"
	"draw-tool-backend/internal/common/logger"
	drawhttp "draw-tool-backend/internal/features/draw/delivery/http"
	drawredis "draw-tool-backend/internal/features/draw/repository/redis"
	drawservice "draw-tool-backend/internal/features/draw/service"
	apphttp "draw-tool-backend/internal/http"
	"draw-tool-backend/internal/platform/redis"

	"github.com/rs/zerolog/log"
)

// @title       Draw Tool API
// @version     1.0
// @description Seeded, replayable Fisher-Yates draws.
// @BasePath    /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init("draw-tool-backend", cfg.Debug)

	ctx := context.Background()
	rdb, err := redis.Open(ctx, redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection established")

	repo := drawredis.NewRepository(rdb, cfg.Draw.RecordTTL)
	svc := drawservice.NewService(repo, drawservice.Options{
		MaxEntries: cfg.Draw.MaxEntries,
		KeepTrace:  cfg.Draw.KeepTrace,
	}, log.Logger)
	handler := drawhttp.NewHandler(svc, log.Logger)

	ping := apphttp.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	router := apphttp.NewRouter(cfg, handler, ping, log.Logger)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
