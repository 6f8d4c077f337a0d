package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"yogastudio/web/internal/authstate"
	"yogastudio/web/internal/backend"
	"yogastudio/web/internal/cache"
	"yogastudio/web/internal/config"
	"yogastudio/web/internal/handlers"
	"yogastudio/web/internal/jobs"
	"yogastudio/web/internal/log"
	"yogastudio/web/internal/server"
	"yogastudio/web/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment, cfg.Logging)

	ctx := context.Background()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect redis")
	}

	state := authstate.New()
	client := backend.New(cfg.Backend, state)

	var teachers service.TeacherAPI = client
	if redisClient != nil {
		teachers = cache.NewTeachers(client, redisClient, cfg.Redis.TeacherTTL, logger)
		logger.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TeacherTTL).Msg("teacher cache enabled")
	}

	handlerSet := handlers.NewHandlerSet(logger, cfg, state, client, teachers, redisClient)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	var scheduler *jobs.Scheduler
	if cfg.Expiry.Enabled {
		scheduler = jobs.NewScheduler(state, logger)
		if err := scheduler.Start(cfg.Expiry.Schedule); err != nil {
			logger.Error().Err(err).Msg("scheduler start failed")
			scheduler = nil
		}
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, scheduler, redisClient)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler, redisClient *redis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	if scheduler != nil {
		select {
		case <-scheduler.Stop().Done():
		case <-shutdownCtx.Done():
			logger.Warn().Msg("expiry check still running at shutdown")
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("redis close error")
		}
	}

	logger.Info().Msg("server exited cleanly")
}
