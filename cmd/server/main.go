package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/waseertanvir/walkies-sub000/internal/bus"
	"github.com/waseertanvir/walkies-sub000/internal/common/clock"
	"github.com/waseertanvir/walkies-sub000/internal/common/uuid"
	"github.com/waseertanvir/walkies-sub000/internal/config"
	"github.com/waseertanvir/walkies-sub000/internal/handlers/httpapi"
	"github.com/waseertanvir/walkies-sub000/internal/logger"
	"github.com/waseertanvir/walkies-sub000/internal/repositories/pet"
	"github.com/waseertanvir/walkies-sub000/internal/repositories/profile"
	"github.com/waseertanvir/walkies-sub000/internal/repositories/session"
	"github.com/waseertanvir/walkies-sub000/internal/services/matching"
	"github.com/waseertanvir/walkies-sub000/internal/services/tracking"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).Fatal("Failed to connect to Redis")
	}

	// Initialize repositories
	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create session repository")
	}

	petRepo, err := pet.NewRedis(&pet.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create pet repository")
	}

	profileRepo, err := profile.NewRedis(&profile.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create profile repository")
	}

	// Initialize services
	matchingSvc, err := matching.New(&matching.Config{
		SessionRepo:   sessionRepo,
		PetRepo:       petRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create matching service")
	}

	trackingSvc, err := tracking.New(&tracking.Config{
		SessionRepo: sessionRepo,
		ProfileRepo: profileRepo,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create tracking service")
	}

	// Initialize presence bus
	presenceBus, err := bus.NewRedis(&bus.Config{
		RedisClient: redisClient,
		Logger:      log,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create presence bus")
	}

	// Initialize HTTP handler
	handler, err := httpapi.New(&httpapi.Config{
		MatchingService: matchingSvc,
		TrackingService: trackingSvc,
		Bus:             presenceBus,
		Logger:          log,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create HTTP handler")
	}

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Routes(),
	}

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("Server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Error shutting down server")
	}

	if err := redisClient.Close(); err != nil {
		log.WithError(err).Error("Error closing Redis client")
	}

	log.Info("Server has been shut down")
}
