package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quickcare/backend-api-go/app"
	"github.com/quickcare/backend-api-go/auth"
	"github.com/quickcare/backend-api-go/broker"
	"github.com/quickcare/backend-api-go/cache"
	"github.com/quickcare/backend-api-go/config"
	"github.com/quickcare/backend-api-go/events"
	log "github.com/quickcare/backend-api-go/pkg/logger"
	"github.com/quickcare/backend-api-go/recommender"
	"github.com/quickcare/backend-api-go/repository"
	"go.uber.org/zap"
)

// @title						QuickCare API
// @version					    1.0
// @description				    Hospital recommendations near a location, with accounts and profiles.
// @BasePath					/
// @schemes					    https http
// @license.name				Apache License, Version 2.0 (the "License")
// @securityDefinitions.apiKey	ApiKeyAuth
// @in							header
// @name						X-Api-Key
// @securityDefinitions.apiKey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Logger().Fatal("could not load config", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		log.Logger().Fatal("invalid config", zap.Error(err))
	}
	log.SetDebug(cfg.IsLocal())

	ctx := context.Background()
	repo, err := repository.New(ctx, cfg.DBConnStr)
	if err != nil {
		log.Logger().Fatal("could not connect to database", zap.Error(err))
	}
	defer repo.Close()

	if err := repo.Ping(ctx); err != nil {
		log.Logger().Fatal("database is not reachable", zap.Error(err))
	}
	if err := repo.Migrate(ctx); err != nil {
		log.Logger().Fatal("could not migrate database", zap.Error(err))
	}

	cacheRepo := cache.NewRedisRepository(cfg.RedisAddr, cfg.RedisPassword)
	defer cacheRepo.Close()

	if err := cacheRepo.Ping(); err != nil {
		log.Logger().Warn("redis is not reachable, responses are not cached", zap.Error(err))
	}

	kafkaProducer, err := broker.NewProducer(cfg.Brokers())
	if err != nil {
		log.Logger().Warn("failed to init kafka producer, events are dropped", zap.Error(err))
	} else {
		defer kafkaProducer.Close()
	}

	client := recommender.NewClient(cfg.RecommenderAPIURL)

	application := app.New(app.Dependencies{
		APIKey:          cfg.APIKey,
		Users:           repo,
		Cache:           cacheRepo,
		Recommendations: repository.NewHospitalRepository(client),
		Identity:        auth.NewPasswordProvider(repo),
		Tokens:          auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiryMinutes)*time.Minute),
		Publisher:       events.NewPublisher(kafkaProducer),
	})

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT)
	signal.Notify(c, syscall.SIGTERM)

	go func() {
		_ = <-c
		fmt.Println("application gracefully shutting down..")
		_ = application.Shutdown()
	}()

	if err := application.Listen(cfg.HTTPAddr); err != nil {
		log.Logger().Fatal("app error", zap.Error(err))
	}
}
