package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/quickcare/backend-api-go/broker"
	"github.com/quickcare/backend-api-go/config"
	"github.com/quickcare/backend-api-go/consumer"
	log "github.com/quickcare/backend-api-go/pkg/logger"
	"github.com/quickcare/backend-api-go/repository"
	"go.uber.org/zap"
)

const consumerGroupName = "search_history_consumer"

var clientCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "go_consumer_metrics",
}, []string{"topic"})

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Logger().Fatal("could not load config", zap.Error(err))
	}
	log.SetDebug(cfg.IsLocal())

	http.HandleFunc("/healthcheck", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	http.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := http.ListenAndServe(cfg.ConsumerHTTPAddr, nil); err != nil {
			fmt.Fprintf(os.Stderr, "server could not started or stopped: %s", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

	client, err := broker.NewConsumerGroup(cfg.Brokers(), consumerGroupName)
	if err != nil {
		log.Logger().Fatal("could not create consumer group", zap.Error(err))
	}

	consumer.NewConsumer(client, repo, clientCounter).Start(ctx)

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-ctx.Done():
		log.Logger().Info("terminating: context cancelled")
	case <-sigterm:
		log.Logger().Info("terminating: via signal")
	}

	cancel()
	if err = client.Close(); err != nil {
		log.Logger().Error("error closing client", zap.Error(err))
	}
}
