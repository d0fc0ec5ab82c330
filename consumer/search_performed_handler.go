package consumer

import (
	"context"
	"time"

	"github.com/Shopify/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/quickcare/backend-api-go/events"
	log "github.com/quickcare/backend-api-go/pkg/logger"
	"go.uber.org/zap"
)

func (consumer *Consumer) searchPerformedHandle(ctx context.Context, message *sarama.ConsumerMessage) {
	var payload events.SearchPerformed
	if err := jsoniter.Unmarshal(message.Value, &payload); err != nil {
		log.Logger().Error("searchPerformedHandle deserialization error", zap.String("payload", string(message.Value)), zap.Error(err))
		return
	}
	if payload.ID == "" {
		log.Logger().Error("search event without id", zap.String("payload", string(message.Value)))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := consumer.store.InsertSearch(ctx, payload); err != nil {
		log.Logger().Error("error inserting search history", zap.String("searchID", payload.ID), zap.Error(err))
	}
}
