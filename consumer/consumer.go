package consumer

import (
	"context"

	"github.com/Shopify/sarama"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/quickcare/backend-api-go/events"
	log "github.com/quickcare/backend-api-go/pkg/logger"
	"go.uber.org/zap"
)

type SearchStore interface {
	InsertSearch(ctx context.Context, search events.SearchPerformed) error
}

// Consumer implements sarama.ConsumerGroupHandler for the event topics.
type Consumer struct {
	Ready   chan bool
	store   SearchStore
	group   sarama.ConsumerGroup
	counter *prometheus.CounterVec
}

func NewConsumer(group sarama.ConsumerGroup, store SearchStore, counter *prometheus.CounterVec) *Consumer {
	return &Consumer{
		Ready:   make(chan bool),
		store:   store,
		group:   group,
		counter: counter,
	}
}

func (consumer *Consumer) Topics() []string {
	return []string{events.SearchPerformedTopicName}
}

// Start joins the group and blocks until the first session is set up.
func (consumer *Consumer) Start(ctx context.Context) {
	go func() {
		for {
			if err := consumer.group.Consume(ctx, consumer.Topics(), consumer); err != nil {
				log.Logger().Error("error from consumer", zap.Error(err))
			}
			// check if context was cancelled, signaling that the consumer should stop
			if ctx.Err() != nil {
				return
			}
			consumer.Ready = make(chan bool)
		}
	}()
	<-consumer.Ready
	log.Logger().Info("Sarama consumer up and running!...")
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the consumer as ready
	close(consumer.Ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			consumer.Handle(session.Context(), message)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// Handle processes one message. Malformed or unknown messages are logged
// and skipped so they never block the partition.
func (consumer *Consumer) Handle(ctx context.Context, message *sarama.ConsumerMessage) {
	if consumer.counter != nil {
		consumer.counter.With(prometheus.Labels{"topic": message.Topic}).Inc()
	}

	switch message.Topic {
	case events.SearchPerformedTopicName:
		consumer.searchPerformedHandle(ctx, message)
	default:
		log.Logger().Warn("message from unexpected topic", zap.String("topic", message.Topic))
	}
}
