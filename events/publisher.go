package events

import (
	"github.com/Shopify/sarama"
	jsoniter "github.com/json-iterator/go"
	log "github.com/quickcare/backend-api-go/pkg/logger"
	"go.uber.org/zap"
)

// Publisher sends events on a best-effort basis: failures are logged and
// never returned to the caller.
type Publisher struct {
	producer sarama.SyncProducer
}

// NewPublisher accepts a nil producer, in which case events are dropped.
func NewPublisher(producer sarama.SyncProducer) *Publisher {
	return &Publisher{producer: producer}
}

func (p *Publisher) SearchPerformed(e SearchPerformed) {
	p.publish(SearchPerformedTopicName, e.ID, e)
}

func (p *Publisher) UserCreated(e UserCreated) {
	p.publish(UserCreatedTopicName, e.ID, e)
}

func (p *Publisher) publish(topic, key string, payload interface{}) {
	if p == nil || p.producer == nil {
		return
	}

	bytes, err := jsoniter.Marshal(payload)
	if err != nil {
		log.Logger().Error("could not encode event", zap.String("topic", topic), zap.Error(err))
		return
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(bytes),
	})
	if err != nil {
		log.Logger().Error("failed to send event", zap.String("topic", topic), zap.String("key", key), zap.Error(err))
	}
}
