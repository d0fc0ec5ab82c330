package broker

import (
	"errors"

	"github.com/Shopify/sarama"
)

var ErrNoBrokers = errors.New("no kafka brokers configured")

func NewProducer(brokers []string) (sarama.SyncProducer, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	config := sarama.NewConfig()
	// Return success is required for sync producer.
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForLocal

	return sarama.NewSyncProducer(brokers, config)
}
