package broker

import (
	"github.com/Shopify/sarama"
)

func NewConsumerGroup(brokers []string, group string) (sarama.ConsumerGroup, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	config := sarama.NewConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(brokers, group, config)
}
