package events

import (
	"testing"
	"time"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	jsoniter "github.com/json-iterator/go"
	"github.com/quickcare/backend-api-go/hospitals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchPerformed(t *testing.T) {
	req := hospitals.SearchRequest{Latitude: 1, Longitude: 2, Disease: "Fever", TopN: 5}
	res := &hospitals.SearchResult{Success: true, Hospitals: []hospitals.Hospital{{Name: "A"}, {Name: "B"}}}
	now := time.Unix(1700000000, 0)

	e := NewSearchPerformed("s-1", "u-1", req, res, now)
	assert.Equal(t, SearchPerformed{ID: "s-1", UserID: "u-1", Latitude: 1, Longitude: 2, Condition: "Fever", TopN: 5, Count: 2, Success: true, Epoch: 1700000000}, e)

	e = NewSearchPerformed("s-2", "", req, nil, now)
	assert.False(t, e.Success)
	assert.Zero(t, e.Count)
}

func TestPublisherSendsJSON(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var e SearchPerformed
		if err := jsoniter.Unmarshal(val, &e); err != nil {
			return err
		}
		assert.Equal(t, "Fever", e.Condition)
		return nil
	})

	NewPublisher(producer).SearchPerformed(SearchPerformed{ID: "s-1", Condition: "Fever"})
	require.NoError(t, producer.Close())
}

func TestPublisherSwallowsErrors(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	NewPublisher(producer).UserCreated(UserCreated{ID: "u-1"})
	require.NoError(t, producer.Close())
}

func TestNilPublisherDropsEvents(t *testing.T) {
	var p *Publisher
	p.SearchPerformed(SearchPerformed{ID: "s-1"})
	NewPublisher(nil).UserCreated(UserCreated{ID: "u-1"})
}
