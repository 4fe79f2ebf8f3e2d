package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storerank/internal/core/domain"
)

func testEvent() domain.MutationEvent {
	return domain.MutationEvent{
		Version: domain.MutationEventVersion,
		Entity:  domain.EntitySponsorship,
		Op:      "pause",
		ID:      12,
		TS:      time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublishEncodesEvent(t *testing.T) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev domain.MutationEvent
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		want := testEvent()
		if ev.Entity != want.Entity || ev.Op != want.Op || ev.ID != want.ID || !ev.TS.Equal(want.TS) {
			return errors.New("event changed in transit")
		}
		return nil
	})

	pub := NewPublisher(producer, "catalog-mutations")
	require.NoError(t, pub.Publish(context.Background(), testEvent()))
	require.NoError(t, pub.Close())
}

func TestPublishSendFailure(t *testing.T) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := NewPublisher(producer, "catalog-mutations")
	err := pub.Publish(context.Background(), testEvent())
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, pub.Close())
}

func TestPublishRejectsInvalidEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	pub := NewPublisher(producer, "catalog-mutations")

	err := pub.Publish(context.Background(), domain.MutationEvent{Entity: "order"})
	assert.Error(t, err)
	require.NoError(t, pub.Close())
}
