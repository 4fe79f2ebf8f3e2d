// Package kafka carries mutation events between service instances so that
// every process drops its cached rankings after a change made elsewhere.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"

	"storerank/internal/config/configs"
	"storerank/internal/core/domain"
	"storerank/internal/core/port"
)

// NewSyncProducer builds a producer that waits for the leader to
// acknowledge each event.
func NewSyncProducer(cfg configs.Kafka) (sarama.SyncProducer, error) {
	sc := sarama.NewConfig()
	sc.Version = sarama.V2_5_0_0
	sc.Producer.RequiredAcks = sarama.WaitForLocal
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = 3
	p, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("create producer: %w", err)
	}
	return p, nil
}

// Publisher implements port.EventPublisher.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

var _ port.EventPublisher = (*Publisher)(nil)

func NewPublisher(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topic}
}

// Publish sends ev keyed by entity and id, so events about one record stay
// ordered within a partition.
func (p *Publisher) Publish(_ context.Context, ev domain.MutationEvent) error {
	if err := ev.Validate(); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(string(ev.Entity) + ":" + strconv.FormatInt(ev.ID, 10)),
		Value: sarama.ByteEncoder(b),
	})
	if err != nil {
		return fmt.Errorf("send to %s: %w", p.topic, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
