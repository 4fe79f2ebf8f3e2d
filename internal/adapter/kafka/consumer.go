package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"storerank/internal/config/configs"
	"storerank/internal/core/domain"
	"storerank/internal/core/port"
)

const (
	retryBackoff = 2 * time.Second
	// Per-process groups are abandoned on restart; let the broker drop
	// their committed offsets quickly.
	groupRetention = time.Hour
)

// Consumer applies mutation events published by any instance to this
// process's ranking cache. Each consumer joins its own group so that every
// process receives every event.
type Consumer struct {
	cfg     configs.Kafka
	groupID string
	inv     port.Invalidator
	logger  *slog.Logger
}

func NewConsumer(cfg configs.Kafka, inv port.Invalidator, logger *slog.Logger) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{cfg: cfg, groupID: instanceGroupID(cfg.GroupID), inv: inv, logger: logger}
}

// GroupID returns the consumer group this process joins.
func (c *Consumer) GroupID() string { return c.groupID }

func instanceGroupID(prefix string) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return prefix + "-" + host + "-" + uuid.NewString()[:8]
}

// Start joins the consumer group and blocks until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	if c.inv == nil {
		return errors.New("kafka consumer: missing invalidator")
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_5_0_0
	cfg.Consumer.Group.Session.Timeout = c.cfg.SessionTimeout
	cfg.Consumer.Group.Heartbeat.Interval = c.cfg.Heartbeat
	cfg.Consumer.Group.Rebalance.Timeout = c.cfg.RebalanceTimeout
	// Events older than this process are irrelevant: its cache started empty.
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	cfg.Consumer.Offsets.AutoCommit.Enable = true
	cfg.Consumer.Offsets.Retention = groupRetention

	group, err := sarama.NewConsumerGroup(c.cfg.Brokers, c.groupID, cfg)
	if err != nil {
		return fmt.Errorf("create consumer group: %w", err)
	}
	defer func() { _ = group.Close() }()

	handler := &groupHandler{process: c.ProcessOne}
	c.logger.Info("kafka invalidation consumer starting",
		slog.Any("brokers", c.cfg.Brokers),
		slog.String("topic", c.cfg.Topic),
		slog.String("group", c.groupID))

	for {
		if err = group.Consume(ctx, []string{c.cfg.Topic}, handler); err != nil && ctx.Err() == nil {
			c.logger.Error("kafka consumer error", slog.Any("error", err))
			select {
			case <-ctx.Done():
			case <-time.After(retryBackoff):
			}
		}
		if ctx.Err() != nil {
			c.logger.Info("kafka invalidation consumer shutting down")
			return nil
		}
	}
}

// ProcessOne invalidates the local cache for one event. Undecodable events
// are logged and skipped so that one bad message cannot stall the group.
func (c *Consumer) ProcessOne(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var ev domain.MutationEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		c.logger.Warn("skipping undecodable mutation event",
			slog.String("topic", msg.Topic),
			slog.Int("partition", int(msg.Partition)),
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err))
		return nil
	}
	if err := ev.Validate(); err != nil {
		c.logger.Warn("skipping invalid mutation event",
			slog.Int64("offset", msg.Offset), slog.Any("error", err))
		return nil
	}

	c.inv.Invalidate(ctx, "remote_"+string(ev.Entity))
	c.logger.Debug("remote mutation applied",
		slog.String("entity", string(ev.Entity)),
		slog.String("op", ev.Op),
		slog.Int64("id", ev.ID))
	return nil
}
