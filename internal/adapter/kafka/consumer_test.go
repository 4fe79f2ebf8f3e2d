package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storerank/internal/config/configs"
	portmocks "storerank/internal/core/port/mocks"
)

type sess struct {
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *sess) Claims() map[string][]int32 { return nil }
func (s *sess) MemberID() string           { return "" }
func (s *sess) GenerationID() int32        { return 0 }
func (s *sess) MarkMessage(m *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	s.marked = append(s.marked, m.Offset)
	s.mu.Unlock()
}
func (s *sess) ResetOffset(_ string, _ int32, _ int64, _ string) {}
func (s *sess) MarkOffset(_ string, _ int32, _ int64, _ string)  {}
func (s *sess) Context() context.Context                         { return s.ctx }
func (s *sess) Commit()                                          {}

type claim struct {
	msgs chan *sarama.ConsumerMessage
}

func (c *claim) Topic() string                            { return "catalog-mutations" }
func (c *claim) Partition() int32                         { return 0 }
func (c *claim) InitialOffset() int64                     { return 0 }
func (c *claim) HighWaterMarkOffset() int64               { return 0 }
func (c *claim) Messages() <-chan *sarama.ConsumerMessage { return c.msgs }

func eventBytes(t *testing.T) []byte {
	t.Helper()
	b, err := json.Marshal(testEvent())
	require.NoError(t, err)
	return b
}

func TestConsumeClaimInvalidatesAndMarks(t *testing.T) {
	inv := portmocks.NewMockInvalidator(t)
	inv.EXPECT().Invalidate(mock.Anything, "remote_sponsorship").Return().Twice()
	c := NewConsumer(testKafkaConfig(), inv, nil)

	h := &groupHandler{process: c.ProcessOne}
	s := &sess{ctx: t.Context()}
	ch := make(chan *sarama.ConsumerMessage, 3)
	ch <- &sarama.ConsumerMessage{Topic: "catalog-mutations", Offset: 10, Value: eventBytes(t)}
	ch <- &sarama.ConsumerMessage{Topic: "catalog-mutations", Offset: 11, Value: []byte("{not json")}
	ch <- &sarama.ConsumerMessage{Topic: "catalog-mutations", Offset: 12, Value: eventBytes(t)}
	close(ch)

	require.NoError(t, h.ConsumeClaim(s, &claim{msgs: ch}))
	assert.Equal(t, []int64{10, 11, 12}, s.marked)
}

func TestConsumeClaimStopsOnProcessError(t *testing.T) {
	boom := errors.New("boom")
	h := &groupHandler{process: func(context.Context, *sarama.ConsumerMessage) error { return boom }}
	s := &sess{ctx: t.Context()}
	ch := make(chan *sarama.ConsumerMessage, 1)
	ch <- &sarama.ConsumerMessage{Offset: 7}

	err := h.ConsumeClaim(s, &claim{msgs: ch})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, s.marked)
}

func TestProcessOneSkipsInvalidEvent(t *testing.T) {
	inv := portmocks.NewMockInvalidator(t)
	c := NewConsumer(testKafkaConfig(), inv, nil)

	ev := testEvent()
	ev.Version = 99
	b, err := json.Marshal(ev)
	require.NoError(t, err)

	assert.NoError(t, c.ProcessOne(context.Background(), &sarama.ConsumerMessage{Value: b}))
}

func TestConsumersFromSameConfigJoinDistinctGroups(t *testing.T) {
	cfg := testKafkaConfig()
	a := NewConsumer(cfg, portmocks.NewMockInvalidator(t), nil)
	b := NewConsumer(cfg, portmocks.NewMockInvalidator(t), nil)

	assert.NotEqual(t, a.GroupID(), b.GroupID())
	assert.True(t, strings.HasPrefix(a.GroupID(), cfg.GroupID+"-"))
	assert.True(t, strings.HasPrefix(b.GroupID(), cfg.GroupID+"-"))
}

func testKafkaConfig() configs.Kafka {
	return configs.Kafka{
		Enabled: true,
		Brokers: []string{"localhost:9092"},
		Topic:   "catalog-mutations",
		GroupID: "ranking-cache-invalidator",
	}
}
