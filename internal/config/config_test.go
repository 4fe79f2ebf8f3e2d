package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, "ranking:", cfg.Cache.Namespace)
	assert.Equal(t, 60*time.Second, cfg.Cache.HomeTTL)
	assert.Equal(t, 30*time.Second, cfg.Cache.SearchTTL)
	assert.Equal(t, int64(10), cfg.Ledger.ClickCost)
	assert.Equal(t, 500*time.Millisecond, cfg.Ledger.ConsumeTimeout)
	assert.False(t, cfg.Kafka.Enabled)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "otlp-http", cfg.Tracing.Exporter)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("CACHE_SEARCH_TTL", "5s")
	t.Setenv("LEDGER_CLICK_COST", "25")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 5*time.Second, cfg.Cache.SearchTTL)
	assert.Equal(t, int64(25), cfg.Ledger.ClickCost)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Run("backend", func(t *testing.T) {
		t.Setenv("CACHE_BACKEND", "memcached")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("click cost", func(t *testing.T) {
		t.Setenv("LEDGER_CLICK_COST", "0")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("tracing exporter", func(t *testing.T) {
		t.Setenv("TRACING_ENABLED", "true")
		t.Setenv("TRACING_EXPORTER", "zipkin")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("sampling rate", func(t *testing.T) {
		t.Setenv("TRACING_ENABLED", "true")
		t.Setenv("TRACING_SAMPLING_RATE", "1.5")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("workers", func(t *testing.T) {
		t.Setenv("LEDGER_WORKERS", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
