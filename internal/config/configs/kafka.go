package configs

import (
	"fmt"
	"time"
)

// Kafka configures publishing and consuming of mutation events. When
// disabled every process only invalidates its own cache.
type Kafka struct {
	Enabled          bool          `env:"ENABLED" envDefault:"false"`
	Brokers          []string      `env:"BROKERS" envDefault:"localhost:9092" envSeparator:","`
	Topic            string        `env:"TOPIC" envDefault:"catalog-mutations"`
	// GroupID is a prefix; each process appends its own suffix.
	GroupID          string        `env:"GROUP_ID" envDefault:"ranking-cache-invalidator"`
	SessionTimeout   time.Duration `env:"SESSION_TIMEOUT" envDefault:"30s"`
	Heartbeat        time.Duration `env:"HEARTBEAT" envDefault:"3s"`
	RebalanceTimeout time.Duration `env:"REBALANCE_TIMEOUT" envDefault:"30s"`
}

func (k Kafka) Validate() error {
	if !k.Enabled {
		return nil
	}
	if len(k.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required when kafka is enabled")
	}
	if k.Topic == "" || k.GroupID == "" {
		return fmt.Errorf("kafka topic and group id are required when kafka is enabled")
	}
	return nil
}
