package config

import (
	"github.com/caarlos0/env/v11"

	"storerank/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the optional shared ranking cache.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Cache selects the ranking cache backend and per-surface TTLs.
	Cache configs.Cache `envPrefix:"CACHE_"`

	// Ledger holds budget consumption settings.
	Ledger configs.Ledger `envPrefix:"LEDGER_"`

	// Kafka configures cross-process invalidation events.
	Kafka configs.Kafka `envPrefix:"KAFKA_"`

	// Media configures image and SEO decoration.
	Media configs.Media `envPrefix:"MEDIA_"`

	// Tracing configures OpenTelemetry span export.
	Tracing configs.Tracing `envPrefix:"TRACING_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express.
func (c Config) Validate() error {
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Ledger.Validate(); err != nil {
		return err
	}
	if err := c.Kafka.Validate(); err != nil {
		return err
	}
	return c.Tracing.Validate()
}
