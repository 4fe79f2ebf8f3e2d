package configs

import (
	"fmt"
	"time"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Cache configures the ranking result cache. Each storefront surface has
// its own TTL. Namespace prefixes every key so a single prefix
// invalidation drops all ranking variants.
type Cache struct {
	Backend     string        `env:"BACKEND" envDefault:"memory"`
	Size        int           `env:"SIZE" envDefault:"4096"`
	Namespace   string        `env:"NAMESPACE" envDefault:"ranking:"`
	HomeTTL     time.Duration `env:"HOME_TTL" envDefault:"60s"`
	CategoryTTL time.Duration `env:"CATEGORY_TTL" envDefault:"60s"`
	SearchTTL   time.Duration `env:"SEARCH_TTL" envDefault:"30s"`
}

func (c Cache) Validate() error {
	switch c.Backend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("cache backend must be %s|%s, got %q", CacheBackendMemory, CacheBackendRedis, c.Backend)
	}
	if c.Namespace == "" {
		return fmt.Errorf("cache namespace is required")
	}
	if c.HomeTTL < 0 || c.CategoryTTL < 0 || c.SearchTTL < 0 {
		return fmt.Errorf("cache ttls must not be negative")
	}
	return nil
}
