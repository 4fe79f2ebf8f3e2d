package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"

	"storerank/internal/config/configs"
	"storerank/internal/core/domain"
	"storerank/internal/core/port"
)

const scanBatch = 500

// Redis is the shared ranking cache used when several processes serve the
// storefront. Expiry is enforced by redis key TTLs.
type Redis struct {
	rdb *redis.Client
}

var _ port.RankingCache = (*Redis)(nil)

// NewRedisClient connects and pings redis.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (r *Redis) Get(ctx context.Context, key string) ([]domain.DecoratedProduct, bool, error) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis GET %q: %w", key, err)
	}
	var out []domain.DecoratedProduct
	if err = json.Unmarshal(raw, &out); err != nil {
		// an undecodable entry is as good as absent
		_ = r.rdb.Del(ctx, key).Err()
		return nil, false, fmt.Errorf("decode %q: %w", key, err)
	}
	return out, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []domain.DecoratedProduct, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if value == nil {
		value = []domain.DecoratedProduct{}
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err = r.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis SET %q: %w", key, err)
	}
	return nil
}

// InvalidatePrefix scans for matching keys and deletes them in batches.
// Keys written concurrently with the scan may survive; they expire with
// their TTL.
func (r *Redis) InvalidatePrefix(ctx context.Context, prefix string) (int, error) {
	iter := r.rdb.Scan(ctx, 0, escapeGlob(prefix)+"*", scanBatch).Iterator()
	batch := make([]string, 0, scanBatch)
	removed := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := r.rdb.Del(ctx, batch...).Result()
		if err != nil {
			return fmt.Errorf("redis DEL %d keys: %w", len(batch), err)
		}
		removed += int(n)
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := flush(); err != nil {
				return removed, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("redis SCAN %q: %w", prefix, err)
	}
	if err := flush(); err != nil {
		return removed, err
	}
	return removed, nil
}

func escapeGlob(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}
