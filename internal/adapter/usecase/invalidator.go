package usecase

import (
	"context"
	"log/slog"

	"storerank/internal/core/domain"
	"storerank/internal/core/port"
	"storerank/internal/metrics"
)

// CacheInvalidator drops every cached ranking by deleting the cache
// namespace prefix. The cache is advisory, so failures are logged and
// never propagated to the mutation that triggered them.
type CacheInvalidator struct {
	cache     port.RankingCache
	namespace string
	publisher port.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

var _ port.Invalidator = (*CacheInvalidator)(nil)

// NewCacheInvalidator returns an invalidator for namespace. publisher may
// be nil, in which case Notify only affects this process.
func NewCacheInvalidator(cache port.RankingCache, namespace string, publisher port.EventPublisher, m *metrics.Metrics, logger *slog.Logger) *CacheInvalidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &CacheInvalidator{
		cache:     cache,
		namespace: namespace,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

func (i *CacheInvalidator) Invalidate(ctx context.Context, reason string) {
	n, err := i.cache.InvalidatePrefix(ctx, i.namespace)
	if err != nil {
		i.logger.Error("ranking cache invalidation failed",
			slog.String("reason", reason), slog.Any("error", err))
		return
	}
	i.metrics.IncInvalidation(reason)
	i.logger.Debug("ranking cache invalidated", slog.String("reason", reason), slog.Int("keys", n))
}

func (i *CacheInvalidator) Notify(ctx context.Context, ev domain.MutationEvent) {
	i.Invalidate(ctx, string(ev.Entity))
	if i.publisher == nil {
		return
	}
	if err := i.publisher.Publish(ctx, ev); err != nil {
		i.logger.Warn("mutation event not published",
			slog.String("entity", string(ev.Entity)),
			slog.String("op", ev.Op),
			slog.Int64("id", ev.ID),
			slog.Any("error", err))
	}
}
