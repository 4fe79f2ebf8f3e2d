package port

import (
	"context"
	"time"

	"storerank/internal/core/domain"
)

// RankingUseCase produces the ordered product lists shown on storefront
// surfaces. Sponsored items that are funded at serving time come first.
type RankingUseCase interface {
	RankGlobal(ctx context.Context) ([]domain.DecoratedProduct, error)
	// RankByCategory returns an empty list for an empty category.
	RankByCategory(ctx context.Context, category string) ([]domain.DecoratedProduct, error)
	// RankBySearch returns an empty list for a blank query without touching
	// the store.
	RankBySearch(ctx context.Context, query string) ([]domain.DecoratedProduct, error)
}

// RankingCache memoizes ranking results. It is advisory: losing entries
// only costs a recomputation. Entries are never edited in place;
// invalidation always deletes.
type RankingCache interface {
	// Get returns the value stored under key if it has not expired.
	Get(ctx context.Context, key string) ([]domain.DecoratedProduct, bool, error)
	Set(ctx context.Context, key string, value []domain.DecoratedProduct, ttl time.Duration) error
	// InvalidatePrefix deletes every key starting with prefix and returns how
	// many were removed.
	InvalidatePrefix(ctx context.Context, prefix string) (int, error)
}
