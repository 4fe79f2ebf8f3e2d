package port

import (
	"context"

	"storerank/internal/core/domain"
)

// CatalogRepository gives read access to rankable products and the few
// writes the ranking core owns (engagement counters and sponsored score).
type CatalogRepository interface {
	// ListActive returns every active product.
	ListActive(ctx context.Context) ([]domain.Product, error)
	// ListActiveByCategory returns active products whose category equals
	// category exactly.
	ListActiveByCategory(ctx context.Context, category string) ([]domain.Product, error)
	// SearchFullText returns active products matched by the full-text index.
	SearchFullText(ctx context.Context, query string) ([]domain.Product, error)
	// SearchSubstring returns active products whose title, category, brand
	// or description contain query, case-insensitively.
	SearchSubstring(ctx context.Context, query string) ([]domain.Product, error)

	// Get returns domain.ErrProductNotFound for unknown ids.
	Get(ctx context.Context, id int64) (*domain.Product, error)
	SetSponsoredScore(ctx context.Context, id int64, score int) error
	// AddEngagement increments the view and click counters and persists the
	// recomputed popularity score.
	AddEngagement(ctx context.Context, id, views, clicks int64) (*domain.Product, error)
}
