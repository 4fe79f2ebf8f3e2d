package port

import (
	"context"

	"storerank/internal/core/domain"
)

// CatalogUseCase covers the catalog writes that influence ranking.
type CatalogUseCase interface {
	TrackView(ctx context.Context, productID int64) (*domain.Product, error)
	// TrackClick counts the click and bills it. The returned flag reports
	// whether a sponsorship was charged.
	TrackClick(ctx context.Context, productID int64) (bool, error)
	SetSponsoredScore(ctx context.Context, productID int64, score int) error
	// ProductChanged is the notification hook for catalog edits made by
	// other collaborators.
	ProductChanged(ctx context.Context, productID int64)
}
