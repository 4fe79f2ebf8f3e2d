package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storerank/internal/core/domain"
	"storerank/internal/core/port"
)

// ClickBiller bills a click-through against the product's sponsorship.
type ClickBiller interface {
	RecordClickCharge(ctx context.Context, productID int64) (bool, error)
}

// CatalogService implements port.CatalogUseCase.
type CatalogService struct {
	repo   port.CatalogRepository
	biller ClickBiller
	inv    port.Invalidator
	logger *slog.Logger
	now    func() time.Time
}

var _ port.CatalogUseCase = (*CatalogService)(nil)

func NewCatalogService(repo port.CatalogRepository, biller ClickBiller, inv port.Invalidator, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		repo:   repo,
		biller: biller,
		inv:    inv,
		logger: logger,
		now:    time.Now,
	}
}

// TrackView counts one product page view. Engagement moves popularity
// slowly, so cached rankings are left to expire on their own.
func (s *CatalogService) TrackView(ctx context.Context, productID int64) (*domain.Product, error) {
	p, err := s.repo.AddEngagement(ctx, productID, 1, 0)
	if err != nil {
		return nil, fmt.Errorf("track view: %w", err)
	}
	return p, nil
}

// TrackClick counts one click-through and bills the product's sponsorship.
// A billing failure is logged; the click itself is already counted.
func (s *CatalogService) TrackClick(ctx context.Context, productID int64) (bool, error) {
	if _, err := s.repo.AddEngagement(ctx, productID, 0, 1); err != nil {
		return false, fmt.Errorf("track click: %w", err)
	}
	charged, err := s.biller.RecordClickCharge(ctx, productID)
	if err != nil {
		s.logger.Warn("click not billed",
			slog.Int64("product_id", productID), slog.Any("error", err))
		return false, nil
	}
	return charged, nil
}

func (s *CatalogService) SetSponsoredScore(ctx context.Context, productID int64, score int) error {
	if err := domain.ValidateSponsoredScore(score); err != nil {
		return err
	}
	if err := s.repo.SetSponsoredScore(ctx, productID, score); err != nil {
		return err
	}
	s.logger.Info("sponsored score updated",
		slog.Int64("product_id", productID), slog.Int("score", score))
	s.publish(ctx, "sponsored_score", productID)
	return nil
}

func (s *CatalogService) ProductChanged(ctx context.Context, productID int64) {
	s.publish(ctx, "updated", productID)
}

func (s *CatalogService) publish(ctx context.Context, op string, id int64) {
	s.inv.Notify(ctx, domain.MutationEvent{
		Version: domain.MutationEventVersion,
		Entity:  domain.EntityProduct,
		Op:      op,
		ID:      id,
		TS:      s.now().UTC(),
	})
}
