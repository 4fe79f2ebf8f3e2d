package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storerank/internal/core/domain"
	"storerank/internal/core/port"
	"storerank/internal/metrics"
)

// ImpressionCost is the fixed charge of one served sponsored impression.
const ImpressionCost int64 = 1

// LedgerService implements port.LedgerUseCase. It is the only component
// that requests changes to sponsorship balances and lifecycle; the actual
// atomic read-check-decrement happens inside the repository transaction.
type LedgerService struct {
	repo    port.SponsorshipRepository
	catalog port.CatalogRepository
	inv     port.Invalidator

	clickCost      int64
	consumeTimeout time.Duration

	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

var (
	_ port.LedgerUseCase      = (*LedgerService)(nil)
	_ port.ImpressionConsumer = (*LedgerService)(nil)
)

type LedgerOption func(*LedgerService)

// WithConsumeTimeout bounds each consumption transaction. A consumption
// that times out is reported as not charged.
func WithConsumeTimeout(d time.Duration) LedgerOption {
	return func(s *LedgerService) { s.consumeTimeout = d }
}

func WithLedgerClock(now func() time.Time) LedgerOption {
	return func(s *LedgerService) { s.now = now }
}

func WithLedgerMetrics(m *metrics.Metrics) LedgerOption {
	return func(s *LedgerService) { s.metrics = m }
}

func WithLedgerLogger(l *slog.Logger) LedgerOption {
	return func(s *LedgerService) { s.logger = l }
}

// NewLedgerService creates a ledger charging clickCost per click.
func NewLedgerService(repo port.SponsorshipRepository, catalog port.CatalogRepository, inv port.Invalidator, clickCost int64, opts ...LedgerOption) *LedgerService {
	s := &LedgerService{
		repo:      repo,
		catalog:   catalog,
		inv:       inv,
		clickCost: clickCost,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TryConsumeImpression charges one unit against both the total and the
// daily budget of the product's billable sponsorship. It returns false
// without mutation when nothing is eligible. On error the charge must be
// assumed not applied.
func (s *LedgerService) TryConsumeImpression(ctx context.Context, productID int64) (bool, error) {
	ok, err := s.ChargeImpression(ctx, productID)
	if ok {
		s.ImpressionsCharged(ctx)
	}
	return ok, err
}

// ChargeImpression is TryConsumeImpression without cache invalidation, for
// callers charging a batch of candidates.
func (s *LedgerService) ChargeImpression(ctx context.Context, productID int64) (bool, error) {
	return s.consume(ctx, domain.ChargeImpression, productID, func(ctx context.Context, now time.Time) (*domain.Charge, error) {
		return s.repo.ConsumeImpression(ctx, productID, ImpressionCost, now)
	})
}

// ImpressionsCharged invalidates cached rankings once for a batch of
// impression charges.
func (s *LedgerService) ImpressionsCharged(ctx context.Context) {
	s.inv.Invalidate(ctx, string(domain.ChargeImpression))
}

// TryConsumeClick charges the cost per click against the total budget. The
// daily budget throttles exposure only and is left untouched.
func (s *LedgerService) TryConsumeClick(ctx context.Context, productID int64) (bool, error) {
	ok, err := s.consume(ctx, domain.ChargeClick, productID, func(ctx context.Context, now time.Time) (*domain.Charge, error) {
		return s.repo.ConsumeClick(ctx, productID, s.clickCost, now)
	})
	if ok {
		s.inv.Invalidate(ctx, string(domain.ChargeClick))
	}
	return ok, err
}

func (s *LedgerService) consume(ctx context.Context, kind domain.ChargeKind, productID int64, fn func(context.Context, time.Time) (*domain.Charge, error)) (bool, error) {
	cctx, cancel := s.bounded(ctx)
	defer cancel()

	charge, err := fn(cctx, s.now())
	if err != nil {
		s.metrics.ObserveConsume(string(kind), metrics.OutcomeError)
		return false, fmt.Errorf("consume %s for product %d: %w", kind, productID, err)
	}
	if charge == nil {
		s.metrics.ObserveConsume(string(kind), metrics.OutcomeUnfunded)
		return false, nil
	}

	s.metrics.ObserveConsume(string(kind), metrics.OutcomeCharged)
	s.logger.Debug("sponsorship charged",
		slog.String("kind", string(kind)),
		slog.Int64("product_id", productID),
		slog.Int64("sponsorship_id", charge.SponsorshipID),
		slog.Int64("cost", charge.Cost),
		slog.Int64("remaining_budget", charge.RemainingBudget))
	if charge.Exhausted {
		s.logger.Info("sponsorship budget exhausted, deactivated",
			slog.Int64("sponsorship_id", charge.SponsorshipID),
			slog.Int64("product_id", productID))
	}
	return true, nil
}

func (s *LedgerService) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.consumeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.consumeTimeout)
}

// RecordClickCharge bills a click-through. Unknown products surface
// domain.ErrProductNotFound; inactive products are never charged.
func (s *LedgerService) RecordClickCharge(ctx context.Context, productID int64) (bool, error) {
	p, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return false, err
	}
	if !p.IsActive {
		return false, nil
	}
	return s.TryConsumeClick(ctx, productID)
}

// CreateSponsorship validates req and stores a PENDING sponsorship. The
// gate stays off until an operator activates it.
func (s *LedgerService) CreateSponsorship(ctx context.Context, req domain.NewSponsorship) (*domain.Sponsorship, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.catalog.Get(ctx, req.ProductID); err != nil {
		return nil, err
	}

	sp := &domain.Sponsorship{
		ProductID:     req.ProductID,
		BusinessID:    req.BusinessID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Budget:        req.Budget,
		DailyBudget:   req.DailyBudget,
		DailyLimit:    req.DailyBudget,
		InitialBudget: req.Budget,
		Status:        domain.StatusPending,
		IsActive:      false,
	}
	if err := s.repo.Create(ctx, sp); err != nil {
		return nil, fmt.Errorf("create sponsorship: %w", err)
	}
	s.notify(ctx, "created", sp.ID)
	return sp, nil
}

func (s *LedgerService) GetSponsorship(ctx context.Context, id int64) (*domain.Sponsorship, error) {
	return s.repo.Get(ctx, id)
}

func (s *LedgerService) Approve(ctx context.Context, id int64) (*domain.Sponsorship, error) {
	return s.Apply(ctx, id, domain.ActionApprove)
}

func (s *LedgerService) Activate(ctx context.Context, id int64) (*domain.Sponsorship, error) {
	return s.Apply(ctx, id, domain.ActionActivate)
}

func (s *LedgerService) Pause(ctx context.Context, id int64) (*domain.Sponsorship, error) {
	return s.Apply(ctx, id, domain.ActionPause)
}

func (s *LedgerService) Reject(ctx context.Context, id int64) (*domain.Sponsorship, error) {
	return s.Apply(ctx, id, domain.ActionReject)
}

// Apply performs a guarded status transition. Errors are returned as is
// and must not be retried automatically.
func (s *LedgerService) Apply(ctx context.Context, id int64, action domain.Action) (*domain.Sponsorship, error) {
	t, ok := domain.TransitionFor(action)
	if !ok {
		return nil, domain.NewValidationError("action", fmt.Sprintf("unknown action %q", action))
	}
	sp, err := s.repo.Transition(ctx, id, t)
	s.metrics.ObserveTransition(string(action), err)
	if err != nil {
		return nil, err
	}
	s.logger.Info("sponsorship transitioned",
		slog.Int64("sponsorship_id", id),
		slog.String("action", string(action)),
		slog.String("status", string(sp.Status)))
	s.notify(ctx, string(action), id)
	return sp, nil
}

// TopUp funds an existing sponsorship further. It does not reactivate a
// sponsorship that was switched off.
func (s *LedgerService) TopUp(ctx context.Context, id, amount int64) (*domain.Sponsorship, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	sp, err := s.repo.TopUp(ctx, id, amount)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, "budget_updated", id)
	return sp, nil
}

// ResetDailyBudgets opens a new serving window for every sponsorship.
func (s *LedgerService) ResetDailyBudgets(ctx context.Context) (int64, error) {
	n, err := s.repo.ResetDailyBudgets(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset daily budgets: %w", err)
	}
	s.logger.Info("daily budgets reset", slog.Int64("sponsorships", n))
	if n > 0 {
		s.notify(ctx, "daily_reset", 0)
	}
	return n, nil
}

func (s *LedgerService) Spend(ctx context.Context, id int64) (*domain.SpendReport, error) {
	return s.repo.Spend(ctx, id)
}

func (s *LedgerService) notify(ctx context.Context, op string, id int64) {
	s.inv.Notify(ctx, domain.MutationEvent{
		Version: domain.MutationEventVersion,
		Entity:  domain.EntitySponsorship,
		Op:      op,
		ID:      id,
		TS:      s.now().UTC(),
	})
}
