package port

import (
	"context"
	"time"

	"storerank/internal/core/domain"
)

// SponsorshipRepository is the persistence side of the budget ledger. It is
// an outbound port. Implementations must run every Consume* call as one
// atomic transaction in the backing store so that concurrent callers, in
// this or any other process, can never drive a balance below zero.
type SponsorshipRepository interface {
	// ConsumeImpression charges cost against both budget and daily budget of
	// at most one billable sponsorship of the product. It returns nil, nil
	// when no sponsorship is eligible.
	ConsumeImpression(ctx context.Context, productID, cost int64, now time.Time) (*domain.Charge, error)
	// ConsumeClick charges cost against the total budget only. It returns
	// nil, nil when no sponsorship can cover the cost.
	ConsumeClick(ctx context.Context, productID, cost int64, now time.Time) (*domain.Charge, error)
	// ActiveProductIDs returns the products having a sponsorship whose date
	// window contains now, regardless of status or funding.
	ActiveProductIDs(ctx context.Context, now time.Time) ([]int64, error)

	// Create stores a new sponsorship and fills in its ID and timestamps.
	Create(ctx context.Context, s *domain.Sponsorship) error
	// Get returns domain.ErrSponsorshipNotFound for unknown ids.
	Get(ctx context.Context, id int64) (*domain.Sponsorship, error)
	// Transition applies t only when the current status is one of t.From.
	// Otherwise it returns *domain.InvalidStateTransitionError and leaves the
	// row untouched.
	Transition(ctx context.Context, id int64, t domain.Transition) (*domain.Sponsorship, error)
	// TopUp adds amount to both the remaining and the initial budget.
	TopUp(ctx context.Context, id, amount int64) (*domain.Sponsorship, error)
	// ResetDailyBudgets restores every non-rejected sponsorship's daily budget
	// to min(daily limit, budget) and returns the number of rows touched.
	ResetDailyBudgets(ctx context.Context) (int64, error)
	// Spend aggregates ledger entries of a sponsorship.
	Spend(ctx context.Context, id int64) (*domain.SpendReport, error)
}
