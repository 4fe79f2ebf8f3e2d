package port

import (
	"context"

	"storerank/internal/core/domain"
)

// ImpressionConsumer is the only ledger capability the ranking engine may
// use. A false result means the candidate is not funded for this response.
// ChargeImpression leaves cached rankings untouched; after a batch with at
// least one charge the caller invokes ImpressionsCharged exactly once.
type ImpressionConsumer interface {
	ChargeImpression(ctx context.Context, productID int64) (bool, error)
	ImpressionsCharged(ctx context.Context)
}

// LedgerUseCase exposes budget consumption and the administrative lifecycle
// of sponsorships. Consumption calls are not idempotent: a retried call
// charges again, so callers must not retry blindly.
type LedgerUseCase interface {
	// TryConsumeImpression charges one impression and invalidates cached
	// rankings.
	TryConsumeImpression(ctx context.Context, productID int64) (bool, error)
	// TryConsumeClick charges the configured cost per click against the
	// total budget.
	TryConsumeClick(ctx context.Context, productID int64) (bool, error)
	// RecordClickCharge bills a user click-through on an active product.
	RecordClickCharge(ctx context.Context, productID int64) (bool, error)

	CreateSponsorship(ctx context.Context, req domain.NewSponsorship) (*domain.Sponsorship, error)
	GetSponsorship(ctx context.Context, id int64) (*domain.Sponsorship, error)
	Approve(ctx context.Context, id int64) (*domain.Sponsorship, error)
	Activate(ctx context.Context, id int64) (*domain.Sponsorship, error)
	Pause(ctx context.Context, id int64) (*domain.Sponsorship, error)
	Reject(ctx context.Context, id int64) (*domain.Sponsorship, error)
	// Apply runs the transition registered for action.
	Apply(ctx context.Context, id int64, action domain.Action) (*domain.Sponsorship, error)
	TopUp(ctx context.Context, id, amount int64) (*domain.Sponsorship, error)
	ResetDailyBudgets(ctx context.Context) (int64, error)
	Spend(ctx context.Context, id int64) (*domain.SpendReport, error)
}
