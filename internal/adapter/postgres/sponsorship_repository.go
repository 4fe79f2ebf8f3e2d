package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storerank/internal/core/domain"
	"storerank/internal/core/port"
	"storerank/internal/tracing"
)

const sponsorshipColumns = `id, product_id, business_id, start_date, end_date, budget, daily_budget,
    daily_limit, initial_budget, status, is_active, created_at, updated_at`

// SponsorshipRepository implements port.SponsorshipRepository. Every
// consumption runs in its own transaction holding a row lock on the
// charged sponsorship, so concurrent consumers in any process serialize on
// the row and re-check eligibility after the lock is granted.
type SponsorshipRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

var _ port.SponsorshipRepository = (*SponsorshipRepository)(nil)

// NewSponsorshipRepository returns a repository whose calls are bounded by
// timeout. A zero timeout leaves deadlines to the caller.
func NewSponsorshipRepository(pool *pgxpool.Pool, timeout time.Duration) *SponsorshipRepository {
	return &SponsorshipRepository{pool: pool, timeout: timeout}
}

func (r *SponsorshipRepository) ConsumeImpression(ctx context.Context, productID, cost int64, now time.Time) (*domain.Charge, error) {
	return r.consume(ctx, domain.ChargeImpression, productID, cost, now)
}

func (r *SponsorshipRepository) ConsumeClick(ctx context.Context, productID, cost int64, now time.Time) (*domain.Charge, error) {
	return r.consume(ctx, domain.ChargeClick, productID, cost, now)
}

// consume locks the first billable sponsorship of the product able to cover
// cost, decrements it and appends a ledger entry. Under READ COMMITTED a
// caller queued on the lock sees the committed balance and skips the row
// if it no longer qualifies.
func (r *SponsorshipRepository) consume(ctx context.Context, kind domain.ChargeKind, productID, cost int64, now time.Time) (charge *domain.Charge, err error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()
	ctx, end := tracing.StartDBSpan(ctx, "sponsorships", tracing.DBOperationUpdate)
	defer func() { end(err) }()

	if cost <= 0 {
		return nil, fmt.Errorf("non-positive %s cost %d", kind, cost)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
		if err != nil {
			charge = nil
		}
	}()

	dailyCheck := ""
	if kind == domain.ChargeImpression {
		dailyCheck = "AND daily_budget >= $3"
	}
	var id int64
	err = tx.QueryRow(ctx, `
        SELECT id FROM sponsorships
        WHERE product_id = $1
          AND status = 'ACTIVE' AND is_active
          AND $2 BETWEEN start_date AND end_date
          AND budget >= $3 `+dailyCheck+`
        ORDER BY id
        LIMIT 1
        FOR UPDATE`, productID, now, cost).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		// Nothing eligible: commit the empty transaction and report unfunded.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	update := `
        UPDATE sponsorships
        SET budget = budget - $2,
            daily_budget = daily_budget - $2,
            is_active = (budget - $2 > 0 AND daily_budget - $2 > 0),
            updated_at = now()
        WHERE id = $1
        RETURNING budget, daily_budget, is_active`
	if kind == domain.ChargeClick {
		update = `
        UPDATE sponsorships
        SET budget = budget - $2,
            is_active = (budget - $2 > 0),
            updated_at = now()
        WHERE id = $1
        RETURNING budget, daily_budget, is_active`
	}
	c := &domain.Charge{
		Token:         uuid.New(),
		SponsorshipID: id,
		ProductID:     productID,
		Kind:          kind,
		Cost:          cost,
	}
	var stillActive bool
	err = tx.QueryRow(ctx, update, id, cost).Scan(&c.RemainingBudget, &c.RemainingDaily, &stillActive)
	if err != nil {
		return nil, err
	}
	c.Exhausted = !stillActive

	err = tx.QueryRow(ctx, `
        INSERT INTO ledger_entries (token, sponsorship_id, product_id, kind, cost, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`,
		c.Token, c.SponsorshipID, c.ProductID, string(c.Kind), c.Cost, now.UTC()).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ActiveProductIDs returns products with a sponsorship whose date window
// contains now. Status and funding are not consulted.
func (r *SponsorshipRepository) ActiveProductIDs(ctx context.Context, now time.Time) (ids []int64, err error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()
	ctx, end := tracing.StartDBSpan(ctx, "sponsorships", tracing.DBOperationQuery)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, `
        SELECT DISTINCT product_id FROM sponsorships
        WHERE $1 BETWEEN start_date AND end_date`, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

func (r *SponsorshipRepository) Create(ctx context.Context, s *domain.Sponsorship) (err error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()
	ctx, end := tracing.StartDBSpan(ctx, "sponsorships", tracing.DBOperationInsert)
	defer func() { end(err) }()

	err = r.pool.QueryRow(ctx, `
        INSERT INTO sponsorships
            (product_id, business_id, start_date, end_date, budget, daily_budget,
             daily_limit, initial_budget, status, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at`,
		s.ProductID, s.BusinessID, s.StartDate, s.EndDate, s.Budget, s.DailyBudget,
		s.DailyLimit, s.InitialBudget, string(s.Status), s.IsActive,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if isForeignKeyViolation(err) {
		return domain.ErrProductNotFound
	}
	return err
}

func (r *SponsorshipRepository) Get(ctx context.Context, id int64) (sp *domain.Sponsorship, err error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()
	ctx, end := tracing.StartDBSpan(ctx, "sponsorships", tracing.DBOperationQuery)
	defer func() { end(err) }()

	return r.get(ctx, r.pool, id)
}

func (r *SponsorshipRepository) get(ctx context.Context, q querier, id int64) (*domain.Sponsorship, error) {
	rows, err := q.Query(ctx, `SELECT `+sponsorshipColumns+` FROM sponsorships WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	sp, err := pgx.CollectExactlyOneRow(rows, scanSponsorship)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSponsorshipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

// Transition updates the row only while its status is one of t.From. When
// the guard rejects the update the current row is read to tell a missing
// sponsorship from a disallowed transition.
func (r *SponsorshipRepository) Transition(ctx context.Context, id int64, t domain.Transition) (sp *domain.Sponsorship, err error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()
	ctx, end := tracing.StartDBSpan(ctx, "sponsorships", tracing.DBOperationUpdate)
	defer func() { end(err) }()

	from := make([]string, 0, len(t.From))
	for _, s := range t.From {
		from = append(from, string(s))
	}
	rows, err := r.pool.Query(ctx, `
        UPDATE sponsorships
        SET status = $2, is_active = $3, updated_at = now()
        WHERE id = $1 AND status = ANY($4)
        RETURNING `+sponsorshipColumns,
		id, string(t.To), t.IsActive, from)
	if err != nil {
		return nil, err
	}
	updated, err := pgx.CollectExactlyOneRow(rows, scanSponsorship)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	current, err := r.get(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}
	return nil, &domain.InvalidStateTransitionError{
		SponsorshipID: id,
		Action:        t.Action,
		From:          current.Status,
		To:            t.To,
	}
}

// TopUp raises both the remaining and the initial budget so that spend to
// date stays InitialBudget - Budget.
func (r *SponsorshipRepository) TopUp(ctx context.Context, id, amount int64) (sp *domain.Sponsorship, err error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()
	ctx, end := tracing.StartDBSpan(ctx, "sponsorships", tracing.DBOperationUpdate)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, `
        UPDATE sponsorships
        SET budget = budget + $2, initial_budget = initial_budget + $2, updated_at = now()
        WHERE id = $1
        RETURNING `+sponsorshipColumns, id, amount)
	if err != nil {
		return nil, err
	}
	updated, err := pgx.CollectExactlyOneRow(rows, scanSponsorship)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSponsorshipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *SponsorshipRepository) ResetDailyBudgets(ctx context.Context) (n int64, err error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()
	ctx, end := tracing.StartDBSpan(ctx, "sponsorships", tracing.DBOperationUpdate)
	defer func() { end(err) }()

	tag, err := r.pool.Exec(ctx, `
        UPDATE sponsorships
        SET daily_budget = LEAST(daily_limit, budget), updated_at = now()
        WHERE status <> 'REJECTED'`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *SponsorshipRepository) Spend(ctx context.Context, id int64) (rep *domain.SpendReport, err error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()
	ctx, end := tracing.StartDBSpan(ctx, "ledger_entries", tracing.DBOperationQuery)
	defer func() { end(err) }()

	sp, err := r.get(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}
	rep = &domain.SpendReport{
		SponsorshipID:   sp.ID,
		InitialBudget:   sp.InitialBudget,
		RemainingBudget: sp.Budget,
		RemainingDaily:  sp.DailyBudget,
		Spent:           sp.Spent(),
	}

	rows, err := r.pool.Query(ctx, `
        SELECT kind, count(*), COALESCE(sum(cost), 0)
        FROM ledger_entries
        WHERE sponsorship_id = $1
        GROUP BY kind`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			kind        string
			count, cost int64
		)
		if err = rows.Scan(&kind, &count, &cost); err != nil {
			return nil, err
		}
		switch domain.ChargeKind(kind) {
		case domain.ChargeImpression:
			rep.Impressions, rep.ImpressionCost = count, cost
		case domain.ChargeClick:
			rep.Clicks, rep.ClickCost = count, cost
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return rep, nil
}

func scanSponsorship(row pgx.CollectableRow) (domain.Sponsorship, error) {
	var (
		sp     domain.Sponsorship
		status string
	)
	err := row.Scan(
		&sp.ID,
		&sp.ProductID,
		&sp.BusinessID,
		&sp.StartDate,
		&sp.EndDate,
		&sp.Budget,
		&sp.DailyBudget,
		&sp.DailyLimit,
		&sp.InitialBudget,
		&status,
		&sp.IsActive,
		&sp.CreatedAt,
		&sp.UpdatedAt,
	)
	sp.Status = domain.Status(status)
	return sp, err
}
