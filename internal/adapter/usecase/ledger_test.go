package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storerank/internal/core/domain"
	"storerank/internal/core/port"
	"storerank/internal/core/port/mocks"
)

var ledgerNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// memSponsorships keeps sponsorships in memory behind one mutex, the way
// the database row lock serializes consumers.
type memSponsorships struct {
	mu      sync.Mutex
	rows    map[int64]*domain.Sponsorship
	charges []domain.Charge
}

var _ port.SponsorshipRepository = (*memSponsorships)(nil)

func newMemSponsorships(rows ...domain.Sponsorship) *memSponsorships {
	m := &memSponsorships{rows: make(map[int64]*domain.Sponsorship)}
	for i := range rows {
		sp := rows[i]
		m.rows[sp.ID] = &sp
	}
	return m
}

func (m *memSponsorships) consume(productID, cost int64, now time.Time, kind domain.ChargeKind) *domain.Charge {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sp := range m.rows {
		if sp.ProductID != productID || !sp.Billable(now) || sp.Budget < cost {
			continue
		}
		if kind == domain.ChargeImpression && sp.DailyBudget < cost {
			continue
		}
		sp.Budget -= cost
		if kind == domain.ChargeImpression {
			sp.DailyBudget -= cost
		}
		exhausted := sp.Budget <= 0
		if kind == domain.ChargeImpression {
			exhausted = exhausted || sp.DailyBudget <= 0
		}
		if exhausted {
			sp.IsActive = false
		}
		c := domain.Charge{
			Token:           uuid.New(),
			SponsorshipID:   sp.ID,
			ProductID:       productID,
			Kind:            kind,
			Cost:            cost,
			RemainingBudget: sp.Budget,
			RemainingDaily:  sp.DailyBudget,
			Exhausted:       exhausted,
			CreatedAt:       now,
		}
		m.charges = append(m.charges, c)
		return &c
	}
	return nil
}

func (m *memSponsorships) ConsumeImpression(_ context.Context, productID, cost int64, now time.Time) (*domain.Charge, error) {
	return m.consume(productID, cost, now, domain.ChargeImpression), nil
}

func (m *memSponsorships) ConsumeClick(_ context.Context, productID, cost int64, now time.Time) (*domain.Charge, error) {
	return m.consume(productID, cost, now, domain.ChargeClick), nil
}

func (m *memSponsorships) ActiveProductIDs(_ context.Context, now time.Time) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []int64
	for _, sp := range m.rows {
		if sp.InWindow(now) {
			out = append(out, sp.ProductID)
		}
	}
	return out, nil
}

func (m *memSponsorships) Create(_ context.Context, s *domain.Sponsorship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = int64(len(m.rows) + 1)
	cp := *s
	m.rows[s.ID] = &cp
	return nil
}

func (m *memSponsorships) Get(_ context.Context, id int64) (*domain.Sponsorship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sp, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrSponsorshipNotFound
	}
	cp := *sp
	return &cp, nil
}

func (m *memSponsorships) Transition(_ context.Context, id int64, t domain.Transition) (*domain.Sponsorship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sp, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrSponsorshipNotFound
	}
	if !t.Allows(sp.Status) {
		return nil, &domain.InvalidStateTransitionError{SponsorshipID: id, Action: t.Action, From: sp.Status, To: t.To}
	}
	sp.Status = t.To
	sp.IsActive = t.IsActive
	cp := *sp
	return &cp, nil
}

func (m *memSponsorships) TopUp(_ context.Context, id, amount int64) (*domain.Sponsorship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sp, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrSponsorshipNotFound
	}
	sp.Budget += amount
	sp.InitialBudget += amount
	cp := *sp
	return &cp, nil
}

func (m *memSponsorships) ResetDailyBudgets(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, sp := range m.rows {
		if sp.Status == domain.StatusRejected {
			continue
		}
		sp.DailyBudget = min(sp.DailyLimit, sp.Budget)
		n++
	}
	return n, nil
}

func (m *memSponsorships) Spend(_ context.Context, id int64) (*domain.SpendReport, error) {
	return nil, errors.New("not implemented")
}

func activeSponsorship(id, productID, budget, daily int64) domain.Sponsorship {
	return domain.Sponsorship{
		ID:            id,
		ProductID:     productID,
		BusinessID:    1,
		StartDate:     ledgerNow.Add(-24 * time.Hour),
		EndDate:       ledgerNow.Add(24 * time.Hour),
		Budget:        budget,
		DailyBudget:   daily,
		DailyLimit:    daily,
		InitialBudget: budget,
		Status:        domain.StatusActive,
		IsActive:      true,
	}
}

func newTestLedger(t *testing.T, repo port.SponsorshipRepository) (*LedgerService, *mocks.MockCatalogRepository, *mocks.MockInvalidator) {
	t.Helper()
	catalog := mocks.NewMockCatalogRepository(t)
	inv := mocks.NewMockInvalidator(t)
	svc := NewLedgerService(repo, catalog, inv, 10,
		WithConsumeTimeout(time.Second),
		WithLedgerClock(func() time.Time { return ledgerNow }),
	)
	return svc, catalog, inv
}

func TestConcurrentImpressionsNeverOverspend(t *testing.T) {
	repo := newMemSponsorships(activeSponsorship(1, 42, 3, 3))
	svc, _, inv := newTestLedger(t, repo)
	inv.EXPECT().Invalidate(mock.Anything, "impression").Return().Times(3)

	const callers = 4
	var (
		wg      sync.WaitGroup
		charged atomic.Int64
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := svc.TryConsumeImpression(context.Background(), 42)
			assert.NoError(t, err)
			if ok {
				charged.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(3), charged.Load())
	sp, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, sp.Budget)
	assert.Zero(t, sp.DailyBudget)
	assert.False(t, sp.IsActive)
	assert.Len(t, repo.charges, 3)
}

func TestTryConsumeImpressionPausedIsNotCharged(t *testing.T) {
	sp := activeSponsorship(1, 42, 100, 10)
	sp.Status = domain.StatusPaused
	sp.IsActive = false
	repo := newMemSponsorships(sp)
	svc, _, _ := newTestLedger(t, repo)

	ok, err := svc.TryConsumeImpression(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ok)

	got, _ := repo.Get(context.Background(), 1)
	assert.Equal(t, int64(100), got.Budget)
}

func TestTryConsumeImpressionDailyBudgetGates(t *testing.T) {
	repo := newMemSponsorships(activeSponsorship(1, 42, 100, 1))
	svc, _, inv := newTestLedger(t, repo)
	inv.EXPECT().Invalidate(mock.Anything, "impression").Return().Once()

	ok, err := svc.TryConsumeImpression(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.TryConsumeImpression(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ok)

	got, _ := repo.Get(context.Background(), 1)
	assert.Equal(t, int64(99), got.Budget)
	assert.False(t, got.IsActive)
}

func TestTryConsumeClickLeavesDailyBudget(t *testing.T) {
	repo := newMemSponsorships(activeSponsorship(1, 42, 25, 5))
	svc, _, inv := newTestLedger(t, repo)
	inv.EXPECT().Invalidate(mock.Anything, "click").Return().Twice()

	for range 2 {
		ok, err := svc.TryConsumeClick(context.Background(), 42)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := svc.TryConsumeClick(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ok, "5 left cannot cover a click costing 10")

	got, _ := repo.Get(context.Background(), 1)
	assert.Equal(t, int64(5), got.Budget)
	assert.Equal(t, int64(5), got.DailyBudget)
}

func TestTryConsumeClickIgnoresSpentDailyBudget(t *testing.T) {
	repo := newMemSponsorships(activeSponsorship(1, 42, 100, 0))
	svc, _, inv := newTestLedger(t, repo)
	inv.EXPECT().Invalidate(mock.Anything, "click").Return().Once()

	ok, err := svc.TryConsumeClick(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, ok)

	got, _ := repo.Get(context.Background(), 1)
	assert.Equal(t, int64(90), got.Budget)
	assert.True(t, got.IsActive)
	assert.False(t, repo.charges[0].Exhausted)
}

func TestTryConsumeClickExhaustsBudget(t *testing.T) {
	repo := newMemSponsorships(activeSponsorship(1, 42, 20, 5))
	svc, _, inv := newTestLedger(t, repo)
	inv.EXPECT().Invalidate(mock.Anything, "click").Return().Twice()

	for range 2 {
		ok, err := svc.TryConsumeClick(context.Background(), 42)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	got, _ := repo.Get(context.Background(), 1)
	assert.Zero(t, got.Budget)
	assert.Equal(t, int64(5), got.DailyBudget)
	assert.False(t, got.IsActive)
	assert.True(t, repo.charges[1].Exhausted)

	ok, err := svc.TryConsumeClick(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTryConsumeImpressionStoreErrorFailsClosed(t *testing.T) {
	repo := mocks.NewMockSponsorshipRepository(t)
	svc, _, _ := newTestLedger(t, repo)
	boom := errors.New("serialization failure")

	repo.EXPECT().ConsumeImpression(mock.Anything, int64(42), ImpressionCost, ledgerNow).Return(nil, boom).Once()

	ok, err := svc.TryConsumeImpression(context.Background(), 42)
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}

func TestTryConsumeImpressionTimeoutFailsClosed(t *testing.T) {
	repo := mocks.NewMockSponsorshipRepository(t)
	catalog := mocks.NewMockCatalogRepository(t)
	inv := mocks.NewMockInvalidator(t)
	svc := NewLedgerService(repo, catalog, inv, 10,
		WithConsumeTimeout(10*time.Millisecond),
		WithLedgerClock(func() time.Time { return ledgerNow }),
	)

	repo.EXPECT().ConsumeImpression(mock.Anything, int64(42), ImpressionCost, ledgerNow).
		RunAndReturn(func(ctx context.Context, _ int64, _ int64, _ time.Time) (*domain.Charge, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	ok, err := svc.TryConsumeImpression(context.Background(), 42)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRecordClickCharge(t *testing.T) {
	t.Run("unknown product", func(t *testing.T) {
		svc, catalog, _ := newTestLedger(t, newMemSponsorships())
		catalog.EXPECT().Get(mock.Anything, int64(9)).Return(nil, domain.ErrProductNotFound).Once()

		ok, err := svc.RecordClickCharge(context.Background(), 9)
		assert.False(t, ok)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("inactive product", func(t *testing.T) {
		repo := newMemSponsorships(activeSponsorship(1, 42, 100, 10))
		svc, catalog, _ := newTestLedger(t, repo)
		catalog.EXPECT().Get(mock.Anything, int64(42)).Return(&domain.Product{ID: 42}, nil).Once()

		ok, err := svc.RecordClickCharge(context.Background(), 42)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("charged", func(t *testing.T) {
		repo := newMemSponsorships(activeSponsorship(1, 42, 100, 10))
		svc, catalog, inv := newTestLedger(t, repo)
		catalog.EXPECT().Get(mock.Anything, int64(42)).Return(&domain.Product{ID: 42, IsActive: true}, nil).Once()
		inv.EXPECT().Invalidate(mock.Anything, "click").Return().Once()

		ok, err := svc.RecordClickCharge(context.Background(), 42)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestCreateSponsorship(t *testing.T) {
	req := domain.NewSponsorship{
		ProductID:   42,
		BusinessID:  7,
		StartDate:   ledgerNow,
		EndDate:     ledgerNow.Add(7 * 24 * time.Hour),
		Budget:      1000,
		DailyBudget: 100,
	}

	t.Run("valid", func(t *testing.T) {
		repo := newMemSponsorships()
		svc, catalog, inv := newTestLedger(t, repo)
		catalog.EXPECT().Get(mock.Anything, int64(42)).Return(&domain.Product{ID: 42, IsActive: true}, nil).Once()
		inv.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(ev domain.MutationEvent) bool {
			return ev.Entity == domain.EntitySponsorship && ev.Op == "created" && ev.Validate() == nil
		})).Return().Once()

		sp, err := svc.CreateSponsorship(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, sp.Status)
		assert.False(t, sp.IsActive)
		assert.Equal(t, int64(100), sp.DailyLimit)
		assert.Equal(t, int64(1000), sp.InitialBudget)
	})

	t.Run("invalid", func(t *testing.T) {
		svc, _, _ := newTestLedger(t, newMemSponsorships())
		bad := req
		bad.DailyBudget = 5000

		_, err := svc.CreateSponsorship(context.Background(), bad)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestLifecycleTransitions(t *testing.T) {
	sp := activeSponsorship(1, 42, 100, 10)
	sp.Status = domain.StatusPending
	sp.IsActive = false
	repo := newMemSponsorships(sp)
	svc, _, inv := newTestLedger(t, repo)
	inv.EXPECT().Notify(mock.Anything, mock.Anything).Return()
	ctx := context.Background()

	got, err := svc.Approve(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)

	_, err = svc.Reject(ctx, 1)
	var transErr *domain.InvalidStateTransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, domain.StatusApproved, transErr.From)

	got, err = svc.Activate(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	got, err = svc.Pause(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, got.Status)
	assert.False(t, got.IsActive)

	_, err = svc.Apply(ctx, 1, domain.Action("archive"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Approve(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTopUpAndDailyReset(t *testing.T) {
	sp := activeSponsorship(1, 42, 0, 0)
	sp.InitialBudget = 50
	sp.DailyLimit = 20
	sp.IsActive = false
	repo := newMemSponsorships(sp)
	svc, _, inv := newTestLedger(t, repo)
	inv.EXPECT().Notify(mock.Anything, mock.Anything).Return().Twice()
	ctx := context.Background()

	_, err := svc.TopUp(ctx, 1, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := svc.TopUp(ctx, 1, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(30), got.Budget)
	assert.Equal(t, int64(80), got.InitialBudget)
	assert.False(t, got.IsActive)

	n, err := svc.ResetDailyBudgets(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, _ = repo.Get(ctx, 1)
	assert.Equal(t, int64(20), got.DailyBudget)
}
