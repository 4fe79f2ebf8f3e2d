//go:build integration

package postgres

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"storerank/internal/core/domain"
	"storerank/internal/db"
)

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("storerank"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func insertProduct(t *testing.T, pool *pgxpool.Pool, title, category string) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `
        INSERT INTO products (business_id, title, category, description)
        VALUES (1, $1, $2, 'integration product') RETURNING id`, title, category).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestConcurrentConsumptionNeverOverspends(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewSponsorshipRepository(pool, 5*time.Second)
	productID := insertProduct(t, pool, "Wireless Mouse", "Electronics")

	now := time.Now().UTC()
	sp := &domain.Sponsorship{
		ProductID:     productID,
		BusinessID:    1,
		StartDate:     now.Add(-24 * time.Hour),
		EndDate:       now.Add(24 * time.Hour),
		Budget:        10,
		DailyBudget:   10,
		DailyLimit:    10,
		InitialBudget: 10,
		Status:        domain.StatusActive,
		IsActive:      true,
	}
	require.NoError(t, repo.Create(ctx, sp))

	const callers = 25
	var (
		wg      sync.WaitGroup
		charged atomic.Int64
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := repo.ConsumeImpression(ctx, productID, 1, now)
			assert.NoError(t, err)
			if c != nil {
				charged.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), charged.Load())
	got, err := repo.Get(ctx, sp.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Budget)
	assert.Zero(t, got.DailyBudget)
	assert.False(t, got.IsActive)

	rep, err := repo.Spend(ctx, sp.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), rep.Impressions)
	assert.Equal(t, int64(10), rep.Spent)
}

func TestClicksDeactivateOnlyOnTotalBudget(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewSponsorshipRepository(pool, 5*time.Second)
	productID := insertProduct(t, pool, "Standing Desk", "Office")

	now := time.Now().UTC()
	sp := &domain.Sponsorship{
		ProductID: productID, BusinessID: 1,
		StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour),
		Budget: 20, DailyBudget: 0, DailyLimit: 0, InitialBudget: 20,
		Status: domain.StatusActive, IsActive: true,
	}
	require.NoError(t, repo.Create(ctx, sp))

	c, err := repo.ConsumeClick(ctx, productID, 10, now)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.False(t, c.Exhausted)
	assert.Equal(t, int64(10), c.RemainingBudget)
	assert.Zero(t, c.RemainingDaily)

	c, err = repo.ConsumeClick(ctx, productID, 10, now)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.True(t, c.Exhausted)

	got, err := repo.Get(ctx, sp.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Budget)
	assert.Zero(t, got.DailyBudget)
	assert.False(t, got.IsActive)

	c, err = repo.ConsumeClick(ctx, productID, 10, now)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestTransitionGuard(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewSponsorshipRepository(pool, 5*time.Second)
	productID := insertProduct(t, pool, "Desk Lamp", "Home")

	now := time.Now().UTC()
	sp := &domain.Sponsorship{
		ProductID: productID, BusinessID: 1,
		StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour),
		Budget: 5, DailyBudget: 5, DailyLimit: 5, InitialBudget: 5,
		Status: domain.StatusPending,
	}
	require.NoError(t, repo.Create(ctx, sp))

	activate, _ := domain.TransitionFor(domain.ActionActivate)
	_, err := repo.Transition(ctx, sp.ID, activate)
	require.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	c, err := repo.ConsumeImpression(ctx, productID, 1, now)
	require.NoError(t, err)
	assert.Nil(t, c, "pending sponsorships are not billable")

	approve, _ := domain.TransitionFor(domain.ActionApprove)
	_, err = repo.Transition(ctx, sp.ID, approve)
	require.NoError(t, err)
	got, err := repo.Transition(ctx, sp.ID, activate)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.True(t, got.IsActive)

	_, err = repo.Transition(ctx, 999999, approve)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogSearchAndEngagement(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewCatalogRepository(pool, 5*time.Second)
	id := insertProduct(t, pool, "Mechanical Keyboard", "Electronics")
	insertProduct(t, pool, "Garden Hose", "Garden")

	hits, err := repo.SearchFullText(ctx, "keyboard")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, id, hits[0].ID)

	hits, err = repo.SearchSubstring(ctx, "chanic")
	require.NoError(t, err)
	require.Len(t, hits, 1)

	hits, err = repo.SearchSubstring(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, hits)

	p, err := repo.AddEngagement(ctx, id, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.Views)
	assert.InDelta(t, 3.0, p.PopularityScore, 1e-9)

	_, err = repo.AddEngagement(ctx, 999999, 1, 0)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
