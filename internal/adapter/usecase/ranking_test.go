package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storerank/internal/adapter/cache"
	"storerank/internal/adapter/cache/keys"
	"storerank/internal/core/domain"
	"storerank/internal/core/port/mocks"
)

var rankingNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type rankingDeps struct {
	catalog *mocks.MockCatalogRepository
	windows *mocks.MockSponsorshipRepository
	ledger  *mocks.MockImpressionConsumer
	cache   *cache.Memory
	keys    keys.Builder
}

func newTestRanking(t *testing.T) (*RankingService, rankingDeps) {
	t.Helper()
	deps := rankingDeps{
		catalog: mocks.NewMockCatalogRepository(t),
		windows: mocks.NewMockSponsorshipRepository(t),
		ledger:  mocks.NewMockImpressionConsumer(t),
		cache:   cache.NewMemory(64),
		keys:    keys.New("ranking:"),
	}
	svc := NewRankingService(
		deps.catalog, deps.windows, deps.ledger, deps.cache, deps.keys,
		TTLs{Home: time.Minute, Category: time.Minute, Search: time.Minute},
		newTestDecorator(t),
		WithWorkers(4),
		WithRankingClock(func() time.Time { return rankingNow }),
	)
	return svc, deps
}

func product(id int64, category string, popularity float64, sponsoredScore int) domain.Product {
	return domain.Product{
		ID:              id,
		Title:           "Product",
		Category:        category,
		PopularityScore: popularity,
		SponsoredScore:  sponsoredScore,
		IsActive:        true,
	}
}

func ids(items []domain.DecoratedProduct) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestRankByCategoryOrdersSponsoredFirst(t *testing.T) {
	svc, deps := newTestRanking(t)
	ctx := context.Background()

	candidates := []domain.Product{
		product(1, "Electronics", 5, 50),
		product(2, "Electronics", 40, 0),
		product(3, "Electronics", 1, 80),
		product(4, "Electronics", 90, 0),
		product(5, "Electronics", 10, 0),
	}
	deps.catalog.EXPECT().ListActiveByCategory(mock.Anything, "Electronics").Return(candidates, nil).Once()
	deps.windows.EXPECT().ActiveProductIDs(mock.Anything, rankingNow).Return([]int64{1, 3}, nil).Once()
	deps.ledger.EXPECT().ChargeImpression(mock.Anything, int64(1)).Return(true, nil).Once()
	deps.ledger.EXPECT().ChargeImpression(mock.Anything, int64(3)).Return(true, nil).Once()
	deps.ledger.EXPECT().ImpressionsCharged(mock.Anything).Return().Once()

	got, err := svc.RankByCategory(ctx, "Electronics")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 4, 2, 5}, ids(got))
	assert.True(t, got[0].Sponsored)
	assert.True(t, got[1].Sponsored)
	assert.False(t, got[2].Sponsored)
}

func TestRankingUnfundedSponsoredIsDropped(t *testing.T) {
	svc, deps := newTestRanking(t)
	ctx := context.Background()

	candidates := []domain.Product{
		product(1, "Toys", 99, 90),
		product(2, "Toys", 50, 70),
		product(3, "Toys", 10, 0),
	}
	deps.catalog.EXPECT().ListActive(mock.Anything).Return(candidates, nil).Once()
	deps.windows.EXPECT().ActiveProductIDs(mock.Anything, rankingNow).Return([]int64{1, 2}, nil).Once()
	deps.ledger.EXPECT().ChargeImpression(mock.Anything, int64(1)).Return(false, nil).Once()
	deps.ledger.EXPECT().ChargeImpression(mock.Anything, int64(2)).Return(false, errors.New("timeout")).Once()

	got, err := svc.RankGlobal(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids(got))
}

func TestRankingSkipsInactiveAndDuplicates(t *testing.T) {
	svc, deps := newTestRanking(t)
	ctx := context.Background()

	inactive := product(4, "Toys", 100, 0)
	inactive.IsActive = false
	candidates := []domain.Product{
		product(1, "Toys", 10, 0),
		product(2, "Toys", 20, 0),
		product(1, "Toys", 10, 0),
		inactive,
	}
	deps.catalog.EXPECT().ListActive(mock.Anything).Return(candidates, nil).Once()
	deps.windows.EXPECT().ActiveProductIDs(mock.Anything, rankingNow).Return(nil, nil).Once()

	got, err := svc.RankGlobal(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids(got))
}

func TestRankingServesFromCacheUntilInvalidated(t *testing.T) {
	svc, deps := newTestRanking(t)
	ctx := context.Background()

	deps.catalog.EXPECT().ListActive(mock.Anything).Return([]domain.Product{product(1, "Toys", 1, 0)}, nil).Twice()
	deps.windows.EXPECT().ActiveProductIDs(mock.Anything, rankingNow).Return(nil, nil).Twice()

	first, err := svc.RankGlobal(ctx)
	require.NoError(t, err)
	second, err := svc.RankGlobal(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	n, err := deps.cache.InvalidatePrefix(ctx, deps.keys.Namespace)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.RankGlobal(ctx)
	require.NoError(t, err)
}

func TestRankingCachesEmptyResult(t *testing.T) {
	svc, deps := newTestRanking(t)
	ctx := context.Background()

	deps.catalog.EXPECT().ListActiveByCategory(mock.Anything, "Nothing").Return(nil, nil).Once()
	deps.windows.EXPECT().ActiveProductIDs(mock.Anything, rankingNow).Return(nil, nil).Once()

	for range 3 {
		got, err := svc.RankByCategory(ctx, "Nothing")
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestRankingFetchErrorFailsCall(t *testing.T) {
	svc, deps := newTestRanking(t)
	ctx := context.Background()
	boom := errors.New("connection refused")

	deps.catalog.EXPECT().ListActive(mock.Anything).Return(nil, boom).Once()

	_, err := svc.RankGlobal(ctx)
	require.ErrorIs(t, err, boom)
	assert.Zero(t, deps.cache.Len())
}

func TestRankingWindowErrorFailsCall(t *testing.T) {
	svc, deps := newTestRanking(t)
	ctx := context.Background()
	boom := errors.New("connection reset")

	deps.catalog.EXPECT().ListActive(mock.Anything).Return([]domain.Product{product(1, "Toys", 1, 0)}, nil).Once()
	deps.windows.EXPECT().ActiveProductIDs(mock.Anything, rankingNow).Return(nil, boom).Once()

	_, err := svc.RankGlobal(ctx)
	require.ErrorIs(t, err, boom)
}

func TestRankByCategoryEmptyCategory(t *testing.T) {
	svc, _ := newTestRanking(t)

	got, err := svc.RankByCategory(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankBySearchBlankQueryTouchesNothing(t *testing.T) {
	svc, deps := newTestRanking(t)

	for _, q := range []string{"", "   ", "\t\n"} {
		got, err := svc.RankBySearch(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
	assert.Zero(t, deps.cache.Len())
}

func TestRankBySearchFallsBackToSubstring(t *testing.T) {
	svc, deps := newTestRanking(t)
	ctx := context.Background()

	deps.catalog.EXPECT().SearchFullText(mock.Anything, "usb hub").Return(nil, nil).Once()
	deps.catalog.EXPECT().SearchSubstring(mock.Anything, "usb hub").Return([]domain.Product{product(7, "Electronics", 3, 0)}, nil).Once()
	deps.windows.EXPECT().ActiveProductIDs(mock.Anything, rankingNow).Return(nil, nil).Once()

	got, err := svc.RankBySearch(ctx, "  USB   Hub ")
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, ids(got))

	// Normalized queries share the cache entry.
	got, err = svc.RankBySearch(ctx, "usb hub")
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, ids(got))
}

func TestRankBySearchOrdersOrganicByRelevance(t *testing.T) {
	svc, deps := newTestRanking(t)
	ctx := context.Background()

	low := product(1, "Audio", 10, 0)
	low.Rating = 1
	high := product(2, "Audio", 10, 0)
	high.Rating = 5
	deps.catalog.EXPECT().SearchFullText(mock.Anything, "speaker").Return([]domain.Product{low, high}, nil).Once()
	deps.windows.EXPECT().ActiveProductIDs(mock.Anything, rankingNow).Return(nil, nil).Once()

	got, err := svc.RankBySearch(ctx, "speaker")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids(got))
}

func TestRankingInvalidatesOncePerFundedBatch(t *testing.T) {
	repo := newMemSponsorships(
		activeSponsorship(1, 1, 100, 10),
		activeSponsorship(2, 2, 100, 10),
		activeSponsorship(3, 3, 100, 10),
	)
	ledger, _, inv := newTestLedger(t, repo)
	inv.EXPECT().Invalidate(mock.Anything, "impression").Return().Once()

	catalog := mocks.NewMockCatalogRepository(t)
	catalog.EXPECT().ListActive(mock.Anything).Return([]domain.Product{
		product(1, "Toys", 1, 30),
		product(2, "Toys", 1, 20),
		product(3, "Toys", 1, 10),
		product(4, "Toys", 9, 0),
	}, nil).Once()

	svc := NewRankingService(catalog, repo, ledger, cache.NewMemory(64), keys.New("ranking:"),
		TTLs{Home: time.Minute, Category: time.Minute, Search: time.Minute},
		newTestDecorator(t),
		WithWorkers(3),
		WithRankingClock(func() time.Time { return rankingNow }),
	)

	got, err := svc.RankGlobal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(got))
	assert.Len(t, repo.charges, 3)
}

func TestRankingUnfundedBatchSkipsInvalidation(t *testing.T) {
	svc, deps := newTestRanking(t)

	deps.catalog.EXPECT().ListActive(mock.Anything).Return([]domain.Product{product(1, "Toys", 1, 30)}, nil).Once()
	deps.windows.EXPECT().ActiveProductIDs(mock.Anything, rankingNow).Return([]int64{1}, nil).Once()
	deps.ledger.EXPECT().ChargeImpression(mock.Anything, int64(1)).Return(false, nil).Once()

	got, err := svc.RankGlobal(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	deps.ledger.AssertNotCalled(t, "ImpressionsCharged", mock.Anything)
}
