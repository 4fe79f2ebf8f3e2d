package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"storerank/internal/adapter/cache/keys"
	"storerank/internal/core/domain"
	"storerank/internal/core/port"
	"storerank/internal/core/scoring"
	"storerank/internal/metrics"
	"storerank/internal/tracing"
)

// Shape names a ranking query variant.
type Shape string

const (
	ShapeGlobal   Shape = "global"
	ShapeCategory Shape = "category"
	ShapeSearch   Shape = "search"
)

// TTLs holds the cache lifetime of each query shape.
type TTLs struct {
	Home     time.Duration
	Category time.Duration
	Search   time.Duration
}

// SponsorshipWindows reports which products are sponsored right now,
// judged by the date window alone.
type SponsorshipWindows interface {
	ActiveProductIDs(ctx context.Context, now time.Time) ([]int64, error)
}

// RankingService implements port.RankingUseCase on top of the catalog, the
// ledger and the result cache.
type RankingService struct {
	catalog   port.CatalogRepository
	windows   SponsorshipWindows
	ledger    port.ImpressionConsumer
	cache     port.RankingCache
	keys      keys.Builder
	ttl       TTLs
	decorator *Decorator
	workers   int

	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

var _ port.RankingUseCase = (*RankingService)(nil)

type RankingOption func(*RankingService)

// WithWorkers bounds how many impression charges one ranking call runs in
// parallel.
func WithWorkers(n int) RankingOption {
	return func(s *RankingService) {
		if n > 0 {
			s.workers = n
		}
	}
}

func WithRankingClock(now func() time.Time) RankingOption {
	return func(s *RankingService) { s.now = now }
}

func WithRankingMetrics(m *metrics.Metrics) RankingOption {
	return func(s *RankingService) { s.metrics = m }
}

func WithRankingLogger(l *slog.Logger) RankingOption {
	return func(s *RankingService) { s.logger = l }
}

func NewRankingService(
	catalog port.CatalogRepository,
	windows SponsorshipWindows,
	ledger port.ImpressionConsumer,
	cache port.RankingCache,
	kb keys.Builder,
	ttl TTLs,
	decorator *Decorator,
	opts ...RankingOption,
) *RankingService {
	s := &RankingService{
		catalog:   catalog,
		windows:   windows,
		ledger:    ledger,
		cache:     cache,
		keys:      kb,
		ttl:       ttl,
		decorator: decorator,
		workers:   8,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RankGlobal ranks every active product for the homepage.
func (s *RankingService) RankGlobal(ctx context.Context) ([]domain.DecoratedProduct, error) {
	return s.rank(ctx, ShapeGlobal, s.keys.Global(), s.ttl.Home, s.catalog.ListActive, byPopularity)
}

// RankByCategory ranks active products of exactly one category.
func (s *RankingService) RankByCategory(ctx context.Context, category string) ([]domain.DecoratedProduct, error) {
	if category == "" {
		return []domain.DecoratedProduct{}, nil
	}
	fetch := func(ctx context.Context) ([]domain.Product, error) {
		return s.catalog.ListActiveByCategory(ctx, category)
	}
	return s.rank(ctx, ShapeCategory, s.keys.Category(category), s.ttl.Category, fetch, byPopularity)
}

// RankBySearch ranks active products matching query. The full-text index
// is tried first; if it has no hits a substring match runs so that content
// missing from the index is still findable.
func (s *RankingService) RankBySearch(ctx context.Context, query string) ([]domain.DecoratedProduct, error) {
	q := keys.NormalizeQuery(query)
	if q == "" {
		return []domain.DecoratedProduct{}, nil
	}
	fetch := func(ctx context.Context) ([]domain.Product, error) {
		hits, err := s.catalog.SearchFullText(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("full-text search: %w", err)
		}
		if len(hits) > 0 {
			return hits, nil
		}
		hits, err = s.catalog.SearchSubstring(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("substring search: %w", err)
		}
		return hits, nil
	}
	return s.rank(ctx, ShapeSearch, s.keys.Search(q), s.ttl.Search, fetch, byRelevance)
}

type fetchFunc func(ctx context.Context) ([]domain.Product, error)

// organicScore orders organic candidates, highest first.
type organicScore func(p domain.Product) float64

func byPopularity(p domain.Product) float64 { return p.PopularityScore }

func byRelevance(p domain.Product) float64 {
	return scoring.SearchRelevance(p.PopularityScore, p.Rating)
}

func (s *RankingService) rank(ctx context.Context, shape Shape, key string, ttl time.Duration, fetch fetchFunc, score organicScore) ([]domain.DecoratedProduct, error) {
	ctx, span := tracing.StartSpan(ctx, "ranking."+string(shape), attribute.String("cache.key", key))
	defer span.End()

	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("ranking cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	if ok {
		s.metrics.ObserveRanking(string(shape), true)
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}
	s.metrics.ObserveRanking(string(shape), false)

	start := time.Now()
	candidates, err := fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s candidates: %w", shape, err)
	}
	out, sponsored, err := s.merge(ctx, candidates, score)
	if err != nil {
		return nil, fmt.Errorf("rank %s: %w", shape, err)
	}
	s.metrics.ObserveCompute(string(shape), time.Since(start), sponsored)

	if err = s.cache.Set(ctx, key, out, ttl); err != nil {
		s.logger.Warn("ranking cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	return out, nil
}

type ranked struct {
	product   domain.Product
	sponsored bool
}

// merge partitions candidates into sponsored and organic, keeps only the
// sponsored ones the ledger funds for this response, orders both partitions
// and concatenates them sponsored first. It returns the number of funded
// sponsored items.
func (s *RankingService) merge(ctx context.Context, candidates []domain.Product, score organicScore) ([]domain.DecoratedProduct, int, error) {
	activeIDs, err := s.windows.ActiveProductIDs(ctx, s.now())
	if err != nil {
		return nil, 0, fmt.Errorf("load sponsorship windows: %w", err)
	}
	inWindow := make(map[int64]struct{}, len(activeIDs))
	for _, id := range activeIDs {
		inWindow[id] = struct{}{}
	}

	var sponsored, organic []domain.Product
	for _, p := range candidates {
		if !p.IsActive {
			continue
		}
		if _, ok := inWindow[p.ID]; ok {
			sponsored = append(sponsored, p)
		} else {
			organic = append(organic, p)
		}
	}

	// Unfunded sponsored candidates are dropped, not demoted to organic.
	funded := s.fund(ctx, sponsored)

	sort.SliceStable(funded, func(i, j int) bool {
		return funded[i].SponsoredScore > funded[j].SponsoredScore
	})
	sort.SliceStable(organic, func(i, j int) bool {
		return score(organic[i]) > score(organic[j])
	})

	merged := make([]ranked, 0, len(funded)+len(organic))
	for _, p := range funded {
		merged = append(merged, ranked{product: p, sponsored: true})
	}
	for _, p := range organic {
		merged = append(merged, ranked{product: p})
	}
	merged = dedupe(merged)

	out := make([]domain.DecoratedProduct, 0, len(merged))
	for _, r := range merged {
		out = append(out, s.decorator.Decorate(r.product, r.sponsored))
	}
	return out, len(funded), nil
}

// fund charges one impression per sponsored candidate using a bounded
// worker pool and returns the funded ones in their original order. A
// failed charge counts as unfunded and is not retried within the call.
// Cached rankings are invalidated once for the whole batch.
func (s *RankingService) fund(ctx context.Context, sponsored []domain.Product) []domain.Product {
	if len(sponsored) == 0 {
		return nil
	}
	ok := make([]bool, len(sponsored))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, p := range sponsored {
		g.Go(func() error {
			charged, err := s.ledger.ChargeImpression(ctx, p.ID)
			if err != nil {
				s.logger.Warn("impression charge failed, treating as unfunded",
					slog.Int64("product_id", p.ID), slog.Any("error", err))
				return nil
			}
			ok[i] = charged
			return nil
		})
	}
	_ = g.Wait()

	funded := make([]domain.Product, 0, len(sponsored))
	for i, p := range sponsored {
		if ok[i] {
			funded = append(funded, p)
		}
	}
	if len(funded) > 0 {
		s.ledger.ImpressionsCharged(ctx)
	}
	return funded
}

// dedupe keeps the first occurrence of every product id.
func dedupe(items []ranked) []ranked {
	seen := make(map[int64]struct{}, len(items))
	out := items[:0]
	for _, it := range items {
		if _, dup := seen[it.product.ID]; dup {
			continue
		}
		seen[it.product.ID] = struct{}{}
		out = append(out, it)
	}
	return out
}

