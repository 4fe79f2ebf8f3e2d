package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storerank/internal/core/domain"
	"storerank/internal/core/port"
	"storerank/internal/core/scoring"
	"storerank/internal/tracing"
)

const productColumns = `id, business_id, title, brand, category, description, price, rating,
    views, clicks, popularity_score, sponsored_score, is_active, image_url, images,
    seo_title, seo_description, seo_keywords, created_at, updated_at`

// CatalogRepository implements port.CatalogRepository.
type CatalogRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

var _ port.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(pool *pgxpool.Pool, timeout time.Duration) *CatalogRepository {
	return &CatalogRepository{pool: pool, timeout: timeout}
}

func (r *CatalogRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `
        SELECT `+productColumns+` FROM products
        WHERE is_active
        ORDER BY popularity_score DESC, id`)
}

func (r *CatalogRepository) ListActiveByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return r.list(ctx, `
        SELECT `+productColumns+` FROM products
        WHERE is_active AND category = $1
        ORDER BY popularity_score DESC, id`, category)
}

// SearchFullText matches against the generated search vector and returns
// hits by text rank.
func (r *CatalogRepository) SearchFullText(ctx context.Context, query string) ([]domain.Product, error) {
	return r.list(ctx, `
        SELECT `+productColumns+` FROM products
        WHERE is_active AND search_vector @@ plainto_tsquery('simple', $1)
        ORDER BY ts_rank(search_vector, plainto_tsquery('simple', $1)) DESC, id`, query)
}

func (r *CatalogRepository) SearchSubstring(ctx context.Context, query string) ([]domain.Product, error) {
	pattern := "%" + escapeLike(query) + "%"
	return r.list(ctx, `
        SELECT `+productColumns+` FROM products
        WHERE is_active
          AND (title ILIKE $1 OR category ILIKE $1 OR brand ILIKE $1 OR description ILIKE $1)
        ORDER BY popularity_score DESC, id`, pattern)
}

func (r *CatalogRepository) list(ctx context.Context, sql string, args ...any) (ps []domain.Product, err error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()
	ctx, end := tracing.StartDBSpan(ctx, "products", tracing.DBOperationQuery)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanProduct)
}

func (r *CatalogRepository) Get(ctx context.Context, id int64) (p *domain.Product, err error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()
	ctx, end := tracing.StartDBSpan(ctx, "products", tracing.DBOperationQuery)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return one(rows, err)
}

func (r *CatalogRepository) SetSponsoredScore(ctx context.Context, id int64, score int) (err error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()
	ctx, end := tracing.StartDBSpan(ctx, "products", tracing.DBOperationUpdate)
	defer func() { end(err) }()

	tag, err := r.pool.Exec(ctx, `
        UPDATE products SET sponsored_score = $2, updated_at = now() WHERE id = $1`, id, score)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// AddEngagement bumps the counters and stores the recomputed popularity in
// one transaction, so concurrent increments are never lost.
func (r *CatalogRepository) AddEngagement(ctx context.Context, id, views, clicks int64) (p *domain.Product, err error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()
	ctx, end := tracing.StartDBSpan(ctx, "products", tracing.DBOperationUpdate)
	defer func() { end(err) }()

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
			p = nil
		}
	}()

	var totalViews, totalClicks int64
	err = tx.QueryRow(ctx, `
        UPDATE products SET views = views + $2, clicks = clicks + $3
        WHERE id = $1
        RETURNING views, clicks`, id, views, clicks).Scan(&totalViews, &totalClicks)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
        UPDATE products SET popularity_score = $2, updated_at = now()
        WHERE id = $1
        RETURNING `+productColumns, id, scoring.Popularity(totalViews, totalClicks))
	return one(rows, err)
}

func one(rows pgx.Rows, err error) (*domain.Product, error) {
	if err != nil {
		return nil, err
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProduct(row pgx.CollectableRow) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.BusinessID,
		&p.Title,
		&p.Brand,
		&p.Category,
		&p.Description,
		&p.Price,
		&p.Rating,
		&p.Views,
		&p.Clicks,
		&p.PopularityScore,
		&p.SponsoredScore,
		&p.IsActive,
		&p.ImageURL,
		&p.Images,
		&p.SEOTitle,
		&p.SEODescription,
		&p.SEOKeywords,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes query match literally inside an ILIKE pattern.
func escapeLike(query string) string {
	return likeEscaper.Replace(query)
}
