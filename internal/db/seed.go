package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"storerank/internal/core/scoring"
)

var seedCategories = []struct {
	name   string
	brands []string
	nouns  []string
}{
	{"Electronics", []string{"Voltix", "Nordsound", "Keyra"}, []string{"Headphones", "Keyboard", "USB Hub", "Speaker"}},
	{"Home", []string{"Hearthly", "Lumo"}, []string{"Desk Lamp", "Throw Blanket", "Kettle"}},
	{"Garden", []string{"Greenway", "Terra"}, []string{"Garden Hose", "Pruning Shears", "Planter"}},
	{"Toys", []string{"Playbox", "Tinker"}, []string{"Puzzle", "Building Blocks", "Kite"}},
}

// Seed inserts a demo catalog and a handful of running sponsorships. It is
// idempotent: rows with existing ids are left alone.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	var id int64
	for _, c := range seedCategories {
		for i, noun := range c.nouns {
			id++
			brand := c.brands[i%len(c.brands)]
			title := fmt.Sprintf("%s %s", brand, noun)
			views := int64(r.Intn(5000))
			clicks := int64(r.Intn(int(views/10) + 1))
			rating := float64(30+r.Intn(21)) / 10
			_, err := db.Exec(ctx, `INSERT INTO products
    (id, business_id, title, brand, category, description, price, rating, views, clicks,
     popularity_score, image_url, seo_keywords)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) ON CONFLICT DO NOTHING`,
				id, int64(i%3+1), title, brand, c.name,
				fmt.Sprintf("The %s from %s. A dependable pick for everyday use.", noun, brand),
				int64(999+r.Intn(20000)), rating, views, clicks,
				scoring.Popularity(views, clicks),
				fmt.Sprintf("/products/%d/main.jpg", id),
				[]string{c.name, brand, noun},
			)
			if err != nil {
				return err
			}
		}
	}
	// keep BIGSERIAL ahead of the explicit ids
	if _, err := db.Exec(ctx, `SELECT setval(pg_get_serial_sequence('products', 'id'), (SELECT max(id) FROM products))`); err != nil {
		return err
	}

	// sponsor the first product of every category
	start := time.Now().AddDate(0, 0, -1)
	end := time.Now().AddDate(0, 1, 0)
	var productID int64 = 1
	for i, c := range seedCategories {
		sponsorshipID := int64(i + 1)
		budget := int64(50000)
		daily := int64(2000)
		_, err := db.Exec(ctx, `INSERT INTO sponsorships
    (id, product_id, business_id, start_date, end_date, budget, daily_budget, daily_limit,
     initial_budget, status, is_active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$7,$6,'ACTIVE',TRUE) ON CONFLICT DO NOTHING`,
			sponsorshipID, productID, int64(1), start, end, budget, daily)
		if err != nil {
			return err
		}
		if _, err = db.Exec(ctx, `UPDATE products SET sponsored_score = $2 WHERE id = $1`,
			productID, 50+r.Intn(51)); err != nil {
			return err
		}
		productID += int64(len(c.nouns))
	}
	_, err := db.Exec(ctx, `SELECT setval(pg_get_serial_sequence('sponsorships', 'id'), (SELECT max(id) FROM sponsorships))`)
	return err
}
