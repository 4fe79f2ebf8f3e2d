package domain

import "time"

// Product is the ranking-relevant projection of a catalog item. Price is
// stored in integer currency units.
type Product struct {
	ID              int64
	BusinessID      int64
	Title           string
	Brand           string
	Category        string
	Description     string
	Price           int64
	Rating          float64
	Views           int64
	Clicks          int64
	PopularityScore float64
	// SponsoredScore is the administrator-set weight (0-100) ordering
	// sponsored results relative to each other.
	SponsoredScore int
	IsActive       bool
	ImageURL       string
	Images         []string
	SEOTitle       string
	SEODescription string
	SEOKeywords    []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

const (
	MinSponsoredScore = 0
	MaxSponsoredScore = 100
)

// ValidateSponsoredScore rejects weights outside 0-100.
func ValidateSponsoredScore(score int) error {
	if score < MinSponsoredScore || score > MaxSponsoredScore {
		return NewValidationError("sponsored_score", "must be between 0 and 100")
	}
	return nil
}

// DecoratedProduct is a ranked product ready for a storefront surface.
// It is a DTO and carries no behaviour.
type DecoratedProduct struct {
	ID              int64             `json:"id"`
	BusinessID      int64             `json:"business_id"`
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Brand           string            `json:"brand,omitempty"`
	Category        string            `json:"category"`
	Description     string            `json:"description,omitempty"`
	Price           int64             `json:"price"`
	Rating          float64           `json:"rating"`
	PopularityScore float64           `json:"popularity_score"`
	SponsoredScore  int               `json:"sponsored_score"`
	Sponsored       bool              `json:"sponsored"`
	PrimaryImage    string            `json:"primary_image"`
	ImageVariants   map[string]string `json:"image_variants"`
	SEOTitle        string            `json:"seo_title"`
	SEODescription  string            `json:"seo_description"`
	SEOKeywords     []string          `json:"seo_keywords"`
}
