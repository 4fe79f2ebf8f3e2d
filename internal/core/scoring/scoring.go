// Package scoring provides the pure score functions used to order organic
// results. None of them touch state.
package scoring

const (
	ViewWeight  = 0.2
	ClickWeight = 1.0

	PopularityRelevanceWeight = 0.7
	RatingRelevanceWeight     = 0.3
)

// Popularity computes the engagement score of a product from its view and
// click counters. The result is never negative.
//
// Formula: max(0, views*0.2 + clicks*1.0)
func Popularity(views, clicks int64) float64 {
	score := float64(views)*ViewWeight + float64(clicks)*ClickWeight
	if score < 0 {
		return 0
	}
	return score
}

// SearchRelevance orders organic text-search results. Sponsored results
// are never reordered by it.
//
// Formula: popularity*0.7 + rating*0.3
func SearchRelevance(popularity, rating float64) float64 {
	return popularity*PopularityRelevanceWeight + rating*RatingRelevanceWeight
}
