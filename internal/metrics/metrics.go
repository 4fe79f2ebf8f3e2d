// Package metrics holds the prometheus collectors of the ranking core.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels of a ledger consumption attempt.
const (
	OutcomeCharged  = "charged"
	OutcomeUnfunded = "unfunded"
	OutcomeError    = "error"
)

// Metrics groups every collector. A nil *Metrics is valid and records
// nothing, which keeps tests free of registry plumbing.
type Metrics struct {
	registry *prometheus.Registry

	rankingRequests  *prometheus.CounterVec
	rankingDuration  *prometheus.HistogramVec
	rankingSponsored *prometheus.HistogramVec
	ledgerConsume    *prometheus.CounterVec
	invalidations    *prometheus.CounterVec
	transitions      *prometheus.CounterVec
}

// New registers all collectors on a fresh registry together with the Go
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		rankingRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ranking_requests_total",
			Help: "Ranking requests by query shape and cache outcome.",
		}, []string{"shape", "cache"}),
		rankingDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ranking_compute_duration_seconds",
			Help:    "Time spent computing a ranking on cache miss.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"shape"}),
		rankingSponsored: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ranking_sponsored_items",
			Help:    "Funded sponsored items per computed ranking.",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		}, []string{"shape"}),
		ledgerConsume: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_consume_total",
			Help: "Budget consumption attempts by kind and outcome.",
		}, []string{"kind", "outcome"}),
		invalidations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ranking_cache_invalidations_total",
			Help: "Ranking cache prefix invalidations by reason.",
		}, []string{"reason"}),
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sponsorship_transitions_total",
			Help: "Administrative sponsorship transitions by action and result.",
		}, []string{"action", "result"}),
	}
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRanking(shape string, cacheHit bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if cacheHit {
		outcome = "hit"
	}
	m.rankingRequests.WithLabelValues(shape, outcome).Inc()
}

func (m *Metrics) ObserveCompute(shape string, d time.Duration, sponsored int) {
	if m == nil {
		return
	}
	m.rankingDuration.WithLabelValues(shape).Observe(d.Seconds())
	m.rankingSponsored.WithLabelValues(shape).Observe(float64(sponsored))
}

func (m *Metrics) ObserveConsume(kind, outcome string) {
	if m == nil {
		return
	}
	m.ledgerConsume.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) IncInvalidation(reason string) {
	if m == nil {
		return
	}
	m.invalidations.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveTransition(action string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	m.transitions.WithLabelValues(action, result).Inc()
}
