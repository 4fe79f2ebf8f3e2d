package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"storerank/internal/core/port"
)

// Handler is the inbound HTTP adapter. It translates requests into use case
// calls and nothing else.
type Handler struct {
	ranking port.RankingUseCase
	catalog port.CatalogUseCase
	ledger  port.LedgerUseCase
	logger  *slog.Logger
	router  chi.Router
}

// Deps lists what the HTTP surface needs. Metrics and Health are optional.
type Deps struct {
	Ranking port.RankingUseCase
	Catalog port.CatalogUseCase
	Ledger  port.LedgerUseCase
	Metrics http.Handler
	Health  func(ctx context.Context) error
	Logger  *slog.Logger
}

// NewHandler registers every route on a new chi.Router.
func NewHandler(d Deps) *Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		ranking: d.Ranking,
		catalog: d.Catalog,
		ledger:  d.Ledger,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth(d.Health))
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/rankings", func(r chi.Router) {
			r.Get("/home", h.handleRankHome)
			r.Get("/category/{category}", h.handleRankCategory)
			r.Get("/search", h.handleRankSearch)
		})
		r.Route("/products/{id}", func(r chi.Router) {
			r.Post("/view", h.handleTrackView)
			r.Post("/click", h.handleTrackClick)
			r.Put("/sponsored-score", h.handleSetSponsoredScore)
		})
		r.Route("/sponsorships", func(r chi.Router) {
			r.Post("/", h.handleCreateSponsorship)
			r.Post("/reset-daily", h.handleResetDaily)
			r.Get("/{id}", h.handleGetSponsorship)
			r.Get("/{id}/spend", h.handleSpend)
			r.Post("/{id}/top-up", h.handleTopUp)
			r.Post("/{id}/{action:approve|activate|pause|reject}", h.handleTransition)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r.Context()); err != nil {
				h.logger.Warn("health check failed", slog.Any("error", err))
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
