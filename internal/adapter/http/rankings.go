package httpadapter

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"storerank/internal/core/domain"
)

type rankingResponse struct {
	Items []domain.DecoratedProduct `json:"items"`
	Count int                       `json:"count"`
}

func (h *Handler) writeRanking(w http.ResponseWriter, r *http.Request, items []domain.DecoratedProduct, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.DecoratedProduct{}
	}
	writeJSON(w, http.StatusOK, rankingResponse{Items: items, Count: len(items)})
}

func (h *Handler) handleRankHome(w http.ResponseWriter, r *http.Request) {
	items, err := h.ranking.RankGlobal(r.Context())
	h.writeRanking(w, r, items, err)
}

// chi matches against RawPath when the path carries escaped reserved
// characters, so the category may still be percent-encoded here.
func (h *Handler) handleRankCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if r.URL.RawPath != "" {
		var err error
		if category, err = url.PathUnescape(category); err != nil {
			badRequest(w, "invalid category")
			return
		}
	}
	items, err := h.ranking.RankByCategory(r.Context(), category)
	h.writeRanking(w, r, items, err)
}

func (h *Handler) handleRankSearch(w http.ResponseWriter, r *http.Request) {
	items, err := h.ranking.RankBySearch(r.Context(), r.URL.Query().Get("q"))
	h.writeRanking(w, r, items, err)
}
