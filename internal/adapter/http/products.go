package httpadapter

import (
	"net/http"
)

type engagementResponse struct {
	ProductID       int64   `json:"product_id"`
	Views           int64   `json:"views"`
	Clicks          int64   `json:"clicks"`
	PopularityScore float64 `json:"popularity_score"`
}

type clickResponse struct {
	ProductID int64 `json:"product_id"`
	Charged   bool  `json:"charged"`
}

type sponsoredScoreRequest struct {
	Score *int `json:"score"`
}

func (h *Handler) handleTrackView(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w, "invalid product id")
		return
	}
	p, err := h.catalog.TrackView(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, engagementResponse{
		ProductID:       p.ID,
		Views:           p.Views,
		Clicks:          p.Clicks,
		PopularityScore: p.PopularityScore,
	})
}

func (h *Handler) handleTrackClick(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w, "invalid product id")
		return
	}
	charged, err := h.catalog.TrackClick(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clickResponse{ProductID: id, Charged: charged})
}

func (h *Handler) handleSetSponsoredScore(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w, "invalid product id")
		return
	}
	var req sponsoredScoreRequest
	if err := decodeBody(r, &req); err != nil || req.Score == nil {
		badRequest(w, "body must be {\"score\": <0-100>}")
		return
	}
	if err := h.catalog.SetSponsoredScore(r.Context(), id, *req.Score); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
