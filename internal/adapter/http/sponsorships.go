package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"storerank/internal/core/domain"
)

type sponsorshipResponse struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"product_id"`
	BusinessID    int64     `json:"business_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Budget        int64     `json:"budget"`
	DailyBudget   int64     `json:"daily_budget"`
	DailyLimit    int64     `json:"daily_limit"`
	InitialBudget int64     `json:"initial_budget"`
	Status        string    `json:"status"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toSponsorshipResponse(sp *domain.Sponsorship) sponsorshipResponse {
	return sponsorshipResponse{
		ID:            sp.ID,
		ProductID:     sp.ProductID,
		BusinessID:    sp.BusinessID,
		StartDate:     sp.StartDate,
		EndDate:       sp.EndDate,
		Budget:        sp.Budget,
		DailyBudget:   sp.DailyBudget,
		DailyLimit:    sp.DailyLimit,
		InitialBudget: sp.InitialBudget,
		Status:        string(sp.Status),
		IsActive:      sp.IsActive,
		CreatedAt:     sp.CreatedAt,
		UpdatedAt:     sp.UpdatedAt,
	}
}

type createSponsorshipRequest struct {
	ProductID   int64     `json:"product_id"`
	BusinessID  int64     `json:"business_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Budget      int64     `json:"budget"`
	DailyBudget int64     `json:"daily_budget"`
}

type topUpRequest struct {
	Amount int64 `json:"amount"`
}

type spendResponse struct {
	SponsorshipID   int64 `json:"sponsorship_id"`
	InitialBudget   int64 `json:"initial_budget"`
	RemainingBudget int64 `json:"remaining_budget"`
	RemainingDaily  int64 `json:"remaining_daily"`
	Spent           int64 `json:"spent"`
	Impressions     int64 `json:"impressions"`
	ImpressionCost  int64 `json:"impression_cost"`
	Clicks          int64 `json:"clicks"`
	ClickCost       int64 `json:"click_cost"`
}

type resetResponse struct {
	Sponsorships int64 `json:"sponsorships"`
}

func (h *Handler) handleCreateSponsorship(w http.ResponseWriter, r *http.Request) {
	var req createSponsorshipRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	sp, err := h.ledger.CreateSponsorship(r.Context(), domain.NewSponsorship{
		ProductID:   req.ProductID,
		BusinessID:  req.BusinessID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		DailyBudget: req.DailyBudget,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSponsorshipResponse(sp))
}

func (h *Handler) handleGetSponsorship(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w, "invalid sponsorship id")
		return
	}
	sp, err := h.ledger.GetSponsorship(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSponsorshipResponse(sp))
}

func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w, "invalid sponsorship id")
		return
	}
	action := domain.Action(chi.URLParam(r, "action"))
	sp, err := h.ledger.Apply(r.Context(), id, action)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSponsorshipResponse(sp))
}

func (h *Handler) handleTopUp(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w, "invalid sponsorship id")
		return
	}
	var req topUpRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	sp, err := h.ledger.TopUp(r.Context(), id, req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSponsorshipResponse(sp))
}

func (h *Handler) handleSpend(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		badRequest(w, "invalid sponsorship id")
		return
	}
	rep, err := h.ledger.Spend(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, spendResponse{
		SponsorshipID:   rep.SponsorshipID,
		InitialBudget:   rep.InitialBudget,
		RemainingBudget: rep.RemainingBudget,
		RemainingDaily:  rep.RemainingDaily,
		Spent:           rep.Spent,
		Impressions:     rep.Impressions,
		ImpressionCost:  rep.ImpressionCost,
		Clicks:          rep.Clicks,
		ClickCost:       rep.ClickCost,
	})
}

// handleResetDaily opens a new serving window. It is meant for an external
// scheduler.
func (h *Handler) handleResetDaily(w http.ResponseWriter, r *http.Request) {
	n, err := h.ledger.ResetDailyBudgets(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resetResponse{Sponsorships: n})
}
