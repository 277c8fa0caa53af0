package handler

import (
	"net/http"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

func (h *Handler) FindCommonTime(w http.ResponseWriter, r *http.Request) {
	var req FindRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	result, err := h.schedulingService.FindCommonTime(r.Context(), httpFindToService(req))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, findResultToHTTP(result))
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	response := PlansResponse{Plans: make([]PlanResponse, 0, len(domain.Tiers()))}
	for _, tier := range domain.Tiers() {
		policy, _ := domain.PolicyFor(tier)
		response.Plans = append(response.Plans, planToHTTP(tier, policy))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "OK"})
}
