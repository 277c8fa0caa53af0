package handler

import (
	"net/http"
)

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	groupID, err := queryInt64(r, "group_id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	stats, err := h.statsService.GetGroupStats(r.Context(), groupID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainStatsToHTTP(stats))
}
