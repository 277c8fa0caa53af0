package handler

import (
	"net/http"
	"strconv"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

func (h *Handler) AddSlot(w http.ResponseWriter, r *http.Request) {
	var req AddSlotRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	slot, err := httpSlotToDomain(req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	created, err := h.slotService.AddSlot(r.Context(), slot)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, SlotEnvelope{Slot: domainSlotToHTTP(*created)})
}

func (h *Handler) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	var req RemoveSlotRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.slotService.RemoveSlot(r.Context(), req.SlotID, req.UserID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListSlots - все слоты группы или, с user_id, только слоты участника
func (h *Handler) ListSlots(w http.ResponseWriter, r *http.Request) {
	groupID, err := queryInt64(r, "group_id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var slots []domain.BusySlot
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		userID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			h.handleError(w, domain.NewBadRequestError("user_id must be an integer"))
			return
		}
		slots, err = h.slotService.ListMemberSlots(r.Context(), groupID, userID)
	} else {
		slots, err = h.slotService.ListGroupSlots(r.Context(), groupID)
	}
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SlotListResponse{Slots: domainSlotsToHTTP(slots)})
}
