package handler

import (
	"net/http"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	user, err := h.userService.Register(r.Context(), &domain.User{
		ID:        req.UserID,
		Username:  req.Username,
		FirstName: req.FirstName,
		Timezone:  req.Timezone,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := queryInt64(r, "user_id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}
