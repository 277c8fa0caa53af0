package handler

import (
	"net/http"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.groupService.CreateGroup(r.Context(), &domain.Group{
		ID:    req.GroupID,
		Title: req.Title,
		Tier:  domain.PlanTier(req.Tier),
	}, req.CreatorID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, GroupEnvelope{Group: domainGroupToHTTP(group)})
}

// InitGroup - регистрация чата ботом, повторный вызов безопасен
func (h *Handler) InitGroup(w http.ResponseWriter, r *http.Request) {
	var req InitGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.groupService.InitGroup(r.Context(), req.GroupID, req.Title)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GroupEnvelope{Group: domainGroupToHTTP(group)})
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := queryInt64(r, "group_id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.groupService.GetGroup(r.Context(), groupID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainGroupToHTTP(group))
}

func (h *Handler) ListUserGroups(w http.ResponseWriter, r *http.Request) {
	userID, err := queryInt64(r, "user_id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	groups, err := h.groupService.ListUserGroups(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := GroupListResponse{Groups: make([]GroupResponse, 0, len(groups))}
	for _, g := range groups {
		response.Groups = append(response.Groups, domainGroupToHTTP(g))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	var req MembershipRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.groupService.JoinGroup(r.Context(), req.GroupID, req.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GroupEnvelope{Group: domainGroupToHTTP(group)})
}

func (h *Handler) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	var req MembershipRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.groupService.LeaveGroup(r.Context(), req.GroupID, req.UserID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetTier(w http.ResponseWriter, r *http.Request) {
	var req SetTierRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.groupService.ChangeTier(r.Context(), req.GroupID, domain.PlanTier(req.Tier))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GroupEnvelope{Group: domainGroupToHTTP(group)})
}
