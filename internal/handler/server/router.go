package server

import (
	"net/http"

	"github.com/bagdasarian/freetime-finder/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /plans", h.ListPlans)

	mux.HandleFunc("POST /users/register", h.RegisterUser)
	mux.HandleFunc("GET /users/get", h.GetUser)

	mux.HandleFunc("POST /groups/create", h.CreateGroup)
	mux.HandleFunc("POST /groups/init", h.InitGroup)
	mux.HandleFunc("GET /groups/get", h.GetGroup)
	mux.HandleFunc("GET /groups/list", h.ListUserGroups)
	mux.HandleFunc("POST /groups/join", h.JoinGroup)
	mux.HandleFunc("POST /groups/leave", h.LeaveGroup)
	mux.HandleFunc("POST /groups/setTier", h.SetTier)

	mux.HandleFunc("POST /slots/add", h.AddSlot)
	mux.HandleFunc("POST /slots/remove", h.RemoveSlot)
	mux.HandleFunc("GET /slots/list", h.ListSlots)

	mux.HandleFunc("POST /find", h.FindCommonTime)
	mux.HandleFunc("GET /stats", h.GetStats)
}
