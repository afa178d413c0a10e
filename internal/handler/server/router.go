package server

import (
	"net/http"

	"github.com/bagdasarian/member-roster/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /members", h.RegisterMember)
	mux.HandleFunc("GET /members", h.ListMembersByAge)
	mux.HandleFunc("GET /members/get", h.GetMember)
	mux.HandleFunc("GET /members/search", h.SearchMembers)
	mux.HandleFunc("GET /members/dto", h.ListMemberDtos)
	mux.HandleFunc("POST /members/bulkAgePlus", h.BulkAgePlus)
	mux.HandleFunc("POST /team/add", h.CreateTeam)
	mux.HandleFunc("GET /team/get", h.GetTeam)
}
