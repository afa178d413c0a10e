package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, badRequest("invalid request body"))
		return
	}
	if req.TeamName == "" {
		h.handleError(w, badRequest("team_name is required"))
		return
	}

	team, err := h.teamService.Create(r.Context(), req.TeamName, httpTeamMembersToDomain(req.Members))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateTeamResponse{
		Team: domainTeamToHTTP(team),
	})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.handleError(w, badRequest("name parameter is required"))
		return
	}

	team, err := h.teamService.Get(r.Context(), name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(GetTeamResponse{
		Team: domainTeamToHTTP(team),
	})
}
