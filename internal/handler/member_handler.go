package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/bagdasarian/member-roster/internal/domain"
	"github.com/bagdasarian/member-roster/internal/repository"
)

func badRequest(message string) *domain.DomainError {
	return &domain.DomainError{
		Code:    "BAD_REQUEST",
		Message: message,
	}
}

func (h *Handler) RegisterMember(w http.ResponseWriter, r *http.Request) {
	var req RegisterMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, badRequest("invalid request body"))
		return
	}
	if req.Username == "" {
		h.handleError(w, badRequest("username is required"))
		return
	}

	member, err := h.memberService.Register(r.Context(), req.Username, req.Age, req.TeamName)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(RegisterMemberResponse{
		Member: domainMemberToHTTP(member),
	})
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		h.handleError(w, badRequest("id parameter is required and must be an integer"))
		return
	}

	member, err := h.memberService.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainMemberToHTTP(member))
}

func (h *Handler) ListMembersByAge(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	age, err := strconv.Atoi(query.Get("age"))
	if err != nil {
		h.handleError(w, badRequest("age parameter is required and must be an integer"))
		return
	}

	page := repository.PageRequest{Sort: query.Get("sort")}
	if v := query.Get("page"); v != "" {
		page.Page, _ = strconv.Atoi(v)
	}
	if v := query.Get("size"); v != "" {
		page.Size, _ = strconv.Atoi(v)
	}

	result, err := h.memberService.ListByAge(r.Context(), age, page)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MemberPageResponse{
		Members:    domainMembersToHTTP(result.Content),
		TotalCount: result.TotalCount,
		Page:       result.Page,
		Size:       result.Size,
		TotalPages: result.TotalPages(),
		HasNext:    result.HasNext(),
	})
}

func (h *Handler) SearchMembers(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("names")
	if raw == "" {
		h.handleError(w, badRequest("names parameter is required"))
		return
	}

	names := make([]string, 0)
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	members, err := h.memberService.Search(r.Context(), names)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SearchMembersResponse{
		Members: domainMembersToHTTP(members),
	})
}

func (h *Handler) ListMemberDtos(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.memberService.ListDtos(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MemberDtoListResponse{
		Members: domainDtosToHTTP(dtos),
	})
}

func (h *Handler) BulkAgePlus(w http.ResponseWriter, r *http.Request) {
	var req BulkAgePlusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, badRequest("invalid request body"))
		return
	}

	updated, err := h.memberService.BulkAgePlus(r.Context(), req.Age)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(BulkAgePlusResponse{Updated: updated})
}
