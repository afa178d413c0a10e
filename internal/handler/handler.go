package handler

import "github.com/bagdasarian/member-roster/internal/service"

type Handler struct {
	memberService service.MemberService
	teamService   service.TeamService
}

func NewHandler(memberService service.MemberService, teamService service.TeamService) *Handler {
	return &Handler{
		memberService: memberService,
		teamService:   teamService,
	}
}
