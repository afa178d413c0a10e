package handler

import "github.com/bagdasarian/member-roster/internal/domain"

func domainMemberToHTTP(member *domain.Member) MemberResponse {
	resp := MemberResponse{
		MemberID: member.ID,
		Username: member.Username,
		Age:      member.Age,
	}
	if member.Team != nil {
		resp.TeamName = member.Team.Name
	}
	return resp
}

func domainMembersToHTTP(members []*domain.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, member := range members {
		out = append(out, domainMemberToHTTP(member))
	}
	return out
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	return TeamResponse{
		TeamName: team.Name,
		Members:  domainMembersToHTTP(team.Members),
	}
}

func domainDtosToHTTP(dtos []*domain.MemberDto) []MemberDtoResponse {
	out := make([]MemberDtoResponse, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, MemberDtoResponse{
			MemberID: dto.ID,
			Username: dto.Username,
			TeamName: dto.TeamName,
		})
	}
	return out
}

func httpTeamMembersToDomain(reqs []TeamMemberRequest) []*domain.Member {
	members := make([]*domain.Member, 0, len(reqs))
	for _, req := range reqs {
		members = append(members, domain.NewMemberWithAge(req.Username, req.Age))
	}
	return members
}
