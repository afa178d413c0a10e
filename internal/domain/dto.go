package domain

// MemberDto is the flat transfer shape for a member: no association graph,
// just the team name copied next to the member fields.
type MemberDto struct {
	ID       int64
	Username string
	TeamName string
}

// NewMemberDto builds the DTO straight from query-projected columns.
func NewMemberDto(id int64, username, teamName string) *MemberDto {
	return &MemberDto{
		ID:       id,
		Username: username,
		TeamName: teamName,
	}
}

// NewMemberDtoFromMember builds the DTO from a loaded member. The team name is
// left empty on purpose: the member may have been loaded without its team.
func NewMemberDtoFromMember(m *Member) *MemberDto {
	return &MemberDto{
		ID:       m.ID,
		Username: m.Username,
	}
}
