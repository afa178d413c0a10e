package domain

// Member is the owning side of the member-team association: it carries the
// foreign key. Team is populated only by the eager-loading queries, everything
// else leaves it nil.
type Member struct {
	ID       int64
	Username string
	Age      int
	TeamID   *int64
	Team     *Team
	AuditTimes
}

func NewMember(username string) *Member {
	return NewMemberWithAge(username, 0)
}

func NewMemberWithAge(username string, age int) *Member {
	return &Member{
		Username: username,
		Age:      age,
	}
}

func NewMemberInTeam(username string, age int, team *Team) *Member {
	m := NewMemberWithAge(username, age)
	if team != nil {
		m.ChangeTeam(team)
	}
	return m
}

// ChangeTeam keeps both sides of the association in sync: it points the member
// at the team and appends the member to the team's collection.
func (m *Member) ChangeTeam(team *Team) {
	m.Team = team
	if team.ID != 0 {
		id := team.ID
		m.TeamID = &id
	}
	team.Members = append(team.Members, m)
}
