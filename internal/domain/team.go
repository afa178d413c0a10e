package domain

// Team is the inverse side of the association; Members is filled by the team
// repository when a team is loaded by name or id.
type Team struct {
	ID      int64
	Name    string
	Members []*Member
	AuditTimes
}

func NewTeam(name string) *Team {
	return &Team{Name: name}
}
