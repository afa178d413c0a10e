package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bagdasarian/member-roster/internal/domain"
	"github.com/bagdasarian/member-roster/internal/repository"
)

type teamService struct {
	teamRepo repository.TeamRepository
	log      zerolog.Logger
}

func NewTeamService(teamRepo repository.TeamRepository, log zerolog.Logger) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		log:      log,
	}
}

func (s *teamService) Create(ctx context.Context, name string, members []*domain.Member) (*domain.Team, error) {
	team := domain.NewTeam(name)
	for _, member := range members {
		member.ChangeTeam(team)
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("team_id", team.ID).
		Str("name", team.Name).
		Int("members", len(team.Members)).
		Msg("team created")

	return team, nil
}

func (s *teamService) Get(ctx context.Context, name string) (*domain.Team, error) {
	return s.teamRepo.GetByName(ctx, name)
}
