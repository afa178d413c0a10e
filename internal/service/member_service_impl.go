package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bagdasarian/member-roster/internal/domain"
	"github.com/bagdasarian/member-roster/internal/repository"
)

const defaultPageSize = 10

type memberService struct {
	memberRepo repository.MemberRepository
	teamRepo   repository.TeamRepository
	log        zerolog.Logger
}

func NewMemberService(memberRepo repository.MemberRepository, teamRepo repository.TeamRepository, log zerolog.Logger) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		log:        log,
	}
}

func (s *memberService) Register(ctx context.Context, username string, age int, teamName string) (*domain.Member, error) {
	var member *domain.Member
	if teamName != "" {
		team, err := s.teamRepo.GetByName(ctx, teamName)
		if err != nil {
			return nil, err
		}
		member = domain.NewMemberInTeam(username, age, team)
	} else {
		member = domain.NewMemberWithAge(username, age)
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("member_id", member.ID).
		Str("username", member.Username).
		Msg("member registered")

	return member, nil
}

func (s *memberService) Get(ctx context.Context, id int64) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *memberService) Search(ctx context.Context, names []string) ([]*domain.Member, error) {
	return s.memberRepo.FindByNames(ctx, names)
}

func (s *memberService) ListByAge(ctx context.Context, age int, page repository.PageRequest) (*repository.MemberPage, error) {
	if page.Size <= 0 {
		page.Size = defaultPageSize
	}
	if page.Page < 0 {
		page.Page = 0
	}
	return s.memberRepo.FindByAgePaged(ctx, age, page)
}

func (s *memberService) ListDtos(ctx context.Context) ([]*domain.MemberDto, error) {
	return s.memberRepo.ListMemberDtos(ctx)
}

func (s *memberService) BulkAgePlus(ctx context.Context, age int) (int64, error) {
	updated, err := s.memberRepo.BulkAgePlus(ctx, age)
	if err != nil {
		return 0, err
	}

	s.log.Info().
		Int("age_threshold", age).
		Int64("updated", updated).
		Msg("bulk age increment applied")

	return updated, nil
}
