package repository

import (
	"context"

	"github.com/bagdasarian/member-roster/internal/domain"
)

// MemberRepository is the catalog of member queries. Multi-row methods return
// an empty slice when nothing matches. Single-row methods return (nil, nil)
// when nothing matches and domain.ErrNonUniqueResult when more than one row
// does, except GetByID which reports a missing key as an error.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id int64) (*domain.Member, error)

	FindByUsernameAndAgeGreaterThan(ctx context.Context, username string, age int) ([]*domain.Member, error)
	FindByUsername(ctx context.Context, username string) ([]*domain.Member, error)
	FindByUsernameAndAge(ctx context.Context, username string, age int) ([]*domain.Member, error)
	FindByNames(ctx context.Context, names []string) ([]*domain.Member, error)
	FindOneByUsername(ctx context.Context, username string) (*domain.Member, error)

	ListUsernames(ctx context.Context) ([]string, error)
	ListMemberDtos(ctx context.Context) ([]*domain.MemberDto, error)

	FindByAgePaged(ctx context.Context, age int, page PageRequest) (*MemberPage, error)
	FindByAgeSlice(ctx context.Context, age int, page PageRequest) (*MemberSlice, error)
	ListAllPaged(ctx context.Context, page PageRequest) (*MemberPage, error)

	// BulkAgePlus increments the age of every member at or above the threshold
	// in a single statement and returns the affected row count. Members loaded
	// before the call are stale afterwards; callers must reload anything they
	// still need.
	BulkAgePlus(ctx context.Context, age int) (int64, error)

	ListWithTeam(ctx context.Context) ([]*domain.Member, error)
	FindWithTeamByUsername(ctx context.Context, username string) ([]*domain.Member, error)

	FindReadOnlyByUsername(ctx context.Context, username string) (*domain.Member, error)
	FindByUsernameNative(ctx context.Context, username string) (*domain.Member, error)
}
