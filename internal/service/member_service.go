package service

import (
	"context"

	"github.com/bagdasarian/member-roster/internal/domain"
	"github.com/bagdasarian/member-roster/internal/repository"
)

type MemberService interface {
	// Register creates a member, attaching it to the named team when teamName
	// is non-empty.
	Register(ctx context.Context, username string, age int, teamName string) (*domain.Member, error)

	// Get returns the member by id.
	Get(ctx context.Context, id int64) (*domain.Member, error)

	// Search returns the members whose username is in names.
	Search(ctx context.Context, names []string) ([]*domain.Member, error)

	// ListByAge returns one page of members of the given age plus the total count.
	ListByAge(ctx context.Context, age int, page repository.PageRequest) (*repository.MemberPage, error)

	// ListDtos returns the flat member projection joined with team names.
	ListDtos(ctx context.Context) ([]*domain.MemberDto, error)

	// BulkAgePlus increments the age of every member at or above the threshold
	// and returns the affected row count. Any member loaded before this call
	// is stale afterwards.
	BulkAgePlus(ctx context.Context, age int) (int64, error)
}
