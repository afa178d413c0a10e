package service

import (
	"context"

	"github.com/bagdasarian/member-roster/internal/domain"
)

type TeamService interface {
	// Create creates the team together with the given members.
	Create(ctx context.Context, name string, members []*domain.Member) (*domain.Team, error)

	// Get returns the team with its members loaded.
	Get(ctx context.Context, name string) (*domain.Team, error)
}
