//go:build integration
// +build integration

package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/member-roster/internal/domain"
	"github.com/bagdasarian/member-roster/internal/repository"
	"github.com/bagdasarian/member-roster/internal/repository/postgres"
)

func TestMemberQueries(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	memberRepo := postgres.NewMemberRepository(db)
	teamRepo := postgres.NewTeamRepository(db)

	team := domain.NewTeam("t1")
	domain.NewMemberInTeam("m1", 10, team)
	require.NoError(t, teamRepo.Create(ctx, team))

	seed := func(username string, age int) *domain.Member {
		m := domain.NewMemberWithAge(username, age)
		require.NoError(t, memberRepo.Create(ctx, m))
		return m
	}

	t.Run("age threshold boundaries", func(t *testing.T) {
		m := seed("boundary", 30)

		above, err := memberRepo.FindByUsernameAndAgeGreaterThan(ctx, "boundary", 29)
		require.NoError(t, err)
		require.Len(t, above, 1)
		assert.Equal(t, m.ID, above[0].ID)

		none, err := memberRepo.FindByUsernameAndAgeGreaterThan(ctx, "boundary", 31)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("non-unique single result", func(t *testing.T) {
		seed("AAA", 10)
		seed("AAA", 20)

		member, err := memberRepo.FindOneByUsername(ctx, "AAA")
		require.Error(t, err)
		assert.Nil(t, member)
		assert.True(t, errors.Is(err, domain.ErrNonUniqueResult))
	})

	t.Run("absent single result is not an error", func(t *testing.T) {
		member, err := memberRepo.FindOneByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, member)
	})

	t.Run("IN-list returns exactly the named members", func(t *testing.T) {
		seed("a", 1)
		seed("b", 2)
		seed("c", 3)

		members, err := memberRepo.FindByNames(ctx, []string{"a", "b"})
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "a", members[0].Username)
		assert.Equal(t, "b", members[1].Username)
	})

	t.Run("DTO projection carries the team name", func(t *testing.T) {
		dtos, err := memberRepo.ListMemberDtos(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, dtos)
		assert.Equal(t, "m1", dtos[0].Username)
		assert.Equal(t, "t1", dtos[0].TeamName)
	})

	t.Run("page of 3 over 5 matching rows", func(t *testing.T) {
		for _, name := range []string{"p1", "p2", "p3", "p4", "p5"} {
			seed(name, 77)
		}

		page, err := memberRepo.FindByAgePaged(ctx, 77, repository.PageRequest{Page: 0, Size: 3})
		require.NoError(t, err)
		assert.Len(t, page.Content, 3)
		assert.Equal(t, int64(5), page.TotalCount)
		assert.Equal(t, 2, page.TotalPages())
		assert.True(t, page.HasNext())

		slice, err := memberRepo.FindByAgeSlice(ctx, 77, repository.PageRequest{Page: 1, Size: 3})
		require.NoError(t, err)
		assert.Len(t, slice.Content, 2)
		assert.False(t, slice.HasNext)
	})

	t.Run("bulk age increment", func(t *testing.T) {
		ids := make(map[string]*domain.Member)
		for _, tc := range []struct {
			name string
			age  int
		}{
			{"bulk10", 110}, {"bulk19", 119}, {"bulk20", 120}, {"bulk21", 121}, {"bulk40", 140},
		} {
			ids[tc.name] = seed(tc.name, tc.age)
		}

		updated, err := memberRepo.BulkAgePlus(ctx, 120)
		require.NoError(t, err)
		assert.Equal(t, int64(3), updated)

		// rows at or above the threshold gained exactly one year
		reloaded, err := memberRepo.GetByID(ctx, ids["bulk20"].ID)
		require.NoError(t, err)
		assert.Equal(t, 121, reloaded.Age)

		// rows below are untouched
		reloaded, err = memberRepo.GetByID(ctx, ids["bulk19"].ID)
		require.NoError(t, err)
		assert.Equal(t, 119, reloaded.Age)

		// the in-memory copy is stale on purpose
		assert.Equal(t, 120, ids["bulk20"].Age)
	})

	t.Run("eager team loading", func(t *testing.T) {
		members, err := memberRepo.FindWithTeamByUsername(ctx, "m1")
		require.NoError(t, err)
		require.Len(t, members, 1)
		require.NotNil(t, members[0].Team)
		assert.Equal(t, "t1", members[0].Team.Name)

		all, err := memberRepo.ListWithTeam(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, all)
	})

	t.Run("read-only lookup", func(t *testing.T) {
		seed("readonly", 5)

		member, err := memberRepo.FindReadOnlyByUsername(ctx, "readonly")
		require.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, "readonly", member.Username)
	})

	t.Run("native query", func(t *testing.T) {
		seed("native", 5)

		member, err := memberRepo.FindByUsernameNative(ctx, "native")
		require.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, 5, member.Age)
	})

	t.Run("scalar username projection", func(t *testing.T) {
		usernames, err := memberRepo.ListUsernames(ctx)
		require.NoError(t, err)
		assert.Contains(t, usernames, "m1")
	})

	t.Run("decoupled count query", func(t *testing.T) {
		page, err := memberRepo.ListAllPaged(ctx, repository.PageRequest{Page: 0, Size: 2})
		require.NoError(t, err)
		assert.Len(t, page.Content, 2)
		assert.Greater(t, page.TotalCount, int64(2))
	})
}

func TestTeamLifecycle(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	teamRepo := postgres.NewTeamRepository(db)

	team := domain.NewTeam("backend")
	domain.NewMemberInTeam("alice", 30, team)
	domain.NewMemberInTeam("bob", 25, team)
	require.NoError(t, teamRepo.Create(ctx, team))
	assert.NotZero(t, team.ID)

	loaded, err := teamRepo.GetByName(ctx, "backend")
	require.NoError(t, err)
	require.Len(t, loaded.Members, 2)
	assert.Equal(t, "alice", loaded.Members[0].Username)
	require.NotNil(t, loaded.Members[0].TeamID)
	assert.Equal(t, team.ID, *loaded.Members[0].TeamID)

	dup := domain.NewTeam("backend")
	err = teamRepo.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTeamExists))

	_, err = teamRepo.GetByName(ctx, "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
