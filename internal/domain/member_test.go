package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeTeam(t *testing.T) {
	t.Run("keeps both sides of the association in sync", func(t *testing.T) {
		team := NewTeam("t1")
		team.ID = 7

		member := NewMemberWithAge("m1", 10)
		member.ChangeTeam(team)

		assert.Same(t, team, member.Team)
		require.NotNil(t, member.TeamID)
		assert.Equal(t, int64(7), *member.TeamID)
		require.Len(t, team.Members, 1)
		assert.Same(t, member, team.Members[0])
	})

	t.Run("unsaved team leaves the foreign key unset", func(t *testing.T) {
		team := NewTeam("t1")

		member := NewMemberWithAge("m1", 10)
		member.ChangeTeam(team)

		assert.Nil(t, member.TeamID)
		assert.Same(t, team, member.Team)
		require.Len(t, team.Members, 1)
	})
}

func TestNewMemberInTeam(t *testing.T) {
	t.Run("with team", func(t *testing.T) {
		team := NewTeam("t1")
		team.ID = 1

		member := NewMemberInTeam("m1", 25, team)

		assert.Equal(t, "m1", member.Username)
		assert.Equal(t, 25, member.Age)
		assert.Same(t, team, member.Team)
		assert.Len(t, team.Members, 1)
	})

	t.Run("nil team", func(t *testing.T) {
		member := NewMemberInTeam("m1", 25, nil)

		assert.Nil(t, member.Team)
		assert.Nil(t, member.TeamID)
	})
}

func TestNewMember(t *testing.T) {
	member := NewMember("m1")

	assert.Equal(t, "m1", member.Username)
	assert.Equal(t, 0, member.Age)
}

func TestMemberDto(t *testing.T) {
	t.Run("from projected columns", func(t *testing.T) {
		dto := NewMemberDto(1, "m1", "t1")

		assert.Equal(t, int64(1), dto.ID)
		assert.Equal(t, "m1", dto.Username)
		assert.Equal(t, "t1", dto.TeamName)
	})

	t.Run("from a loaded member the team name stays empty", func(t *testing.T) {
		team := NewTeam("t1")
		team.ID = 7
		member := NewMemberInTeam("m1", 10, team)
		member.ID = 1

		dto := NewMemberDtoFromMember(member)

		assert.Equal(t, int64(1), dto.ID)
		assert.Equal(t, "m1", dto.Username)
		assert.Empty(t, dto.TeamName)
	})
}
