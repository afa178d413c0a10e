package postgres

import (
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// passthroughConverter lets slice binds (the ANY($1) IN-list arguments) reach
// the mock unchanged; everything else goes through the default converter.
type passthroughConverter struct{}

func (passthroughConverter) ConvertValue(v any) (driver.Value, error) {
	if _, ok := v.([]string); ok {
		return v, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(passthroughConverter{}))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func setupMemberRepo(t *testing.T) (*memberRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewMemberRepository(db), mock
}

func setupTeamRepo(t *testing.T) (*teamRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewTeamRepository(db), mock
}

func memberRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"member_id", "username", "age", "team_id", "created_at", "updated_at"})
}
