package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bagdasarian/member-roster/internal/domain"
)

const uniqueViolation = "23505"

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{db: db}
}

// Create inserts the team and every member attached to it in one transaction,
// so a half-created team is never visible.
func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO team (name, created_at)
		VALUES ($1, $2)
		RETURNING team_id, created_at, updated_at
	`

	now := time.Now()
	var updatedAt sql.NullTime
	err = tx.QueryRowContext(ctx, query, team.Name, now).Scan(&team.ID, &team.CreatedAt, &updatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrTeamExists
		}
		return err
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		team.UpdatedAt = &t
	}

	memberQuery := `
		INSERT INTO member (username, age, team_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING member_id, created_at, updated_at
	`

	for _, member := range team.Members {
		var memberUpdatedAt sql.NullTime
		err := tx.QueryRowContext(ctx, memberQuery, member.Username, member.Age, team.ID, now).
			Scan(&member.ID, &member.CreatedAt, &memberUpdatedAt)
		if err != nil {
			return err
		}
		id := team.ID
		member.TeamID = &id
		if memberUpdatedAt.Valid {
			t := memberUpdatedAt.Time
			member.UpdatedAt = &t
		}
	}

	return tx.Commit()
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	query := `
		SELECT team_id, name, created_at, updated_at
		FROM team
		WHERE team_id = $1
	`
	return r.getOne(ctx, query, id, fmt.Sprintf("team with id %d", id))
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	query := `
		SELECT team_id, name, created_at, updated_at
		FROM team
		WHERE name = $1
	`
	return r.getOne(ctx, query, name, fmt.Sprintf("team %q", name))
}

func (r *teamRepository) getOne(ctx context.Context, query string, arg any, resource string) (*domain.Team, error) {
	team := &domain.Team{}
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&team.ID,
		&team.Name,
		&team.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(resource)
		}
		return nil, err
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		team.UpdatedAt = &t
	}

	if err := r.loadMembers(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

// loadMembers fills the inverse side of the association.
func (r *teamRepository) loadMembers(ctx context.Context, team *domain.Team) error {
	query := `
		SELECT ` + memberColumns + `
		FROM member
		WHERE team_id = $1
		ORDER BY member_id
	`

	rows, err := r.db.QueryContext(ctx, query, team.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	team.Members = make([]*domain.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return err
		}
		team.Members = append(team.Members, m)
	}

	return rows.Err()
}
