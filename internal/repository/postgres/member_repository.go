package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/member-roster/internal/domain"
	"github.com/bagdasarian/member-roster/internal/repository"
)

const memberColumns = "member_id, username, age, team_id, created_at, updated_at"

// Kept byte-for-byte for compatibility with existing deployments; the
// placeholder is rewritten to $1 only at bind time.
const nativeMemberByUsername = `select * from member where username = ?`

type memberRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewMemberRepository(db *sql.DB) *memberRepository {
	return &memberRepository{db: db, executor: db}
}

func NewMemberRepositoryWithTx(tx *sql.Tx) *memberRepository {
	return &memberRepository{executor: tx}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(s rowScanner) (*domain.Member, error) {
	m := &domain.Member{}
	var teamID sql.NullInt64
	var updatedAt sql.NullTime
	err := s.Scan(&m.ID, &m.Username, &m.Age, &teamID, &m.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if teamID.Valid {
		id := teamID.Int64
		m.TeamID = &id
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		m.UpdatedAt = &t
	}
	return m, nil
}

func (r *memberRepository) findMany(ctx context.Context, query string, args ...any) ([]*domain.Member, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// one applies the single-result contract to a multi-row query: absent rows are
// not an error, more than one row is.
func one(members []*domain.Member, err error) (*domain.Member, error) {
	if err != nil {
		return nil, err
	}
	switch len(members) {
	case 0:
		return nil, nil
	case 1:
		return members[0], nil
	default:
		return nil, domain.ErrNonUniqueResult
	}
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO member (username, age, team_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING member_id, created_at, updated_at
	`

	var teamID sql.NullInt64
	if member.TeamID != nil {
		teamID = sql.NullInt64{Int64: *member.TeamID, Valid: true}
	}

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		member.Username,
		member.Age,
		teamID,
		time.Now(),
	).Scan(&member.ID, &member.CreatedAt, &updatedAt)
	if err != nil {
		return err
	}

	if updatedAt.Valid {
		t := updatedAt.Time
		member.UpdatedAt = &t
	} else {
		member.UpdatedAt = nil
	}

	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM member
		WHERE member_id = $1
	`

	m, err := scanMember(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("member with id %d", id))
		}
		return nil, err
	}

	return m, nil
}

func (r *memberRepository) FindByUsernameAndAgeGreaterThan(ctx context.Context, username string, age int) ([]*domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM member
		WHERE username = $1 AND age > $2
		ORDER BY member_id
	`
	return r.findMany(ctx, query, username, age)
}

func (r *memberRepository) FindByUsername(ctx context.Context, username string) ([]*domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM member
		WHERE username = $1
		ORDER BY member_id
	`
	return r.findMany(ctx, query, username)
}

func (r *memberRepository) FindByUsernameAndAge(ctx context.Context, username string, age int) ([]*domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM member
		WHERE username = $1 AND age = $2
		ORDER BY member_id
	`
	return r.findMany(ctx, query, username, age)
}

func (r *memberRepository) FindByNames(ctx context.Context, names []string) ([]*domain.Member, error) {
	if len(names) == 0 {
		return []*domain.Member{}, nil
	}

	// pgx binds a string slice directly into ANY, the IN-list analog.
	query := `
		SELECT ` + memberColumns + `
		FROM member
		WHERE username = ANY($1)
		ORDER BY member_id
	`
	return r.findMany(ctx, query, names)
}

func (r *memberRepository) FindOneByUsername(ctx context.Context, username string) (*domain.Member, error) {
	return one(r.FindByUsername(ctx, username))
}

func (r *memberRepository) ListUsernames(ctx context.Context) ([]string, error) {
	query := `
		SELECT username
		FROM member
		ORDER BY member_id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usernames := make([]string, 0)
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, err
		}
		usernames = append(usernames, username)
	}

	return usernames, rows.Err()
}

func (r *memberRepository) ListMemberDtos(ctx context.Context) ([]*domain.MemberDto, error) {
	query := `
		SELECT m.member_id, m.username, t.name
		FROM member m
		JOIN team t ON m.team_id = t.team_id
		ORDER BY m.member_id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dtos := make([]*domain.MemberDto, 0)
	for rows.Next() {
		var id int64
		var username, teamName string
		if err := rows.Scan(&id, &username, &teamName); err != nil {
			return nil, err
		}
		dtos = append(dtos, domain.NewMemberDto(id, username, teamName))
	}

	return dtos, rows.Err()
}

// sortColumn maps a requested sort to a real column; anything outside the
// whitelist sorts by the primary key.
func sortColumn(sort string) string {
	switch sort {
	case "username", "age":
		return sort
	default:
		return "member_id"
	}
}

func (r *memberRepository) FindByAgePaged(ctx context.Context, age int, page repository.PageRequest) (*repository.MemberPage, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM member
		WHERE age = $1
		ORDER BY ` + sortColumn(page.Sort) + `
		LIMIT $2 OFFSET $3
	`

	members, err := r.findMany(ctx, query, age, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}

	countQuery := `
		SELECT count(*)
		FROM member
		WHERE age = $1
	`

	var total int64
	if err := r.executor.QueryRowContext(ctx, countQuery, age).Scan(&total); err != nil {
		return nil, err
	}

	return &repository.MemberPage{
		Content:    members,
		TotalCount: total,
		Page:       page.Page,
		Size:       page.Size,
	}, nil
}

func (r *memberRepository) FindByAgeSlice(ctx context.Context, age int, page repository.PageRequest) (*repository.MemberSlice, error) {
	// One row beyond the page size tells us whether a next page exists
	// without a count query.
	query := `
		SELECT ` + memberColumns + `
		FROM member
		WHERE age = $1
		ORDER BY ` + sortColumn(page.Sort) + `
		LIMIT $2 OFFSET $3
	`

	members, err := r.findMany(ctx, query, age, page.Size+1, page.Offset())
	if err != nil {
		return nil, err
	}

	hasNext := len(members) > page.Size
	if hasNext {
		members = members[:page.Size]
	}

	return &repository.MemberSlice{
		Content: members,
		Page:    page.Page,
		Size:    page.Size,
		HasNext: hasNext,
	}, nil
}

func (r *memberRepository) ListAllPaged(ctx context.Context, page repository.PageRequest) (*repository.MemberPage, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM member
		ORDER BY ` + sortColumn(page.Sort) + `
		LIMIT $1 OFFSET $2
	`

	members, err := r.findMany(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}

	// The count is decoupled from the content query on purpose: no join, no
	// order, just the cheapest statement that yields the total.
	countQuery := `
		SELECT count(username)
		FROM member
	`

	var total int64
	if err := r.executor.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, err
	}

	return &repository.MemberPage{
		Content:    members,
		TotalCount: total,
		Page:       page.Page,
		Size:       page.Size,
	}, nil
}

func (r *memberRepository) BulkAgePlus(ctx context.Context, age int) (int64, error) {
	query := `
		UPDATE member
		SET age = age + 1
		WHERE age >= $1
	`

	result, err := r.executor.ExecContext(ctx, query, age)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *memberRepository) findManyWithTeam(ctx context.Context, query string, args ...any) ([]*domain.Member, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.Member, 0)
	for rows.Next() {
		m := &domain.Member{}
		var teamID, joinedTeamID sql.NullInt64
		var updatedAt, teamCreatedAt, teamUpdatedAt sql.NullTime
		var teamName sql.NullString
		err := rows.Scan(
			&m.ID,
			&m.Username,
			&m.Age,
			&teamID,
			&m.CreatedAt,
			&updatedAt,
			&joinedTeamID,
			&teamName,
			&teamCreatedAt,
			&teamUpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if teamID.Valid {
			id := teamID.Int64
			m.TeamID = &id
		}
		if updatedAt.Valid {
			t := updatedAt.Time
			m.UpdatedAt = &t
		}
		if joinedTeamID.Valid {
			team := &domain.Team{
				ID:   joinedTeamID.Int64,
				Name: teamName.String,
			}
			team.CreatedAt = teamCreatedAt.Time
			if teamUpdatedAt.Valid {
				t := teamUpdatedAt.Time
				team.UpdatedAt = &t
			}
			m.Team = team
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

func (r *memberRepository) ListWithTeam(ctx context.Context) ([]*domain.Member, error) {
	query := `
		SELECT m.member_id, m.username, m.age, m.team_id, m.created_at, m.updated_at,
		       t.team_id, t.name, t.created_at, t.updated_at
		FROM member m
		LEFT JOIN team t ON m.team_id = t.team_id
		ORDER BY m.member_id
	`
	return r.findManyWithTeam(ctx, query)
}

func (r *memberRepository) FindWithTeamByUsername(ctx context.Context, username string) ([]*domain.Member, error) {
	query := `
		SELECT m.member_id, m.username, m.age, m.team_id, m.created_at, m.updated_at,
		       t.team_id, t.name, t.created_at, t.updated_at
		FROM member m
		LEFT JOIN team t ON m.team_id = t.team_id
		WHERE m.username = $1
		ORDER BY m.member_id
	`
	return r.findManyWithTeam(ctx, query, username)
}

// FindReadOnlyByUsername runs the lookup on a read-only transaction. There is
// no change tracking to opt out of here; the read-only contract is enforced by
// the database instead.
func (r *memberRepository) FindReadOnlyByUsername(ctx context.Context, username string) (*domain.Member, error) {
	if r.db == nil {
		// Already inside a caller-managed transaction.
		return r.FindOneByUsername(ctx, username)
	}

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	txRepo := NewMemberRepositoryWithTx(tx)
	m, err := txRepo.FindOneByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return m, nil
}

func (r *memberRepository) FindByUsernameNative(ctx context.Context, username string) (*domain.Member, error) {
	query := strings.Replace(nativeMemberByUsername, "?", "$1", 1)
	return one(r.findMany(ctx, query, username))
}
