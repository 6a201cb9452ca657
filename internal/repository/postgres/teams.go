package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	listTeamsQuery = `
SELECT id, name, description, department_id, status
FROM teams
ORDER BY created_at DESC`
	selectTeamQuery = `
SELECT id, name, description, department_id, status
FROM teams WHERE id = $1`
	insertTeamQuery = `
INSERT INTO teams(id, name, description, department_id, status)
VALUES ($1, $2, $3, $4, $5)`
	updateTeamQuery = `
UPDATE teams
SET name = COALESCE(NULLIF($2, ''), name),
    description = COALESCE(NULLIF($3, ''), description),
    department_id = COALESCE($4, department_id),
    status = COALESCE(NULLIF($5, ''), status)
WHERE id = $1
RETURNING id, name, description, department_id, status`
	deleteTeamQuery    = `DELETE FROM teams WHERE id = $1`
	insertTeamMember   = `INSERT INTO team_members(team_id, user_id, role) VALUES ($1, $2, $3)`
	selectTeamMembers  = `SELECT user_id, role FROM team_members WHERE team_id = $1 ORDER BY position`
	selectTeamsMembers = `SELECT team_id, user_id, role FROM team_members ORDER BY position`
)

func scanTeam(row pgx.Row) (*entities.Team, error) {
	var t entities.Team
	var status string
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.DepartmentID, &status); err != nil {
		return nil, err
	}
	t.Status = entities.TeamStatus(status)
	return &t, nil
}

// ListTeams returns every team with its ordered members, newest first.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, listTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	index := make(map[string]int)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		index[t.ID] = len(teams)
		teams = append(teams, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	memberRows, err := p.db.Query(ctx, selectTeamsMembers)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer memberRows.Close()
	for memberRows.Next() {
		var teamID, userID, role string
		if err := memberRows.Scan(&teamID, &userID, &role); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		if i, ok := index[teamID]; ok {
			teams[i].Members = append(teams[i].Members, entities.Member{UserID: userID, Role: entities.MemberRole(role)})
		}
	}
	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team members: %w", err)
	}
	return teams, nil
}

// CreateTeam inserts a team and its initial members in one transaction.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := uuid.NewString()
	status := team.Status
	if status == "" {
		status = entities.TeamActive
	}
	if _, err := tx.Exec(ctx, insertTeamQuery, id, team.Name, team.Description, team.DepartmentID, string(status)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}

	for _, m := range team.Members {
		if _, err := tx.Exec(ctx, insertTeamMember, id, m.UserID, string(m.Role)); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case "23505":
					return nil, entities.ErrMemberExists
				case "23503":
					return nil, entities.ErrUserNotFound
				}
			}
			return nil, fmt.Errorf("insert team member: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team created", "team_id", id, "name", team.Name, "members", len(team.Members))
	return p.getTeam(ctx, id)
}

// UpdateTeam overwrites editable fields; membership moves via member ops.
func (p *Postgres) UpdateTeam(ctx context.Context, id string, team entities.Team) (*entities.Team, error) {
	t, err := scanTeam(p.db.QueryRow(ctx, updateTeamQuery, id, team.Name, team.Description, team.DepartmentID, string(team.Status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("update team: %w", err)
	}

	members, err := p.teamMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Members = members
	return t, nil
}

// DeleteTeam removes the team; members go with it via FK cascade.
func (p *Postgres) DeleteTeam(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteTeamQuery, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTeamNotFound
	}
	p.log.Infow("team deleted", "team_id", id)
	return nil
}

func (p *Postgres) getTeam(ctx context.Context, id string) (*entities.Team, error) {
	t, err := scanTeam(p.db.QueryRow(ctx, selectTeamQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	members, err := p.teamMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Members = members
	return t, nil
}

func (p *Postgres) teamMembers(ctx context.Context, id string) ([]entities.Member, error) {
	rows, err := p.db.Query(ctx, selectTeamMembers, id)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.Member, 0)
	for rows.Next() {
		var userID, role string
		if err := rows.Scan(&userID, &role); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, entities.Member{UserID: userID, Role: entities.MemberRole(role)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team members: %w", err)
	}
	return members, nil
}
