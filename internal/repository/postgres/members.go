package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	addTeamMemberQuery       = `INSERT INTO team_members(team_id, user_id, role) VALUES ($1, $2, $3)`
	removeTeamMemberQuery    = `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`
	updateTeamMemberQuery    = `UPDATE team_members SET role = $3 WHERE team_id = $1 AND user_id = $2`
	addDepMemberQuery        = `INSERT INTO department_members(department_id, user_id, role) VALUES ($1, $2, $3)`
	removeDepMemberQuery     = `DELETE FROM department_members WHERE department_id = $1 AND user_id = $2`
	updateDepMemberQuery     = `UPDATE department_members SET role = $3 WHERE department_id = $1 AND user_id = $2`
	selectTeamExistsQuery    = `SELECT 1 FROM teams WHERE id = $1`
	selectDepExistsQuery     = `SELECT 1 FROM departments WHERE id = $1`
)

// AddMember inserts a membership row for the parent collection.
func (p *Postgres) AddMember(ctx context.Context, parent entities.MemberParent, parentID, userID string, role entities.MemberRole) (*entities.Member, error) {
	query := addTeamMemberQuery
	if parent == entities.ParentDepartment {
		query = addDepMemberQuery
	}

	if _, err := p.db.Exec(ctx, query, parentID, userID, string(role)); err != nil {
		return nil, memberInsertError(err, "add member")
	}
	p.log.Infow("member added", "parent", parent, "parent_id", parentID, "user_id", userID, "role", role)
	return &entities.Member{UserID: userID, Role: role}, nil
}

// RemoveMember deletes a membership row.
func (p *Postgres) RemoveMember(ctx context.Context, parent entities.MemberParent, parentID, userID string) error {
	query := removeTeamMemberQuery
	if parent == entities.ParentDepartment {
		query = removeDepMemberQuery
	}

	tag, err := p.db.Exec(ctx, query, parentID, userID)
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if err := p.parentExists(ctx, parent, parentID); err != nil {
			return err
		}
		return entities.ErrMemberNotFound
	}
	p.log.Infow("member removed", "parent", parent, "parent_id", parentID, "user_id", userID)
	return nil
}

// UpdateMemberRole changes a membership's role in place.
func (p *Postgres) UpdateMemberRole(ctx context.Context, parent entities.MemberParent, parentID, userID string, role entities.MemberRole) (*entities.Member, error) {
	query := updateTeamMemberQuery
	if parent == entities.ParentDepartment {
		query = updateDepMemberQuery
	}

	tag, err := p.db.Exec(ctx, query, parentID, userID, string(role))
	if err != nil {
		return nil, fmt.Errorf("update member role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if err := p.parentExists(ctx, parent, parentID); err != nil {
			return nil, err
		}
		return nil, entities.ErrMemberNotFound
	}
	return &entities.Member{UserID: userID, Role: role}, nil
}

func (p *Postgres) parentExists(ctx context.Context, parent entities.MemberParent, parentID string) error {
	query := selectTeamExistsQuery
	notFound := entities.ErrTeamNotFound
	if parent == entities.ParentDepartment {
		query = selectDepExistsQuery
		notFound = entities.ErrDepartmentNotFound
	}

	var one int
	if err := p.db.QueryRow(ctx, query, parentID).Scan(&one); err != nil {
		return notFound
	}
	return nil
}

// memberInsertError maps membership constraint violations to sentinels.
func memberInsertError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return entities.ErrMemberExists
		case "23503":
			if strings.Contains(pgErr.ConstraintName, "user_id") {
				return entities.ErrUserNotFound
			}
			if pgErr.TableName == "department_members" {
				return entities.ErrDepartmentNotFound
			}
			return entities.ErrTeamNotFound
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
