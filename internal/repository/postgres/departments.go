package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	listDepartmentsQuery = `
SELECT id, name, description
FROM departments
ORDER BY created_at DESC`
	selectDepartmentQuery = `SELECT id, name, description FROM departments WHERE id = $1`
	insertDepartmentQuery = `INSERT INTO departments(id, name, description) VALUES ($1, $2, $3)`
	updateDepartmentQuery = `
UPDATE departments
SET name = COALESCE(NULLIF($2, ''), name),
    description = COALESCE(NULLIF($3, ''), description)
WHERE id = $1
RETURNING id, name, description`
	deleteDepartmentQuery = `DELETE FROM departments WHERE id = $1`
	insertDepMember       = `INSERT INTO department_members(department_id, user_id, role) VALUES ($1, $2, $3)`
	selectDepMembers      = `SELECT user_id, role FROM department_members WHERE department_id = $1 ORDER BY position`
	selectDepsMembers     = `SELECT department_id, user_id, role FROM department_members ORDER BY position`
)

// ListDepartments returns every department with its members, newest first.
func (p *Postgres) ListDepartments(ctx context.Context) ([]entities.Department, error) {
	rows, err := p.db.Query(ctx, listDepartmentsQuery)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	deps := make([]entities.Department, 0)
	index := make(map[string]int)
	for rows.Next() {
		var d entities.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Description); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		index[d.ID] = len(deps)
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate departments: %w", err)
	}

	memberRows, err := p.db.Query(ctx, selectDepsMembers)
	if err != nil {
		return nil, fmt.Errorf("list department members: %w", err)
	}
	defer memberRows.Close()
	for memberRows.Next() {
		var depID, userID, role string
		if err := memberRows.Scan(&depID, &userID, &role); err != nil {
			return nil, fmt.Errorf("scan department member: %w", err)
		}
		if i, ok := index[depID]; ok {
			deps[i].Members = append(deps[i].Members, entities.Member{UserID: userID, Role: entities.MemberRole(role)})
		}
	}
	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate department members: %w", err)
	}
	return deps, nil
}

// CreateDepartment inserts a department and its initial members in one
// transaction.
func (p *Postgres) CreateDepartment(ctx context.Context, dep entities.Department) (*entities.Department, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := uuid.NewString()
	if _, err := tx.Exec(ctx, insertDepartmentQuery, id, dep.Name, dep.Description); err != nil {
		return nil, fmt.Errorf("insert department: %w", err)
	}
	for _, m := range dep.Members {
		if _, err := tx.Exec(ctx, insertDepMember, id, m.UserID, string(m.Role)); err != nil {
			return nil, memberInsertError(err, "insert department member")
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("department created", "department_id", id, "name", dep.Name)
	return p.getDepartment(ctx, id)
}

// UpdateDepartment overwrites editable fields.
func (p *Postgres) UpdateDepartment(ctx context.Context, id string, dep entities.Department) (*entities.Department, error) {
	var d entities.Department
	err := p.db.QueryRow(ctx, updateDepartmentQuery, id, dep.Name, dep.Description).Scan(&d.ID, &d.Name, &d.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("update department: %w", err)
	}

	members, err := p.departmentMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Members = members
	return &d, nil
}

// DeleteDepartment removes the department; its teams and memberships go
// with it via FK cascade.
func (p *Postgres) DeleteDepartment(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteDepartmentQuery, id)
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrDepartmentNotFound
	}
	p.log.Infow("department deleted", "department_id", id)
	return nil
}

func (p *Postgres) getDepartment(ctx context.Context, id string) (*entities.Department, error) {
	var d entities.Department
	err := p.db.QueryRow(ctx, selectDepartmentQuery, id).Scan(&d.ID, &d.Name, &d.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	members, err := p.departmentMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Members = members
	return &d, nil
}

func (p *Postgres) departmentMembers(ctx context.Context, id string) ([]entities.Member, error) {
	rows, err := p.db.Query(ctx, selectDepMembers, id)
	if err != nil {
		return nil, fmt.Errorf("get department members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.Member, 0)
	for rows.Next() {
		var userID, role string
		if err := rows.Scan(&userID, &role); err != nil {
			return nil, fmt.Errorf("scan department member: %w", err)
		}
		members = append(members, entities.Member{UserID: userID, Role: entities.MemberRole(role)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate department members: %w", err)
	}
	return members, nil
}
