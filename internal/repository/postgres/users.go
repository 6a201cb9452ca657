package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	listUsersQuery = `
SELECT id, name, email, role, status, joined_at, verified_at, avatar
FROM users
ORDER BY created_at DESC`
	insertUserQuery = `
INSERT INTO users(id, name, email, role, status, joined_at, avatar)
VALUES ($1, $2, $3, $4, 'pending', $5, $6)
RETURNING id, name, email, role, status, joined_at, verified_at, avatar`
	updateUserQuery = `
UPDATE users
SET name = COALESCE(NULLIF($2, ''), name),
    email = COALESCE(NULLIF($3, ''), email),
    role = COALESCE(NULLIF($4, ''), role),
    avatar = COALESCE(NULLIF($5, ''), avatar)
WHERE id = $1
RETURNING id, name, email, role, status, joined_at, verified_at, avatar`
	deleteUserQuery = `DELETE FROM users WHERE id = $1`
	verifyUserQuery = `
UPDATE users
SET status = 'verified', verified_at = $2
WHERE id = $1 AND status = 'pending'
RETURNING id, name, email, role, status, joined_at, verified_at, avatar`
	selectUserStatusQuery = `SELECT status FROM users WHERE id = $1`
)

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	var role, status string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &status, &u.JoinedAt, &u.VerifiedAt, &u.Avatar); err != nil {
		return nil, err
	}
	u.Role = entities.UserRole(role)
	u.Status = entities.UserStatus(status)
	return &u, nil
}

// ListUsers returns every user, newest first.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// CreateUser inserts a pending user with a server-assigned id.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	id := uuid.NewString()
	avatar := user.Avatar
	if avatar == "" {
		avatar = mapper.DefaultAvatar(id)
	}
	role := user.Role
	if role == "" {
		role = entities.RoleMember
	}

	u, err := scanUser(p.db.QueryRow(ctx, insertUserQuery, id, user.Name, user.Email, string(role), time.Now().UTC(), avatar))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrEmailExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", u.ID, "email", u.Email)
	return u, nil
}

// UpdateUser overwrites editable fields; empty fields keep prior values.
func (p *Postgres) UpdateUser(ctx context.Context, id string, user entities.User) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, updateUserQuery, id, user.Name, user.Email, string(user.Role), user.Avatar))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrEmailExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// DeleteUser removes the user; memberships go with it via FK cascade.
func (p *Postgres) DeleteUser(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteUserQuery, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}
	p.log.Infow("user deleted", "user_id", id)
	return nil
}

// VerifyUser moves a pending user to verified; the transition never
// reverses.
func (p *Postgres) VerifyUser(ctx context.Context, id string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, verifyUserQuery, id, time.Now().UTC()))
	if err == nil {
		p.log.Infow("user verified", "user_id", id)
		return u, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("verify user: %w", err)
	}

	// Distinguish a missing user from one already verified.
	var status string
	if serr := p.db.QueryRow(ctx, selectUserStatusQuery, id).Scan(&status); serr != nil {
		if errors.Is(serr, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("verify user status: %w", serr)
	}
	return nil, entities.ErrAlreadyVerified
}
