package memory

import (
	"context"
	"strings"
	"time"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"

	"github.com/google/uuid"
)

// ListUsers returns every user, newest first.
func (m *Memory) ListUsers(_ context.Context) ([]entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entities.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

// CreateUser assigns the id server-side and stores the user as pending.
func (m *Memory) CreateUser(_ context.Context, user entities.User) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return nil, entities.ErrEmailExists
		}
	}

	user.ID = uuid.NewString()
	user.Status = entities.StatusPending
	user.VerifiedAt = nil
	user.JoinedAt = time.Now().UTC()
	if user.Role == "" {
		user.Role = entities.RoleMember
	}
	if user.Avatar == "" {
		user.Avatar = mapper.DefaultAvatar(user.ID)
	}

	m.users = append([]entities.User{user}, m.users...)
	m.log.Infow("user created", "user_id", user.ID, "email", user.Email)
	out := user
	return &out, nil
}

// UpdateUser overwrites editable fields; status only moves via VerifyUser.
func (m *Memory) UpdateUser(_ context.Context, id string, user entities.User) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, u := range m.users {
		if u.ID != id {
			continue
		}
		if user.Name != "" {
			u.Name = user.Name
		}
		if user.Email != "" {
			u.Email = user.Email
		}
		if user.Role != "" {
			u.Role = user.Role
		}
		if user.Avatar != "" {
			u.Avatar = user.Avatar
		}
		m.users[i] = u
		out := u
		return &out, nil
	}
	return nil, entities.ErrUserNotFound
}

// DeleteUser removes the user and drops their memberships.
func (m *Memory) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, u := range m.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.ErrUserNotFound
	}
	m.users = append(m.users[:idx], m.users[idx+1:]...)

	for i, t := range m.teams {
		m.teams[i].Members = dropMember(t.Members, id)
	}
	for i, d := range m.departments {
		m.departments[i].Members = dropMember(d.Members, id)
	}
	m.log.Infow("user deleted", "user_id", id)
	return nil
}

// VerifyUser moves a pending user to verified; the transition never
// reverses.
func (m *Memory) VerifyUser(_ context.Context, id string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, u := range m.users {
		if u.ID != id {
			continue
		}
		if u.Status == entities.StatusVerified {
			return nil, entities.ErrAlreadyVerified
		}
		now := time.Now().UTC()
		u.Status = entities.StatusVerified
		u.VerifiedAt = &now
		m.users[i] = u
		out := u
		return &out, nil
	}
	return nil, entities.ErrUserNotFound
}

func dropMember(members []entities.Member, userID string) []entities.Member {
	out := members[:0:0]
	for _, mem := range members {
		if mem.UserID != userID {
			out = append(out, mem)
		}
	}
	return out
}
