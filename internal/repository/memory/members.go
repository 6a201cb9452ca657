package memory

import (
	"context"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
)

// AddMember appends a user to the parent's member list. Duplicate members
// within one parent are rejected.
func (m *Memory) AddMember(_ context.Context, parent entities.MemberParent, parentID, userID string, role entities.MemberRole) (*entities.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.userExists(userID) {
		return nil, entities.ErrUserNotFound
	}

	members, err := m.memberList(parent, parentID)
	if err != nil {
		return nil, err
	}
	for _, mem := range *members {
		if mem.UserID == userID {
			return nil, entities.ErrMemberExists
		}
	}

	member := entities.Member{UserID: userID, Role: role}
	*members = append(*members, member)
	m.log.Infow("member added", "parent", parent, "parent_id", parentID, "user_id", userID, "role", role)
	return &member, nil
}

// RemoveMember drops a user from the parent's member list.
func (m *Memory) RemoveMember(_ context.Context, parent entities.MemberParent, parentID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	members, err := m.memberList(parent, parentID)
	if err != nil {
		return err
	}
	for i, mem := range *members {
		if mem.UserID == userID {
			*members = append((*members)[:i], (*members)[i+1:]...)
			m.log.Infow("member removed", "parent", parent, "parent_id", parentID, "user_id", userID)
			return nil
		}
	}
	return entities.ErrMemberNotFound
}

// UpdateMemberRole changes a member's role in place.
func (m *Memory) UpdateMemberRole(_ context.Context, parent entities.MemberParent, parentID, userID string, role entities.MemberRole) (*entities.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	members, err := m.memberList(parent, parentID)
	if err != nil {
		return nil, err
	}
	for i, mem := range *members {
		if mem.UserID == userID {
			(*members)[i].Role = role
			out := (*members)[i]
			return &out, nil
		}
	}
	return nil, entities.ErrMemberNotFound
}

// memberList resolves the parent's member slice; callers hold the lock.
func (m *Memory) memberList(parent entities.MemberParent, parentID string) (*[]entities.Member, error) {
	switch parent {
	case entities.ParentTeam:
		for i := range m.teams {
			if m.teams[i].ID == parentID {
				return &m.teams[i].Members, nil
			}
		}
		return nil, entities.ErrTeamNotFound
	case entities.ParentDepartment:
		for i := range m.departments {
			if m.departments[i].ID == parentID {
				return &m.departments[i].Members, nil
			}
		}
		return nil, entities.ErrDepartmentNotFound
	default:
		return nil, entities.ErrInvalidArgument
	}
}

func (m *Memory) userExists(id string) bool {
	for _, u := range m.users {
		if u.ID == id {
			return true
		}
	}
	return false
}
