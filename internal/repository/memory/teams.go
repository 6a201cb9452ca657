package memory

import (
	"context"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"

	"github.com/google/uuid"
)

// ListTeams returns every team, newest first.
func (m *Memory) ListTeams(_ context.Context) ([]entities.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entities.Team, len(m.teams))
	for i, t := range m.teams {
		t.Members = cloneMembers(t.Members)
		out[i] = t
	}
	return out, nil
}

// CreateTeam assigns the id server-side and validates its department and
// member uniqueness.
func (m *Memory) CreateTeam(_ context.Context, team entities.Team) (*entities.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if team.DepartmentID != nil && !m.departmentExists(*team.DepartmentID) {
		return nil, entities.ErrDepartmentNotFound
	}
	if hasDuplicateMember(team.Members) {
		return nil, entities.ErrMemberExists
	}

	team.ID = uuid.NewString()
	if team.Status == "" {
		team.Status = entities.TeamActive
	}
	team.Members = cloneMembers(team.Members)

	m.teams = append([]entities.Team{team}, m.teams...)
	m.log.Infow("team created", "team_id", team.ID, "name", team.Name)
	out := team
	out.Members = cloneMembers(team.Members)
	return &out, nil
}

// UpdateTeam overwrites editable fields; membership moves via member ops.
func (m *Memory) UpdateTeam(_ context.Context, id string, team entities.Team) (*entities.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if team.DepartmentID != nil && !m.departmentExists(*team.DepartmentID) {
		return nil, entities.ErrDepartmentNotFound
	}

	for i, t := range m.teams {
		if t.ID != id {
			continue
		}
		if team.Name != "" {
			t.Name = team.Name
		}
		if team.Description != "" {
			t.Description = team.Description
		}
		if team.DepartmentID != nil {
			t.DepartmentID = team.DepartmentID
		}
		if team.Status != "" {
			t.Status = team.Status
		}
		m.teams[i] = t
		out := t
		out.Members = cloneMembers(t.Members)
		return &out, nil
	}
	return nil, entities.ErrTeamNotFound
}

// DeleteTeam removes the team.
func (m *Memory) DeleteTeam(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, t := range m.teams {
		if t.ID == id {
			m.teams = append(m.teams[:i], m.teams[i+1:]...)
			m.log.Infow("team deleted", "team_id", id)
			return nil
		}
	}
	return entities.ErrTeamNotFound
}

func (m *Memory) departmentExists(id string) bool {
	for _, d := range m.departments {
		if d.ID == id {
			return true
		}
	}
	return false
}

func hasDuplicateMember(members []entities.Member) bool {
	seen := make(map[string]struct{}, len(members))
	for _, mem := range members {
		if _, ok := seen[mem.UserID]; ok {
			return true
		}
		seen[mem.UserID] = struct{}{}
	}
	return false
}
