package memory

import (
	"context"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"

	"github.com/google/uuid"
)

// ListDepartments returns every department, newest first.
func (m *Memory) ListDepartments(_ context.Context) ([]entities.Department, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entities.Department, len(m.departments))
	for i, d := range m.departments {
		d.Members = cloneMembers(d.Members)
		out[i] = d
	}
	return out, nil
}

// CreateDepartment assigns the id server-side.
func (m *Memory) CreateDepartment(_ context.Context, dep entities.Department) (*entities.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hasDuplicateMember(dep.Members) {
		return nil, entities.ErrMemberExists
	}

	dep.ID = uuid.NewString()
	dep.Members = cloneMembers(dep.Members)

	m.departments = append([]entities.Department{dep}, m.departments...)
	m.log.Infow("department created", "department_id", dep.ID, "name", dep.Name)
	out := dep
	out.Members = cloneMembers(dep.Members)
	return &out, nil
}

// UpdateDepartment overwrites editable fields.
func (m *Memory) UpdateDepartment(_ context.Context, id string, dep entities.Department) (*entities.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, d := range m.departments {
		if d.ID != id {
			continue
		}
		if dep.Name != "" {
			d.Name = dep.Name
		}
		if dep.Description != "" {
			d.Description = dep.Description
		}
		m.departments[i] = d
		out := d
		out.Members = cloneMembers(d.Members)
		return &out, nil
	}
	return nil, entities.ErrDepartmentNotFound
}

// DeleteDepartment removes the department and every team inside it.
func (m *Memory) DeleteDepartment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, d := range m.departments {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.ErrDepartmentNotFound
	}
	m.departments = append(m.departments[:idx], m.departments[idx+1:]...)

	kept := m.teams[:0:0]
	dropped := 0
	for _, t := range m.teams {
		if t.DepartmentID != nil && *t.DepartmentID == id {
			dropped++
			continue
		}
		kept = append(kept, t)
	}
	m.teams = kept

	m.log.Infow("department deleted", "department_id", id, "teams_dropped", dropped)
	return nil
}
