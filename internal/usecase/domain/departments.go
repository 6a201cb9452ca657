// Package domain contains synchronizer operations by department.
package domain

import (
	"context"
	"strings"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"
)

var departmentCodec = codec[entities.Department]{
	name:   "department",
	entity: api.EntityDepartments,
	decode: decodeAs(mapper.FromAPIDepartment),
	merge:  mapper.MergeDepartment,
}

// Departments returns the current department collection, most recent first.
func (u *Usecase) Departments() []entities.Department {
	return u.departments.List()
}

// DepartmentTeams derives the teams belonging to a department from the
// team collection.
func (u *Usecase) DepartmentTeams(id string) []entities.Team {
	out := make([]entities.Team, 0)
	for _, t := range u.teams.List() {
		if t.DepartmentID != nil && *t.DepartmentID == id {
			out = append(out, t)
		}
	}
	return out
}

// CreateDepartment sends a new department to the server and inserts the
// returned canonical object as the first item.
func (u *Usecase) CreateDepartment(ctx context.Context, draft entities.Department) bool {
	if strings.TrimSpace(draft.Name) == "" {
		return u.invalid("Could not save department", "department name is required")
	}
	return createOne(ctx, u, u.departments, departmentCodec, mapper.ToAPIDepartment(draft))
}

// UpdateDepartment saves changes to an existing department.
func (u *Usecase) UpdateDepartment(ctx context.Context, id string, draft entities.Department) bool {
	if id == "" {
		return u.invalid("Could not save department", "department id is required")
	}
	return updateOne(ctx, u, u.departments, departmentCodec, id, mapper.ToAPIDepartment(draft))
}

// DeleteDepartment removes the department and every team referencing it
// from view, optimistically. Departments and teams are coupled, so both
// snapshots are taken at the same instant and both are restored when the
// server rejects the delete.
func (u *Usecase) DeleteDepartment(ctx context.Context, id string) bool {
	if id == "" {
		return u.invalid("Could not delete department", "department id is required")
	}

	token := "delete-department-" + id
	u.tokens.begin(token)
	defer u.tokens.end(token)

	unlock := u.locks.lock(api.EntityDepartments + ":" + id)
	defer unlock()

	depSnapshot := u.departments.Snapshot()
	teamSnapshot := u.teams.Snapshot()

	u.departments.Remove(id)
	dropped := u.teams.RemoveWhere(func(t entities.Team) bool {
		return t.DepartmentID != nil && *t.DepartmentID == id
	})

	if _, err := u.api.Delete(ctx, api.ItemPath(api.EntityDepartments, id)); err != nil {
		u.departments.Restore(depSnapshot)
		u.teams.Restore(teamSnapshot)
		return u.failed("Could not delete department", err)
	}

	u.log.Infow("department deleted", "department_id", id, "teams_dropped", dropped)
	u.notify.Success("Department deleted", "The department and its teams have been removed.")
	return true
}
