// Package repository contains repository interfaces for the admin API's
// persistence layers.
package repository

import (
	"context"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, user entities.User) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) error
	VerifyUser(ctx context.Context, id string) (*entities.User, error)
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	ListTeams(ctx context.Context) ([]entities.Team, error)
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id string, team entities.Team) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id string) error
}

// DepartmentInterface exposes department-related operations. Deleting a
// department removes its teams as well.
type DepartmentInterface interface {
	ListDepartments(ctx context.Context) ([]entities.Department, error)
	CreateDepartment(ctx context.Context, dep entities.Department) (*entities.Department, error)
	UpdateDepartment(ctx context.Context, id string, dep entities.Department) (*entities.Department, error)
	DeleteDepartment(ctx context.Context, id string) error
}

// MemberInterface exposes membership operations shared by teams and
// departments. Member user ids are unique within one parent.
type MemberInterface interface {
	AddMember(ctx context.Context, parent entities.MemberParent, parentID, userID string, role entities.MemberRole) (*entities.Member, error)
	RemoveMember(ctx context.Context, parent entities.MemberParent, parentID, userID string) error
	UpdateMemberRole(ctx context.Context, parent entities.MemberParent, parentID, userID string, role entities.MemberRole) (*entities.Member, error)
}

// EventInterface exposes calendar and request-workflow operations.
type EventInterface interface {
	ListEvents(ctx context.Context) ([]entities.Event, error)
	CreateEvent(ctx context.Context, event entities.Event) (*entities.Event, error)
	UpdateEvent(ctx context.Context, id string, event entities.Event) (*entities.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEventRequests(ctx context.Context) ([]entities.PendingEvent, error)
	CreateEventRequest(ctx context.Context, req entities.PendingEvent) (*entities.PendingEvent, error)
	ApproveEventRequest(ctx context.Context, id string) (*entities.Event, error)
	RejectEventRequest(ctx context.Context, id string) error
}
