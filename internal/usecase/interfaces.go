// Package usecase contains the interfaces the UI layer consumes.
package usecase

import (
	"context"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
)

// UserSyncInterface abstracts user collection operations.
type UserSyncInterface interface {
	Users() []entities.User
	CreateUser(ctx context.Context, draft entities.User) bool
	UpdateUser(ctx context.Context, id string, draft entities.User) bool
	DeleteUser(ctx context.Context, id string) bool
	VerifyUser(ctx context.Context, id string) bool
}

// TeamSyncInterface abstracts team collection operations.
type TeamSyncInterface interface {
	Teams() []entities.Team
	CreateTeam(ctx context.Context, draft entities.Team) bool
	UpdateTeam(ctx context.Context, id string, draft entities.Team) bool
	DeleteTeam(ctx context.Context, id string) bool
}

// DepartmentSyncInterface abstracts department collection operations.
type DepartmentSyncInterface interface {
	Departments() []entities.Department
	DepartmentTeams(id string) []entities.Team
	CreateDepartment(ctx context.Context, draft entities.Department) bool
	UpdateDepartment(ctx context.Context, id string, draft entities.Department) bool
	DeleteDepartment(ctx context.Context, id string) bool
}

// EventSyncInterface abstracts calendar operations and the request
// approval workflow.
type EventSyncInterface interface {
	Events() []entities.Event
	PendingEvents() []entities.PendingEvent
	CreateEvent(ctx context.Context, draft entities.Event) bool
	UpdateEvent(ctx context.Context, id string, draft entities.Event) bool
	DeleteEvent(ctx context.Context, id string) bool
	ApproveRequest(ctx context.Context, id string) bool
	RejectRequest(ctx context.Context, id string) bool
}

// MemberSyncInterface abstracts membership operations on teams and
// departments.
type MemberSyncInterface interface {
	AddMember(ctx context.Context, parent entities.MemberParent, parentID, userID string, role entities.MemberRole) bool
	RemoveMember(ctx context.Context, parent entities.MemberParent, parentID, userID string) bool
	ChangeMemberRole(ctx context.Context, parent entities.MemberParent, parentID, userID string, role entities.MemberRole) bool
}

// SyncStateInterface exposes advisory loading state and the full refresh.
type SyncStateInterface interface {
	Loading(token string) bool
	RefreshAll(ctx context.Context) bool
}
