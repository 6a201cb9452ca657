// Package entities contains core business entities.
package entities

// MemberRole enumerates roles within a team or department.
type MemberRole string

const (
	// MemberRoleLeader marks the leading member.
	MemberRoleLeader MemberRole = "leader"
	// MemberRoleMember marks a regular member.
	MemberRoleMember MemberRole = "member"
)

// MemberParent identifies which collection owns a member list.
type MemberParent string

const (
	// ParentTeam scopes member operations to a team.
	ParentTeam MemberParent = "teams"
	// ParentDepartment scopes member operations to a department.
	ParentDepartment MemberParent = "departments"
)

// Member links a user to a team or department with a role.
// It never exists outside its parent collection.
type Member struct {
	UserID string
	Role   MemberRole
}
