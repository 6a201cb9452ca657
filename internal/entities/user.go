// Package entities contains core business entities.
package entities

import "time"

// UserRole enumerates access levels in the hub.
type UserRole string

const (
	// RoleAdmin grants full administration rights.
	RoleAdmin UserRole = "admin"
	// RoleManager grants team and department management rights.
	RoleManager UserRole = "manager"
	// RoleMember is the default role.
	RoleMember UserRole = "member"
)

// UserStatus enumerates the verification lifecycle.
type UserStatus string

const (
	// StatusPending marks a user awaiting verification.
	StatusPending UserStatus = "pending"
	// StatusVerified marks a verified user. Pending never comes back.
	StatusVerified UserStatus = "verified"
)

// User is a domain representation of a hub member.
type User struct {
	ID         string
	Name       string
	Email      string
	Role       UserRole
	Status     UserStatus
	JoinedAt   time.Time
	Joined     string // display form, derived at the wire boundary
	VerifiedAt *time.Time
	Avatar     string
}

// EntityID implements the store key.
func (u User) EntityID() string { return u.ID }
