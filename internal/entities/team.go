// Package entities contains core business entities.
package entities

// TeamStatus enumerates team lifecycle states.
type TeamStatus string

const (
	// TeamActive marks an active team.
	TeamActive TeamStatus = "active"
	// TeamArchived marks a team kept for history only.
	TeamArchived TeamStatus = "archived"
)

// Team aggregates members under a department.
// Member user ids are unique within one team.
type Team struct {
	ID           string
	Name         string
	Description  string
	DepartmentID *string
	Members      []Member
	Status       TeamStatus
}

// EntityID implements the store key.
func (t Team) EntityID() string { return t.ID }
