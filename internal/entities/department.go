// Package entities contains core business entities.
package entities

// Department is a high-level organizational unit. Its teams are derived
// from the team collection by DepartmentID, never stored here.
type Department struct {
	ID          string
	Name        string
	Description string
	Members     []Member
}

// EntityID implements the store key.
func (d Department) EntityID() string { return d.ID }
