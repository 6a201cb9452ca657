// Package api defines the wire shapes and routes of the admin REST surface.
// Both the fiber server and the sync client speak these types; domain
// entities never cross the wire directly.
package api

// UserDTO is the wire shape of a user.
type UserDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	JoinedAt   string `json:"joinedAt,omitempty"` // RFC 3339
	VerifiedAt string `json:"verifiedAt,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
}

// MemberDTO is the wire shape of a membership record.
// Roles travel UPPERCASE on the wire regardless of client casing.
type MemberDTO struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// TeamDTO is the wire shape of a team.
type TeamDTO struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	DepartmentID *string     `json:"departmentId"`
	Members      []MemberDTO `json:"members"`
	Status       string      `json:"status,omitempty"`
}

// DepartmentDTO is the wire shape of a department.
type DepartmentDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Members     []MemberDTO `json:"members"`
}

// AttendeeDTO is a raw attendee record on the wire. Either field may be
// absent; the boundary flattens it to a display name.
type AttendeeDTO struct {
	UserID string `json:"userId,omitempty"`
	Name   string `json:"name,omitempty"`
}

// EventDTO is the wire shape of a confirmed calendar event.
type EventDTO struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Duration    int           `json:"duration"`
	Type        string        `json:"type"`
	Attendees   []AttendeeDTO `json:"attendees"`
	Location    string        `json:"location,omitempty"`
	Color       string        `json:"color,omitempty"`
}

// PendingEventDTO is the wire shape of an event request.
type PendingEventDTO struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Duration    int           `json:"duration"`
	Type        string        `json:"type"`
	RequestedBy string        `json:"requestedBy,omitempty"`
	Attendees   []AttendeeDTO `json:"attendees"`
}

// UsersResponse wraps the user list payload.
type UsersResponse struct {
	Users []UserDTO `json:"users"`
}

// TeamsResponse wraps the team list payload.
type TeamsResponse struct {
	Teams []TeamDTO `json:"teams"`
}

// DepartmentsResponse wraps the department list payload.
type DepartmentsResponse struct {
	Departments []DepartmentDTO `json:"departments"`
}

// EventsResponse wraps the event list payload.
type EventsResponse struct {
	Events []EventDTO `json:"events"`
}

// PendingEventsResponse wraps the event request list payload.
type PendingEventsResponse struct {
	Requests []PendingEventDTO `json:"requests"`
}

// AddMemberRequest is the add-member body.
type AddMemberRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// MemberRoleRequest is the update-member-role body.
type MemberRoleRequest struct {
	Role string `json:"role"`
}

// ErrorResponse is the error body shape; Error is optional on the wire.
type ErrorResponse struct {
	Error string `json:"error,omitempty"`
}
