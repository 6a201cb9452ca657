// Package mapper converts between domain models and wire DTOs and applies
// the boundary normalization rules: missing-field defaulting, display
// derivation and casing conventions. All functions are pure.
package mapper

import (
	"fmt"
	"strings"
	"time"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
)

const joinedLayout = "Jan 2, 2006"

// DefaultAvatar returns the deterministic placeholder avatar for a user id.
func DefaultAvatar(id string) string {
	return fmt.Sprintf("https://avatar.vercel.sh/%s", id)
}

// WireRole maps a member role to its UPPERCASE wire form.
func WireRole(role entities.MemberRole) string {
	return strings.ToUpper(string(role))
}

// RoleFromWire maps a wire role back to the lowercase client convention.
// Unknown or empty roles default to member.
func RoleFromWire(role string) entities.MemberRole {
	switch strings.ToLower(role) {
	case "leader":
		return entities.MemberRoleLeader
	default:
		return entities.MemberRoleMember
	}
}

// CanonicalEventType normalizes event type casing; empty defaults to event.
func CanonicalEventType(raw string) entities.EventType {
	t := strings.ToLower(strings.TrimSpace(raw))
	if t == "" {
		return entities.EventGeneral
	}
	return entities.EventType(t)
}

// AttendeeName flattens a raw attendee record to a display name.
func AttendeeName(a api.AttendeeDTO) string {
	if a.Name != "" {
		return a.Name
	}
	return a.UserID
}

// FromAPIUser builds a domain user from the wire shape, defaulting the
// avatar and deriving the joined display field.
func FromAPIUser(src api.UserDTO) entities.User {
	u := entities.User{
		ID:     src.ID,
		Name:   src.Name,
		Email:  src.Email,
		Role:   entities.UserRole(strings.ToLower(src.Role)),
		Status: entities.UserStatus(strings.ToLower(src.Status)),
		Avatar: src.Avatar,
	}
	if u.Role == "" {
		u.Role = entities.RoleMember
	}
	if u.Status == "" {
		u.Status = entities.StatusPending
	}
	if u.Avatar == "" {
		u.Avatar = DefaultAvatar(src.ID)
	}
	if t, err := time.Parse(time.RFC3339, src.JoinedAt); err == nil {
		u.JoinedAt = t
		u.Joined = t.Format(joinedLayout)
	}
	if t, err := time.Parse(time.RFC3339, src.VerifiedAt); err == nil {
		u.VerifiedAt = &t
	}
	return u
}

// ToAPIUser maps a domain user to the wire shape.
func ToAPIUser(u entities.User) api.UserDTO {
	dto := api.UserDTO{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   string(u.Role),
		Status: string(u.Status),
		Avatar: u.Avatar,
	}
	if !u.JoinedAt.IsZero() {
		dto.JoinedAt = u.JoinedAt.Format(time.RFC3339)
	}
	if u.VerifiedAt != nil {
		dto.VerifiedAt = u.VerifiedAt.Format(time.RFC3339)
	}
	return dto
}

// FromAPIMember builds a domain member from the wire shape.
func FromAPIMember(src api.MemberDTO) entities.Member {
	return entities.Member{UserID: src.UserID, Role: RoleFromWire(src.Role)}
}

// ToAPIMember maps a domain member to the wire shape with wire casing.
func ToAPIMember(m entities.Member) api.MemberDTO {
	return api.MemberDTO{UserID: m.UserID, Role: WireRole(m.Role)}
}

// FromAPITeam builds a domain team from the wire shape.
func FromAPITeam(src api.TeamDTO) entities.Team {
	members := make([]entities.Member, 0, len(src.Members))
	for _, m := range src.Members {
		members = append(members, FromAPIMember(m))
	}
	status := entities.TeamStatus(strings.ToLower(src.Status))
	if status == "" {
		status = entities.TeamActive
	}
	return entities.Team{
		ID:           src.ID,
		Name:         src.Name,
		Description:  src.Description,
		DepartmentID: src.DepartmentID,
		Members:      members,
		Status:       status,
	}
}

// ToAPITeam maps a domain team to the wire shape.
func ToAPITeam(t entities.Team) api.TeamDTO {
	members := make([]api.MemberDTO, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, ToAPIMember(m))
	}
	return api.TeamDTO{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		DepartmentID: t.DepartmentID,
		Members:      members,
		Status:       string(t.Status),
	}
}

// FromAPIDepartment builds a domain department from the wire shape.
func FromAPIDepartment(src api.DepartmentDTO) entities.Department {
	members := make([]entities.Member, 0, len(src.Members))
	for _, m := range src.Members {
		members = append(members, FromAPIMember(m))
	}
	return entities.Department{
		ID:          src.ID,
		Name:        src.Name,
		Description: src.Description,
		Members:     members,
	}
}

// ToAPIDepartment maps a domain department to the wire shape.
func ToAPIDepartment(d entities.Department) api.DepartmentDTO {
	members := make([]api.MemberDTO, 0, len(d.Members))
	for _, m := range d.Members {
		members = append(members, ToAPIMember(m))
	}
	return api.DepartmentDTO{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Members:     members,
	}
}

// FromAPIEvent builds a domain event from the wire shape, canonicalizing
// the type casing and flattening attendees to display names.
func FromAPIEvent(src api.EventDTO) entities.Event {
	attendees := make([]string, 0, len(src.Attendees))
	for _, a := range src.Attendees {
		if name := AttendeeName(a); name != "" {
			attendees = append(attendees, name)
		}
	}
	return entities.Event{
		ID:          src.ID,
		Title:       src.Title,
		Description: src.Description,
		Date:        src.Date,
		Time:        src.Time,
		Duration:    src.Duration,
		Type:        CanonicalEventType(src.Type),
		Attendees:   attendees,
		Location:    src.Location,
		Color:       src.Color,
	}
}

// ToAPIEvent maps a domain event to the wire shape.
func ToAPIEvent(e entities.Event) api.EventDTO {
	attendees := make([]api.AttendeeDTO, 0, len(e.Attendees))
	for _, name := range e.Attendees {
		attendees = append(attendees, api.AttendeeDTO{Name: name})
	}
	return api.EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Duration:    e.Duration,
		Type:        string(e.Type),
		Attendees:   attendees,
		Location:    e.Location,
		Color:       e.Color,
	}
}

// FromAPIPendingEvent builds a domain event request from the wire shape.
func FromAPIPendingEvent(src api.PendingEventDTO) entities.PendingEvent {
	attendees := make([]string, 0, len(src.Attendees))
	for _, a := range src.Attendees {
		if name := AttendeeName(a); name != "" {
			attendees = append(attendees, name)
		}
	}
	return entities.PendingEvent{
		ID:          src.ID,
		Title:       src.Title,
		Description: src.Description,
		Date:        src.Date,
		Time:        src.Time,
		Duration:    src.Duration,
		Type:        CanonicalEventType(src.Type),
		RequestedBy: src.RequestedBy,
		Attendees:   attendees,
	}
}

// ToAPIPendingEvent maps a domain event request to the wire shape.
func ToAPIPendingEvent(p entities.PendingEvent) api.PendingEventDTO {
	attendees := make([]api.AttendeeDTO, 0, len(p.Attendees))
	for _, name := range p.Attendees {
		attendees = append(attendees, api.AttendeeDTO{Name: name})
	}
	return api.PendingEventDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Date:        p.Date,
		Time:        p.Time,
		Duration:    p.Duration,
		Type:        string(p.Type),
		RequestedBy: p.RequestedBy,
		Attendees:   attendees,
	}
}
