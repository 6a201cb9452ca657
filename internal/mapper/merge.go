package mapper

import "github.com/samibentaiba/itc-hub-sub000/internal/entities"

// Merge functions implement defensive reconciliation: fields the server
// response left empty keep their prior client value instead of being
// cleared. Each function is pure and idempotent.

// MergeUser overlays a server user onto the prior client user.
func MergeUser(prev, next entities.User) entities.User {
	out := next
	if out.Name == "" {
		out.Name = prev.Name
	}
	if out.Email == "" {
		out.Email = prev.Email
	}
	if out.Role == "" {
		out.Role = prev.Role
	}
	if out.Status == "" {
		out.Status = prev.Status
	}
	// Verification never reverses.
	if prev.Status == entities.StatusVerified {
		out.Status = entities.StatusVerified
	}
	if out.JoinedAt.IsZero() {
		out.JoinedAt = prev.JoinedAt
		out.Joined = prev.Joined
	}
	if out.VerifiedAt == nil {
		out.VerifiedAt = prev.VerifiedAt
	}
	if prev.Avatar != "" && (out.Avatar == "" || out.Avatar == DefaultAvatar(out.ID)) {
		out.Avatar = prev.Avatar
	}
	if out.Avatar == "" {
		out.Avatar = DefaultAvatar(out.ID)
	}
	return out
}

// MergeTeam overlays a server team onto the prior client team.
func MergeTeam(prev, next entities.Team) entities.Team {
	out := next
	if out.Name == "" {
		out.Name = prev.Name
	}
	if out.Description == "" {
		out.Description = prev.Description
	}
	if out.DepartmentID == nil {
		out.DepartmentID = prev.DepartmentID
	}
	if out.Members == nil {
		out.Members = prev.Members
	}
	if out.Status == "" {
		out.Status = prev.Status
	}
	return out
}

// MergeDepartment overlays a server department onto the prior client one.
func MergeDepartment(prev, next entities.Department) entities.Department {
	out := next
	if out.Name == "" {
		out.Name = prev.Name
	}
	if out.Description == "" {
		out.Description = prev.Description
	}
	if out.Members == nil {
		out.Members = prev.Members
	}
	return out
}

// MergeEvent overlays a server event onto the prior client event.
func MergeEvent(prev, next entities.Event) entities.Event {
	out := next
	if out.Title == "" {
		out.Title = prev.Title
	}
	if out.Description == "" {
		out.Description = prev.Description
	}
	if out.Date == "" {
		out.Date = prev.Date
	}
	if out.Time == "" {
		out.Time = prev.Time
	}
	if out.Duration == 0 {
		out.Duration = prev.Duration
	}
	if out.Type == "" {
		out.Type = prev.Type
	}
	if out.Attendees == nil {
		out.Attendees = prev.Attendees
	}
	if out.Location == "" {
		out.Location = prev.Location
	}
	if out.Color == "" {
		out.Color = prev.Color
	}
	return out
}
