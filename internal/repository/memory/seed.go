package memory

import (
	"time"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"
)

// seed loads a small deterministic dataset so a fresh server is usable
// immediately. Ids are stable for tests.
func (m *Memory) seed() {
	joined := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	verified := joined.Add(48 * time.Hour)

	m.users = []entities.User{
		{ID: "u1", Name: "Alice Moreau", Email: "alice@itc-hub.dev", Role: entities.RoleAdmin, Status: entities.StatusVerified, JoinedAt: joined, VerifiedAt: &verified, Avatar: mapper.DefaultAvatar("u1")},
		{ID: "u2", Name: "Bilal Haddad", Email: "bilal@itc-hub.dev", Role: entities.RoleManager, Status: entities.StatusVerified, JoinedAt: joined.AddDate(0, 0, 3), VerifiedAt: &verified, Avatar: mapper.DefaultAvatar("u2")},
		{ID: "u3", Name: "Chloe Nguyen", Email: "chloe@itc-hub.dev", Role: entities.RoleMember, Status: entities.StatusVerified, JoinedAt: joined.AddDate(0, 0, 7), VerifiedAt: &verified, Avatar: mapper.DefaultAvatar("u3")},
		{ID: "u4", Name: "Dario Costa", Email: "dario@itc-hub.dev", Role: entities.RoleMember, Status: entities.StatusPending, JoinedAt: joined.AddDate(0, 1, 0), Avatar: mapper.DefaultAvatar("u4")},
	}

	m.departments = []entities.Department{
		{ID: "d1", Name: "Engineering", Description: "Product development", Members: []entities.Member{
			{UserID: "u2", Role: entities.MemberRoleLeader},
			{UserID: "u3", Role: entities.MemberRoleMember},
		}},
		{ID: "d2", Name: "Design", Description: "Brand and product design", Members: []entities.Member{
			{UserID: "u1", Role: entities.MemberRoleLeader},
		}},
	}

	d1 := "d1"
	m.teams = []entities.Team{
		{ID: "t1", Name: "Platform", Description: "Core services", DepartmentID: &d1, Status: entities.TeamActive, Members: []entities.Member{
			{UserID: "u2", Role: entities.MemberRoleLeader},
			{UserID: "u3", Role: entities.MemberRoleMember},
		}},
		{ID: "t2", Name: "Frontend", Description: "Web console", DepartmentID: &d1, Status: entities.TeamActive, Members: []entities.Member{
			{UserID: "u3", Role: entities.MemberRoleLeader},
		}},
		{ID: "t3", Name: "Labs", Description: "Experiments", DepartmentID: nil, Status: entities.TeamActive, Members: nil},
	}

	m.events = []entities.Event{
		{ID: "e1", Title: "Sprint planning", Date: "2025-09-01", Time: "10:00", Duration: 60, Type: entities.EventPlanning, Attendees: []string{"Alice Moreau", "Bilal Haddad"}, Location: "Room A", Color: "green"},
		{ID: "e2", Title: "Design review", Date: "2025-09-03", Time: "14:00", Duration: 45, Type: entities.EventReview, Attendees: []string{"Alice Moreau", "Chloe Nguyen"}, Location: "Room B", Color: "purple"},
	}

	m.requests = []entities.PendingEvent{
		{ID: "p1", Title: "Go workshop", Description: "Intro to generics", Date: "2025-09-10", Time: "16:00", Duration: 90, Type: entities.EventWorkshop, RequestedBy: "u3", Attendees: []string{"Chloe Nguyen"}},
		{ID: "p2", Title: "Quarterly all-hands", Date: "2025-09-20", Time: "11:00", Duration: 60, Type: entities.EventMeeting, RequestedBy: "u2", Attendees: nil},
	}
}
