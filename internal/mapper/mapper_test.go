package mapper

import (
	"testing"
	"time"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestFromAPIUserDefaults(t *testing.T) {
	u := FromAPIUser(api.UserDTO{ID: "u1", Name: "Amina", Email: "amina@example.com"})

	require.Equal(t, entities.RoleMember, u.Role)
	require.Equal(t, entities.StatusPending, u.Status)
	require.Equal(t, "https://avatar.vercel.sh/u1", u.Avatar)
	require.True(t, u.JoinedAt.IsZero())
	require.Nil(t, u.VerifiedAt)
}

func TestFromAPIUserDerivesJoinedDisplay(t *testing.T) {
	u := FromAPIUser(api.UserDTO{ID: "u1", JoinedAt: "2025-03-09T10:00:00Z"})

	require.Equal(t, "Mar 9, 2025", u.Joined)
	require.Equal(t, time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC), u.JoinedAt)
}

func TestFromAPIUserLowercasesEnums(t *testing.T) {
	u := FromAPIUser(api.UserDTO{ID: "u1", Role: "ADMIN", Status: "Verified"})

	require.Equal(t, entities.RoleAdmin, u.Role)
	require.Equal(t, entities.StatusVerified, u.Status)
}

func TestWireRoleRoundTrip(t *testing.T) {
	require.Equal(t, "LEADER", WireRole(entities.MemberRoleLeader))
	require.Equal(t, "MEMBER", WireRole(entities.MemberRoleMember))

	require.Equal(t, entities.MemberRoleLeader, RoleFromWire("LEADER"))
	require.Equal(t, entities.MemberRoleMember, RoleFromWire("MEMBER"))
	require.Equal(t, entities.MemberRoleMember, RoleFromWire(""))
	require.Equal(t, entities.MemberRoleMember, RoleFromWire("owner"))
}

func TestCanonicalEventType(t *testing.T) {
	require.Equal(t, entities.EventMeeting, CanonicalEventType("Meeting"))
	require.Equal(t, entities.EventGeneral, CanonicalEventType(""))
	require.Equal(t, entities.EventGeneral, CanonicalEventType("  event "))
}

func TestAttendeeNamePrefersName(t *testing.T) {
	require.Equal(t, "Sami", AttendeeName(api.AttendeeDTO{UserID: "u1", Name: "Sami"}))
	require.Equal(t, "u1", AttendeeName(api.AttendeeDTO{UserID: "u1"}))
	require.Equal(t, "", AttendeeName(api.AttendeeDTO{}))
}

func TestFromAPIEventFlattensAttendees(t *testing.T) {
	e := FromAPIEvent(api.EventDTO{
		ID:    "e1",
		Title: "Standup",
		Type:  "MEETING",
		Attendees: []api.AttendeeDTO{
			{Name: "Amina"},
			{UserID: "u2"},
			{},
		},
	})

	require.Equal(t, entities.EventMeeting, e.Type)
	require.Equal(t, []string{"Amina", "u2"}, e.Attendees)
}

func TestFromAPIUserIsPure(t *testing.T) {
	src := api.UserDTO{ID: "u1", Name: "Amina", Role: "ADMIN"}
	first := FromAPIUser(src)
	second := FromAPIUser(src)

	require.Equal(t, first, second)
	require.Equal(t, "ADMIN", src.Role)
}

func TestMergeUserKeepsPriorOnEmpty(t *testing.T) {
	prev := entities.User{
		ID: "u1", Name: "Amina", Email: "amina@example.com",
		Role: entities.RoleManager, Status: entities.StatusVerified,
		Avatar: "https://cdn.example.com/amina.png",
	}
	next := entities.User{ID: "u1", Name: "Amina B."}

	out := MergeUser(prev, next)
	require.Equal(t, "Amina B.", out.Name)
	require.Equal(t, "amina@example.com", out.Email)
	require.Equal(t, entities.RoleManager, out.Role)
	require.Equal(t, entities.StatusVerified, out.Status)
	require.Equal(t, "https://cdn.example.com/amina.png", out.Avatar)
}

func TestMergeUserVerificationNeverReverses(t *testing.T) {
	prev := entities.User{ID: "u1", Status: entities.StatusVerified}
	next := entities.User{ID: "u1", Status: entities.StatusPending}

	out := MergeUser(prev, next)
	require.Equal(t, entities.StatusVerified, out.Status)
}

func TestMergeUserCustomAvatarBeatsPlaceholder(t *testing.T) {
	prev := entities.User{ID: "u1", Avatar: "https://cdn.example.com/amina.png"}
	next := entities.User{ID: "u1", Avatar: DefaultAvatar("u1")}

	out := MergeUser(prev, next)
	require.Equal(t, "https://cdn.example.com/amina.png", out.Avatar)
}

func TestMergeUserIdempotent(t *testing.T) {
	prev := entities.User{ID: "u1", Name: "Amina", Status: entities.StatusVerified}
	next := entities.User{ID: "u1", Email: "amina@example.com"}

	once := MergeUser(prev, next)
	twice := MergeUser(once, next)
	require.Equal(t, once, MergeUser(prev, next))
	require.Equal(t, once.Email, twice.Email)
	require.Equal(t, once.Status, twice.Status)
}

func TestMergeTeamKeepsMembersWhenServerOmits(t *testing.T) {
	depID := "d1"
	prev := entities.Team{
		ID:           "t1",
		Name:         "Platform",
		DepartmentID: &depID,
		Members:      []entities.Member{{UserID: "u1", Role: entities.MemberRoleLeader}},
	}
	next := entities.Team{ID: "t1", Name: "Platform Core"}

	out := MergeTeam(prev, next)
	require.Equal(t, "Platform Core", out.Name)
	require.Equal(t, &depID, out.DepartmentID)
	require.Equal(t, prev.Members, out.Members)
}

func TestMergeTeamEmptyMemberListIsAuthoritative(t *testing.T) {
	prev := entities.Team{ID: "t1", Members: []entities.Member{{UserID: "u1"}}}
	next := entities.Team{ID: "t1", Members: []entities.Member{}}

	out := MergeTeam(prev, next)
	require.Empty(t, out.Members)
	require.NotNil(t, out.Members)
}

func TestMergeEventKeepsPriorFields(t *testing.T) {
	prev := entities.Event{
		ID: "e1", Title: "Planning", Date: "2025-06-01", Time: "10:00",
		Duration: 60, Type: entities.EventPlanning,
		Attendees: []string{"Amina"}, Color: "green",
	}
	next := entities.Event{ID: "e1", Title: "Planning H2"}

	out := MergeEvent(prev, next)
	require.Equal(t, "Planning H2", out.Title)
	require.Equal(t, "2025-06-01", out.Date)
	require.Equal(t, 60, out.Duration)
	require.Equal(t, entities.EventPlanning, out.Type)
	require.Equal(t, []string{"Amina"}, out.Attendees)
	require.Equal(t, "green", out.Color)
}
