package memory

import (
	"context"
	"testing"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRepo() *Memory {
	return New(zap.NewNop().Sugar())
}

func TestCreateUserAssignsIDAndPendingStatus(t *testing.T) {
	m := newRepo()

	usr, err := m.CreateUser(context.Background(), entities.User{
		Name:   "Ervin Ray",
		Email:  "ervin@itc-hub.dev",
		Status: entities.StatusVerified, // ignored on create
	})
	require.NoError(t, err)
	require.NotEmpty(t, usr.ID)
	require.Equal(t, entities.StatusPending, usr.Status)
	require.Nil(t, usr.VerifiedAt)
	require.NotEmpty(t, usr.Avatar)

	users, err := m.ListUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, usr.ID, users[0].ID)
}

func TestCreateUserDuplicateEmailCaseInsensitive(t *testing.T) {
	m := newRepo()

	_, err := m.CreateUser(context.Background(), entities.User{Name: "Dup", Email: "ALICE@itc-hub.dev"})
	require.ErrorIs(t, err, entities.ErrEmailExists)
}

func TestUpdateUserBlanksKeepPrior(t *testing.T) {
	m := newRepo()

	usr, err := m.UpdateUser(context.Background(), "u1", entities.User{Name: "Alice M."})
	require.NoError(t, err)
	require.Equal(t, "Alice M.", usr.Name)
	require.Equal(t, "alice@itc-hub.dev", usr.Email)
	require.Equal(t, entities.RoleAdmin, usr.Role)

	_, err = m.UpdateUser(context.Background(), "nope", entities.User{Name: "x"})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestVerifyUserTransitions(t *testing.T) {
	m := newRepo()

	usr, err := m.VerifyUser(context.Background(), "u4")
	require.NoError(t, err)
	require.Equal(t, entities.StatusVerified, usr.Status)
	require.NotNil(t, usr.VerifiedAt)

	_, err = m.VerifyUser(context.Background(), "u4")
	require.ErrorIs(t, err, entities.ErrAlreadyVerified)

	_, err = m.VerifyUser(context.Background(), "nope")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestDeleteUserDropsMemberships(t *testing.T) {
	m := newRepo()

	require.NoError(t, m.DeleteUser(context.Background(), "u3"))

	teams, err := m.ListTeams(context.Background())
	require.NoError(t, err)
	for _, team := range teams {
		for _, mem := range team.Members {
			require.NotEqual(t, "u3", mem.UserID)
		}
	}

	deps, err := m.ListDepartments(context.Background())
	require.NoError(t, err)
	for _, dep := range deps {
		for _, mem := range dep.Members {
			require.NotEqual(t, "u3", mem.UserID)
		}
	}

	require.ErrorIs(t, m.DeleteUser(context.Background(), "u3"), entities.ErrUserNotFound)
}

func TestCreateTeamValidatesDepartment(t *testing.T) {
	m := newRepo()

	missing := "d999"
	_, err := m.CreateTeam(context.Background(), entities.Team{Name: "Ghost", DepartmentID: &missing})
	require.ErrorIs(t, err, entities.ErrDepartmentNotFound)

	d1 := "d1"
	team, err := m.CreateTeam(context.Background(), entities.Team{Name: "QA", DepartmentID: &d1})
	require.NoError(t, err)
	require.Equal(t, entities.TeamActive, team.Status)
	require.NotEmpty(t, team.ID)
}

func TestCreateTeamRejectsDuplicateMembers(t *testing.T) {
	m := newRepo()

	_, err := m.CreateTeam(context.Background(), entities.Team{
		Name: "Dup",
		Members: []entities.Member{
			{UserID: "u1", Role: entities.MemberRoleLeader},
			{UserID: "u1", Role: entities.MemberRoleMember},
		},
	})
	require.ErrorIs(t, err, entities.ErrMemberExists)
}

func TestDeleteDepartmentCascades(t *testing.T) {
	m := newRepo()

	require.NoError(t, m.DeleteDepartment(context.Background(), "d1"))

	teams, err := m.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Equal(t, "t3", teams[0].ID)

	deps, err := m.ListDepartments(context.Background())
	require.NoError(t, err)
	require.Len(t, deps, 1)
}

func TestMemberLifecycle(t *testing.T) {
	m := newRepo()
	ctx := context.Background()

	member, err := m.AddMember(ctx, entities.ParentTeam, "t3", "u1", entities.MemberRoleLeader)
	require.NoError(t, err)
	require.Equal(t, entities.MemberRoleLeader, member.Role)

	_, err = m.AddMember(ctx, entities.ParentTeam, "t3", "u1", entities.MemberRoleMember)
	require.ErrorIs(t, err, entities.ErrMemberExists)

	_, err = m.AddMember(ctx, entities.ParentTeam, "t3", "ghost", entities.MemberRoleMember)
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	_, err = m.AddMember(ctx, entities.ParentTeam, "t999", "u1", entities.MemberRoleMember)
	require.ErrorIs(t, err, entities.ErrTeamNotFound)

	updated, err := m.UpdateMemberRole(ctx, entities.ParentTeam, "t3", "u1", entities.MemberRoleMember)
	require.NoError(t, err)
	require.Equal(t, entities.MemberRoleMember, updated.Role)

	require.NoError(t, m.RemoveMember(ctx, entities.ParentTeam, "t3", "u1"))
	require.ErrorIs(t, m.RemoveMember(ctx, entities.ParentTeam, "t3", "u1"), entities.ErrMemberNotFound)
}

func TestMemberOpsOnDepartments(t *testing.T) {
	m := newRepo()
	ctx := context.Background()

	member, err := m.AddMember(ctx, entities.ParentDepartment, "d2", "u4", entities.MemberRoleMember)
	require.NoError(t, err)
	require.Equal(t, "u4", member.UserID)

	_, err = m.AddMember(ctx, entities.ParentDepartment, "d999", "u4", entities.MemberRoleMember)
	require.ErrorIs(t, err, entities.ErrDepartmentNotFound)
}

func TestListTeamsReturnsCopies(t *testing.T) {
	m := newRepo()
	ctx := context.Background()

	teams, err := m.ListTeams(ctx)
	require.NoError(t, err)
	teams[0].Members[0].UserID = "mutated"

	fresh, err := m.ListTeams(ctx)
	require.NoError(t, err)
	require.NotEqual(t, "mutated", fresh[0].Members[0].UserID)
}

func TestCreateEventDefaultsTypeAndColor(t *testing.T) {
	m := newRepo()

	event, err := m.CreateEvent(context.Background(), entities.Event{Title: "Kickoff", Date: "2025-10-01"})
	require.NoError(t, err)
	require.Equal(t, entities.EventGeneral, event.Type)
	require.Equal(t, "gray", event.Color)

	meeting, err := m.CreateEvent(context.Background(), entities.Event{Title: "Sync", Date: "2025-10-02", Type: entities.EventMeeting})
	require.NoError(t, err)
	require.Equal(t, "blue", meeting.Color)
}

func TestApproveEventRequestKeepsID(t *testing.T) {
	m := newRepo()
	ctx := context.Background()

	event, err := m.ApproveEventRequest(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "p1", event.ID)
	require.Equal(t, "Go workshop", event.Title)
	require.Equal(t, "orange", event.Color)
	require.Equal(t, []string{"Chloe Nguyen"}, event.Attendees)

	events, err := m.ListEvents(ctx)
	require.NoError(t, err)
	require.Equal(t, "p1", events[0].ID)

	requests, err := m.ListEventRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)

	_, err = m.ApproveEventRequest(ctx, "p1")
	require.ErrorIs(t, err, entities.ErrRequestNotFound)
}

func TestRejectEventRequest(t *testing.T) {
	m := newRepo()
	ctx := context.Background()

	require.NoError(t, m.RejectEventRequest(ctx, "p2"))
	require.ErrorIs(t, m.RejectEventRequest(ctx, "p2"), entities.ErrRequestNotFound)

	events, err := m.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
}
