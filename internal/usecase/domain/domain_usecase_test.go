package domain

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type transportMock struct{ mock.Mock }

var _ Transport = (*transportMock)(nil)

func (m *transportMock) Get(ctx context.Context, path string) (json.RawMessage, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *transportMock) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	args := m.Called(ctx, path, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *transportMock) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	args := m.Called(ctx, path, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *transportMock) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// notifyRecorder captures notifications for assertion.
type notifyRecorder struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *notifyRecorder) Success(title, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, title)
}

func (n *notifyRecorder) Failure(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, title+": "+message)
}

func newTestUsecase() (*Usecase, *transportMock, *notifyRecorder) {
	tr := &transportMock{}
	rec := &notifyRecorder{}
	return New(zap.NewNop().Sugar(), tr, rec), tr, rec
}

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	buf, err := json.Marshal(v)
	require.NoError(t, err)
	return json.RawMessage(buf)
}

func TestCreateUserValidation(t *testing.T) {
	u, tr, rec := newTestUsecase()

	require.False(t, u.CreateUser(context.Background(), entities.User{Name: "  "}))
	require.Len(t, rec.failures, 1)
	tr.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateUserPrependsServerObject(t *testing.T) {
	u, tr, rec := newTestUsecase()
	u.users.Restore([]entities.User{{ID: "u1", Name: "Amina"}})

	tr.On("Post", mock.Anything, "/api/admin/users", mock.Anything).
		Return(raw(t, api.UserDTO{ID: "u9", Name: "Karim", Email: "karim@example.com"}), nil)

	ok := u.CreateUser(context.Background(), entities.User{Name: "Karim", Email: "karim@example.com"})
	require.True(t, ok)

	users := u.Users()
	require.Len(t, users, 2)
	require.Equal(t, "u9", users[0].ID)
	require.Equal(t, "u1", users[1].ID)
	// the server object is normalized on the way in
	require.Equal(t, entities.StatusPending, users[0].Status)
	require.Equal(t, mapper.DefaultAvatar("u9"), users[0].Avatar)

	require.Equal(t, []string{"User created"}, rec.successes)
	require.False(t, u.Loading("add-user"))
	tr.AssertExpectations(t)
}

func TestCreateUserFailureLeavesStoreUntouched(t *testing.T) {
	u, tr, rec := newTestUsecase()
	before := []entities.User{{ID: "u1", Name: "Amina"}}
	u.users.Restore(before)

	tr.On("Post", mock.Anything, "/api/admin/users", mock.Anything).
		Return(nil, errors.New("email already exists"))

	require.False(t, u.CreateUser(context.Background(), entities.User{Name: "Karim", Email: "k@example.com"}))
	require.Equal(t, before, u.Users())
	require.Equal(t, []string{"Could not save user: email already exists"}, rec.failures)
}

func TestLoadingTokenActiveDuringCreate(t *testing.T) {
	u, tr, _ := newTestUsecase()

	tr.On("Post", mock.Anything, "/api/admin/teams", mock.Anything).
		Run(func(mock.Arguments) {
			require.True(t, u.Loading("add-team"))
		}).
		Return(raw(t, api.TeamDTO{ID: "t9", Name: "Core"}), nil)

	require.True(t, u.CreateTeam(context.Background(), entities.Team{Name: "Core"}))
	require.False(t, u.Loading("add-team"))
}

func TestUpdateUserReconcilesWithMerge(t *testing.T) {
	u, tr, _ := newTestUsecase()
	u.users.Restore([]entities.User{{
		ID: "u1", Name: "Amina", Email: "amina@example.com",
		Role: entities.RoleManager, Status: entities.StatusVerified,
	}})

	// server responds with a partial object; prior fields must survive
	tr.On("Put", mock.Anything, "/api/admin/users/u1", mock.Anything).
		Return(raw(t, api.UserDTO{ID: "u1", Name: "Amina B."}), nil)

	require.True(t, u.UpdateUser(context.Background(), "u1", entities.User{Name: "Amina B."}))

	got, ok := u.users.Get("u1")
	require.True(t, ok)
	require.Equal(t, "Amina B.", got.Name)
	require.Equal(t, "amina@example.com", got.Email)
	require.Equal(t, entities.StatusVerified, got.Status)
	require.False(t, u.Loading("edit-user-u1"))
}

func TestUpdateMissingUserIsNoop(t *testing.T) {
	u, tr, rec := newTestUsecase()
	u.users.Restore([]entities.User{{ID: "u1", Name: "Amina"}})

	tr.On("Put", mock.Anything, "/api/admin/users/gone", mock.Anything).
		Return(raw(t, api.UserDTO{ID: "gone", Name: "Ghost"}), nil)

	require.True(t, u.UpdateUser(context.Background(), "gone", entities.User{Name: "Ghost"}))
	require.Len(t, u.Users(), 1)
	require.Equal(t, "u1", u.Users()[0].ID)
	require.Len(t, rec.successes, 1)
}

func TestDeleteUserRollsBackOnFailure(t *testing.T) {
	u, tr, rec := newTestUsecase()
	before := []entities.User{
		{ID: "u1", Name: "Amina"},
		{ID: "u2", Name: "Karim"},
		{ID: "u3", Name: "Lina"},
	}
	u.users.Restore(before)

	tr.On("Delete", mock.Anything, "/api/admin/users/u2").
		Run(func(mock.Arguments) {
			// optimistic removal already applied when the call goes out
			require.Len(t, u.Users(), 2)
		}).
		Return(nil, errors.New("boom"))

	require.False(t, u.DeleteUser(context.Background(), "u2"))
	require.Equal(t, before, u.Users())
	require.Contains(t, rec.failures[0], "Could not delete user")
	require.False(t, u.Loading("delete-user-u2"))
}

func TestDeleteUserSuccess(t *testing.T) {
	u, tr, rec := newTestUsecase()
	u.users.Restore([]entities.User{{ID: "u1"}, {ID: "u2"}})

	tr.On("Delete", mock.Anything, "/api/admin/users/u1").Return(nil, nil)

	require.True(t, u.DeleteUser(context.Background(), "u1"))
	require.Equal(t, []string{"User deleted"}, rec.successes)
	require.Len(t, u.Users(), 1)
}

func TestDeleteDepartmentCascadesTeams(t *testing.T) {
	u, tr, _ := newTestUsecase()
	d1 := "d1"
	u.departments.Restore([]entities.Department{{ID: "d1", Name: "Engineering"}, {ID: "d2"}})
	u.teams.Restore([]entities.Team{
		{ID: "t1", DepartmentID: &d1},
		{ID: "t2"},
		{ID: "t3", DepartmentID: &d1},
	})

	tr.On("Delete", mock.Anything, "/api/admin/departments/d1").Return(nil, nil)

	require.True(t, u.DeleteDepartment(context.Background(), "d1"))
	require.Len(t, u.Departments(), 1)
	require.Equal(t, "d2", u.Departments()[0].ID)

	teams := u.Teams()
	require.Len(t, teams, 1)
	require.Equal(t, "t2", teams[0].ID)
}

func TestDeleteDepartmentRestoresBothStoresOnFailure(t *testing.T) {
	u, tr, _ := newTestUsecase()
	d1 := "d1"
	deps := []entities.Department{{ID: "d1"}, {ID: "d2"}}
	teams := []entities.Team{{ID: "t1", DepartmentID: &d1}, {ID: "t2"}}
	u.departments.Restore(deps)
	u.teams.Restore(teams)

	tr.On("Delete", mock.Anything, "/api/admin/departments/d1").
		Return(nil, errors.New("conflict"))

	require.False(t, u.DeleteDepartment(context.Background(), "d1"))
	require.Equal(t, deps, u.Departments())
	require.Equal(t, teams, u.Teams())
}

func TestVerifyUserMergesOnlyVerificationFields(t *testing.T) {
	u, tr, _ := newTestUsecase()
	u.users.Restore([]entities.User{{
		ID: "u1", Name: "Amina", Email: "amina@example.com",
		Role: entities.RoleManager, Status: entities.StatusPending,
		Avatar: "https://cdn.example.com/amina.png",
	}})

	// partial response: only verification fields present
	tr.On("Post", mock.Anything, "/api/admin/users/u1/verify", nil).
		Return(raw(t, map[string]string{
			"id": "u1", "status": "verified", "verifiedAt": "2025-04-01T09:00:00Z",
		}), nil)

	require.True(t, u.VerifyUser(context.Background(), "u1"))

	got, ok := u.users.Get("u1")
	require.True(t, ok)
	require.Equal(t, entities.StatusVerified, got.Status)
	require.NotNil(t, got.VerifiedAt)
	require.Equal(t, "Amina", got.Name)
	require.Equal(t, "amina@example.com", got.Email)
	require.Equal(t, entities.RoleManager, got.Role)
	require.Equal(t, "https://cdn.example.com/amina.png", got.Avatar)
}

func TestAddMemberSendsUppercaseRoleAndRefreshes(t *testing.T) {
	u, tr, rec := newTestUsecase()

	tr.On("Post", mock.Anything, "/api/admin/teams/t1/members", mock.MatchedBy(func(body any) bool {
		req, ok := body.(api.AddMemberRequest)
		return ok && req.UserID == "u1" && req.Role == "LEADER"
	})).Return(raw(t, api.MemberDTO{UserID: "u1", Role: "LEADER"}), nil)

	expectRefresh(t, tr)

	require.True(t, u.AddMember(context.Background(), entities.ParentTeam, "t1", "u1", entities.MemberRoleLeader))
	require.Equal(t, []string{"Member added"}, rec.successes)
	tr.AssertExpectations(t)
}

func TestAddMemberDoesNotTouchStoresOnFailure(t *testing.T) {
	u, tr, _ := newTestUsecase()
	teams := []entities.Team{{ID: "t1", Members: []entities.Member{}}}
	u.teams.Restore(teams)

	tr.On("Post", mock.Anything, "/api/admin/teams/t1/members", mock.Anything).
		Return(nil, errors.New("member already exists"))

	require.False(t, u.AddMember(context.Background(), entities.ParentTeam, "t1", "u1", entities.MemberRoleMember))
	require.Equal(t, teams, u.Teams())
	tr.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestChangeMemberRoleOnDepartment(t *testing.T) {
	u, tr, _ := newTestUsecase()

	tr.On("Put", mock.Anything, "/api/admin/departments/d1/members/u1", mock.MatchedBy(func(body any) bool {
		req, ok := body.(api.MemberRoleRequest)
		return ok && req.Role == "MEMBER"
	})).Return(raw(t, api.MemberDTO{UserID: "u1", Role: "MEMBER"}), nil)

	expectRefresh(t, tr)

	require.True(t, u.ChangeMemberRole(context.Background(), entities.ParentDepartment, "d1", "u1", entities.MemberRoleMember))
}

func TestApproveRequestMovesPendingToEvents(t *testing.T) {
	u, tr, rec := newTestUsecase()
	u.events.Restore([]entities.Event{{ID: "e1", Title: "Standup"}})
	u.pending.Restore([]entities.PendingEvent{
		{ID: "p1", Title: "Workshop", RequestedBy: "Karim"},
		{ID: "p2", Title: "Review"},
	})

	tr.On("Post", mock.Anything, "/api/admin/events/requests/p1/approve", nil).
		Return(raw(t, api.EventDTO{ID: "p1", Title: "Workshop", Date: "2025-05-01", Type: "workshop", Color: "orange"}), nil)

	require.True(t, u.ApproveRequest(context.Background(), "p1"))

	events := u.Events()
	require.Len(t, events, 2)
	require.Equal(t, "p1", events[0].ID)
	require.Equal(t, entities.EventWorkshop, events[0].Type)

	pending := u.PendingEvents()
	require.Len(t, pending, 1)
	require.Equal(t, "p2", pending[0].ID)

	require.Equal(t, []string{"Request approved"}, rec.successes)
	require.False(t, u.Loading("accept-p1"))
}

func TestApproveRequestFailureKeepsRequestPending(t *testing.T) {
	u, tr, _ := newTestUsecase()
	u.pending.Restore([]entities.PendingEvent{{ID: "p1"}})

	tr.On("Post", mock.Anything, "/api/admin/events/requests/p1/approve", nil).
		Return(nil, errors.New("gone"))

	require.False(t, u.ApproveRequest(context.Background(), "p1"))
	require.Len(t, u.PendingEvents(), 1)
	require.Empty(t, u.Events())
}

func TestRejectRequestRemovesPendingOnly(t *testing.T) {
	u, tr, rec := newTestUsecase()
	u.pending.Restore([]entities.PendingEvent{{ID: "p1"}, {ID: "p2"}})

	tr.On("Post", mock.Anything, "/api/admin/events/requests/p1/reject", nil).Return(nil, nil)

	require.True(t, u.RejectRequest(context.Background(), "p1"))
	require.Len(t, u.PendingEvents(), 1)
	require.Equal(t, "p2", u.PendingEvents()[0].ID)
	require.Empty(t, u.Events())
	require.Equal(t, []string{"Request rejected"}, rec.successes)
}

func TestRefreshAllReplacesEveryStore(t *testing.T) {
	u, tr, _ := newTestUsecase()
	u.users.Restore([]entities.User{{ID: "stale"}})

	tr.On("Get", mock.Anything, "/api/admin/users").
		Return(raw(t, api.UsersResponse{Users: []api.UserDTO{{ID: "u1"}, {ID: "u2"}}}), nil)
	tr.On("Get", mock.Anything, "/api/admin/teams").
		Return(raw(t, api.TeamsResponse{Teams: []api.TeamDTO{{ID: "t1"}}}), nil)
	tr.On("Get", mock.Anything, "/api/admin/departments").
		Return(raw(t, api.DepartmentsResponse{Departments: []api.DepartmentDTO{{ID: "d1"}}}), nil)
	tr.On("Get", mock.Anything, "/api/admin/events").
		Return(raw(t, api.EventsResponse{Events: []api.EventDTO{{ID: "e1"}}}), nil)
	tr.On("Get", mock.Anything, "/api/admin/events/requests").
		Return(raw(t, api.PendingEventsResponse{Requests: []api.PendingEventDTO{{ID: "p1"}}}), nil)

	require.True(t, u.RefreshAll(context.Background()))
	require.Len(t, u.Users(), 2)
	require.Equal(t, "u1", u.Users()[0].ID)
	require.Len(t, u.Teams(), 1)
	require.Len(t, u.Departments(), 1)
	require.Len(t, u.Events(), 1)
	require.Len(t, u.PendingEvents(), 1)
}

func TestRefreshAllIsAllOrNothing(t *testing.T) {
	u, tr, rec := newTestUsecase()
	before := []entities.User{{ID: "u1"}}
	u.users.Restore(before)
	u.events.Restore([]entities.Event{{ID: "e1"}})

	tr.On("Get", mock.Anything, "/api/admin/users").
		Return(raw(t, api.UsersResponse{Users: []api.UserDTO{{ID: "u1"}, {ID: "u2"}}}), nil)
	tr.On("Get", mock.Anything, "/api/admin/teams").
		Return(nil, errors.New("temporarily unavailable"))
	tr.On("Get", mock.Anything, "/api/admin/departments").
		Return(raw(t, api.DepartmentsResponse{}), nil)
	tr.On("Get", mock.Anything, "/api/admin/events").
		Return(raw(t, api.EventsResponse{}), nil)
	tr.On("Get", mock.Anything, "/api/admin/events/requests").
		Return(raw(t, api.PendingEventsResponse{}), nil)

	require.False(t, u.RefreshAll(context.Background()))

	// one consolidated failure, stores untouched
	require.Len(t, rec.failures, 1)
	require.Contains(t, rec.failures[0], "Could not refresh data")
	require.Equal(t, before, u.Users())
	require.Len(t, u.Events(), 1)
}

func TestDepartmentTeamsDerivation(t *testing.T) {
	u, _, _ := newTestUsecase()
	d1, d2 := "d1", "d2"
	u.teams.Restore([]entities.Team{
		{ID: "t1", DepartmentID: &d1},
		{ID: "t2", DepartmentID: &d2},
		{ID: "t3", DepartmentID: &d1},
		{ID: "t4"},
	})

	got := u.DepartmentTeams("d1")
	require.Len(t, got, 2)
	require.Equal(t, "t1", got[0].ID)
	require.Equal(t, "t3", got[1].ID)
}

func expectRefresh(t *testing.T, tr *transportMock) {
	t.Helper()
	tr.On("Get", mock.Anything, "/api/admin/users").Return(raw(t, api.UsersResponse{}), nil)
	tr.On("Get", mock.Anything, "/api/admin/teams").Return(raw(t, api.TeamsResponse{}), nil)
	tr.On("Get", mock.Anything, "/api/admin/departments").Return(raw(t, api.DepartmentsResponse{}), nil)
	tr.On("Get", mock.Anything, "/api/admin/events").Return(raw(t, api.EventsResponse{}), nil)
	tr.On("Get", mock.Anything, "/api/admin/events/requests").Return(raw(t, api.PendingEventsResponse{}), nil)
}
