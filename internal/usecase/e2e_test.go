package usecase

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
	"github.com/samibentaiba/itc-hub-sub000/internal/notify"
	"github.com/samibentaiba/itc-hub-sub000/internal/repository/memory"
	"github.com/samibentaiba/itc-hub-sub000/internal/transport/http/client"
	"github.com/samibentaiba/itc-hub-sub000/internal/transport/http/server/handlers-fiber"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newEngine stands up the whole loop: seeded memory repository behind the
// fiber handlers, the JSON transport client in front, and the sync engine
// on top.
func newEngine(t *testing.T) InterfaceUsecase {
	t.Helper()
	log := zap.NewNop().Sugar()

	app := fiber.New()
	handlers_fiber.Register(app, handlers_fiber.NewHandler(log, memory.New(log)))

	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)

	transport := client.New(srv.URL, 5*time.Second, log)
	return New(log, transport, notify.NewLog(log))
}

func TestEngineRefreshAndCreateFlow(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)

	require.True(t, eng.RefreshAll(ctx))
	require.Len(t, eng.Users(), 4)
	require.Len(t, eng.Teams(), 3)
	require.Len(t, eng.Departments(), 2)
	require.Len(t, eng.Events(), 2)
	require.Len(t, eng.PendingEvents(), 2)

	require.True(t, eng.CreateUser(ctx, entities.User{Name: "Ervin Ray", Email: "ervin@itc-hub.dev"}))
	users := eng.Users()
	require.Len(t, users, 5)
	require.Equal(t, "Ervin Ray", users[0].Name)
	require.Equal(t, entities.StatusPending, users[0].Status)
	require.NotEmpty(t, users[0].Avatar)
}

func TestEngineDeleteRollbackAgainstRealServer(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)
	require.True(t, eng.RefreshAll(ctx))

	before := eng.Users()

	// the server has no such user, so the optimistic removal must roll back
	require.False(t, eng.DeleteUser(ctx, "u999"))
	require.Equal(t, before, eng.Users())

	require.True(t, eng.DeleteUser(ctx, "u3"))
	require.Len(t, eng.Users(), 3)
}

func TestEngineVerifyDuplicateSurfacesServerMessage(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)
	require.True(t, eng.RefreshAll(ctx))

	require.True(t, eng.VerifyUser(ctx, "u4"))
	got := findUser(t, eng.Users(), "u4")
	require.Equal(t, entities.StatusVerified, got.Status)
	require.Equal(t, "Dario Costa", got.Name)

	// second verify conflicts server-side; local state must not change
	require.False(t, eng.VerifyUser(ctx, "u4"))
	again := findUser(t, eng.Users(), "u4")
	require.Equal(t, entities.StatusVerified, again.Status)
}

func TestEngineMembershipRoundTrip(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)
	require.True(t, eng.RefreshAll(ctx))

	require.True(t, eng.AddMember(ctx, entities.ParentTeam, "t3", "u1", entities.MemberRoleLeader))

	// the refresh after the mutation pulled the new membership in
	team := findTeam(t, eng.Teams(), "t3")
	require.Len(t, team.Members, 1)
	require.Equal(t, "u1", team.Members[0].UserID)
	require.Equal(t, entities.MemberRoleLeader, team.Members[0].Role)

	require.False(t, eng.AddMember(ctx, entities.ParentTeam, "t3", "u1", entities.MemberRoleMember))

	require.True(t, eng.ChangeMemberRole(ctx, entities.ParentTeam, "t3", "u1", entities.MemberRoleMember))
	team = findTeam(t, eng.Teams(), "t3")
	require.Equal(t, entities.MemberRoleMember, team.Members[0].Role)

	require.True(t, eng.RemoveMember(ctx, entities.ParentTeam, "t3", "u1"))
	team = findTeam(t, eng.Teams(), "t3")
	require.Empty(t, team.Members)
}

func TestEngineDepartmentCascadeAgainstRealServer(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)
	require.True(t, eng.RefreshAll(ctx))

	require.True(t, eng.DeleteDepartment(ctx, "d1"))
	require.Len(t, eng.Departments(), 1)

	teams := eng.Teams()
	require.Len(t, teams, 1)
	require.Equal(t, "t3", teams[0].ID)

	// server agrees after a full refresh
	require.True(t, eng.RefreshAll(ctx))
	require.Len(t, eng.Teams(), 1)
}

func TestEngineEventRequestWorkflow(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t)
	require.True(t, eng.RefreshAll(ctx))

	require.True(t, eng.ApproveRequest(ctx, "p1"))
	events := eng.Events()
	require.Len(t, events, 3)
	require.Equal(t, "p1", events[0].ID)
	require.Equal(t, entities.EventWorkshop, events[0].Type)
	require.Equal(t, "orange", events[0].Color)
	require.Len(t, eng.PendingEvents(), 1)

	require.True(t, eng.RejectRequest(ctx, "p2"))
	require.Empty(t, eng.PendingEvents())

	// approving the same request again fails and changes nothing
	require.False(t, eng.ApproveRequest(ctx, "p1"))
	require.Len(t, eng.Events(), 3)
}

func findUser(t *testing.T, users []entities.User, id string) entities.User {
	t.Helper()
	for _, u := range users {
		if u.ID == id {
			return u
		}
	}
	t.Fatalf("user %s not found", id)
	return entities.User{}
}

func findTeam(t *testing.T, teams []entities.Team, id string) entities.Team {
	t.Helper()
	for _, tm := range teams {
		if tm.ID == id {
			return tm
		}
	}
	t.Fatalf("team %s not found", id)
	return entities.Team{}
}
