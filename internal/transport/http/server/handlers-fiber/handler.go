// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the admin REST endpoints on top of a repository.
type Handler struct {
	log  *zap.SugaredLogger
	repo repository.Repository
}

// NewHandler constructs an HTTP server with storage dependencies.
func NewHandler(log *zap.SugaredLogger, repo repository.Repository) *Handler {
	return &Handler{
		log:  log,
		repo: repo,
	}
}

// Register mounts all admin routes on the app. The event request routes
// go in before /events/:id so fiber does not swallow "requests" as an id.
func Register(app *fiber.App, h *Handler) {
	admin := app.Group(api.BasePath)

	admin.Get("/users", h.ListUsers)
	admin.Post("/users", h.CreateUser)
	admin.Put("/users/:id", h.UpdateUser)
	admin.Delete("/users/:id", h.DeleteUser)
	admin.Post("/users/:id/verify", h.VerifyUser)

	admin.Get("/teams", h.ListTeams)
	admin.Post("/teams", h.CreateTeam)
	admin.Put("/teams/:id", h.UpdateTeam)
	admin.Delete("/teams/:id", h.DeleteTeam)
	admin.Post("/teams/:id/members", h.AddTeamMember)
	admin.Delete("/teams/:id/members/:userId", h.RemoveTeamMember)
	admin.Put("/teams/:id/members/:userId", h.UpdateTeamMemberRole)

	admin.Get("/departments", h.ListDepartments)
	admin.Post("/departments", h.CreateDepartment)
	admin.Put("/departments/:id", h.UpdateDepartment)
	admin.Delete("/departments/:id", h.DeleteDepartment)
	admin.Post("/departments/:id/members", h.AddDepartmentMember)
	admin.Delete("/departments/:id/members/:userId", h.RemoveDepartmentMember)
	admin.Put("/departments/:id/members/:userId", h.UpdateDepartmentMemberRole)

	admin.Get("/events/requests", h.ListEventRequests)
	admin.Post("/events/requests", h.CreateEventRequest)
	admin.Post("/events/requests/:id/approve", h.ApproveEventRequest)
	admin.Post("/events/requests/:id/reject", h.RejectEventRequest)

	admin.Get("/events", h.ListEvents)
	admin.Post("/events", h.CreateEvent)
	admin.Put("/events/:id", h.UpdateEvent)
	admin.Delete("/events/:id", h.DeleteEvent)
}
