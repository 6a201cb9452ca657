package handlers_fiber

import (
	"net/http"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// AddTeamMember adds a user to a team.
func (h *Handler) AddTeamMember(c *fiber.Ctx) error {
	return h.addMember(c, entities.ParentTeam)
}

// RemoveTeamMember removes a user from a team.
func (h *Handler) RemoveTeamMember(c *fiber.Ctx) error {
	return h.removeMember(c, entities.ParentTeam)
}

// UpdateTeamMemberRole changes a member's role within a team.
func (h *Handler) UpdateTeamMemberRole(c *fiber.Ctx) error {
	return h.updateMemberRole(c, entities.ParentTeam)
}

// AddDepartmentMember adds a user to a department.
func (h *Handler) AddDepartmentMember(c *fiber.Ctx) error {
	return h.addMember(c, entities.ParentDepartment)
}

// RemoveDepartmentMember removes a user from a department.
func (h *Handler) RemoveDepartmentMember(c *fiber.Ctx) error {
	return h.removeMember(c, entities.ParentDepartment)
}

// UpdateDepartmentMemberRole changes a member's role within a department.
func (h *Handler) UpdateDepartmentMemberRole(c *fiber.Ctx) error {
	return h.updateMemberRole(c, entities.ParentDepartment)
}

func (h *Handler) addMember(c *fiber.Ctx, parent entities.MemberParent) error {
	var body api.AddMemberRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return writeBadRequest(c, "invalid body")
	}
	if body.UserID == "" {
		return writeBadRequest(c, "userId is required")
	}

	member, err := h.repo.AddMember(c.Context(), parent, c.Params("id"), body.UserID, mapper.RoleFromWire(body.Role))
	if err != nil {
		h.log.Errorw("failed to add member", "parent", string(parent), "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIMember(*member))
}

func (h *Handler) removeMember(c *fiber.Ctx, parent entities.MemberParent) error {
	err := h.repo.RemoveMember(c.Context(), parent, c.Params("id"), c.Params("userId"))
	if err != nil {
		h.log.Errorw("failed to remove member", "parent", string(parent), "error", err.Error())
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *Handler) updateMemberRole(c *fiber.Ctx, parent entities.MemberParent) error {
	var body api.MemberRoleRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return writeBadRequest(c, "invalid body")
	}

	member, err := h.repo.UpdateMemberRole(c.Context(), parent, c.Params("id"), c.Params("userId"), mapper.RoleFromWire(body.Role))
	if err != nil {
		h.log.Errorw("failed to update member role", "parent", string(parent), "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIMember(*member))
}
