package handlers_fiber

import (
	"net/http"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListTeams returns every team, newest first.
func (h *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := h.repo.ListTeams(c.Context())
	if err != nil {
		h.log.Errorw("failed to list teams", "error", err.Error())
		return writeError(c, err)
	}

	resp := api.TeamsResponse{Teams: make([]api.TeamDTO, 0, len(teams))}
	for _, t := range teams {
		resp.Teams = append(resp.Teams, mapper.ToAPITeam(t))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// CreateTeam creates a team, optionally inside a department.
func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	var body api.TeamDTO
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return writeBadRequest(c, "invalid body")
	}

	team, err := h.repo.CreateTeam(c.Context(), mapper.FromAPITeam(body))
	if err != nil {
		h.log.Errorw("failed to create team", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPITeam(*team))
}

// UpdateTeam overwrites editable fields; blanks keep prior values.
func (h *Handler) UpdateTeam(c *fiber.Ctx) error {
	var body api.TeamDTO
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return writeBadRequest(c, "invalid body")
	}

	team, err := h.repo.UpdateTeam(c.Context(), c.Params("id"), mapper.FromAPITeam(body))
	if err != nil {
		h.log.Errorw("failed to update team", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// DeleteTeam removes a single team.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	if err := h.repo.DeleteTeam(c.Context(), c.Params("id")); err != nil {
		h.log.Errorw("failed to delete team", "error", err.Error())
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
