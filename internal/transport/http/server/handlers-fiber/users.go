package handlers_fiber

import (
	"net/http"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListUsers returns every user, newest first.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.repo.ListUsers(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}

	resp := api.UsersResponse{Users: make([]api.UserDTO, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, mapper.ToAPIUser(u))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// CreateUser registers a new user in pending status.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var body api.UserDTO
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return writeBadRequest(c, "invalid body")
	}

	usr, err := h.repo.CreateUser(c.Context(), mapper.FromAPIUser(body))
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIUser(*usr))
}

// UpdateUser overwrites editable fields; blanks keep prior values.
func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	var body api.UserDTO
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return writeBadRequest(c, "invalid body")
	}

	usr, err := h.repo.UpdateUser(c.Context(), c.Params("id"), mapper.FromAPIUser(body))
	if err != nil {
		h.log.Errorw("failed to update user", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*usr))
}

// DeleteUser removes a user and their memberships.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	if err := h.repo.DeleteUser(c.Context(), c.Params("id")); err != nil {
		h.log.Errorw("failed to delete user", "error", err.Error())
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// VerifyUser marks a pending user verified.
func (h *Handler) VerifyUser(c *fiber.Ctx) error {
	usr, err := h.repo.VerifyUser(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to verify user", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*usr))
}
