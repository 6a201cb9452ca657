package handlers_fiber

import (
	"net/http"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListDepartments returns every department, newest first.
func (h *Handler) ListDepartments(c *fiber.Ctx) error {
	deps, err := h.repo.ListDepartments(c.Context())
	if err != nil {
		h.log.Errorw("failed to list departments", "error", err.Error())
		return writeError(c, err)
	}

	resp := api.DepartmentsResponse{Departments: make([]api.DepartmentDTO, 0, len(deps))}
	for _, d := range deps {
		resp.Departments = append(resp.Departments, mapper.ToAPIDepartment(d))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// CreateDepartment creates a department.
func (h *Handler) CreateDepartment(c *fiber.Ctx) error {
	var body api.DepartmentDTO
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return writeBadRequest(c, "invalid body")
	}

	dep, err := h.repo.CreateDepartment(c.Context(), mapper.FromAPIDepartment(body))
	if err != nil {
		h.log.Errorw("failed to create department", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIDepartment(*dep))
}

// UpdateDepartment overwrites editable fields; blanks keep prior values.
func (h *Handler) UpdateDepartment(c *fiber.Ctx) error {
	var body api.DepartmentDTO
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return writeBadRequest(c, "invalid body")
	}

	dep, err := h.repo.UpdateDepartment(c.Context(), c.Params("id"), mapper.FromAPIDepartment(body))
	if err != nil {
		h.log.Errorw("failed to update department", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIDepartment(*dep))
}

// DeleteDepartment removes a department and every team inside it.
func (h *Handler) DeleteDepartment(c *fiber.Ctx) error {
	if err := h.repo.DeleteDepartment(c.Context(), c.Params("id")); err != nil {
		h.log.Errorw("failed to delete department", "error", err.Error())
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
