package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrDepartmentNotFound),
		errors.Is(err, entities.ErrEventNotFound),
		errors.Is(err, entities.ErrRequestNotFound),
		errors.Is(err, entities.ErrMemberNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entities.ErrEmailExists),
		errors.Is(err, entities.ErrMemberExists),
		errors.Is(err, entities.ErrAlreadyVerified):
		status = http.StatusConflict
	default:
		msg = "internal error"
	}

	return c.Status(status).JSON(api.ErrorResponse{Error: msg})
}

func writeBadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: msg})
}
