package handlers_fiber

import (
	"net/http"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListEvents returns every confirmed event, newest first.
func (h *Handler) ListEvents(c *fiber.Ctx) error {
	events, err := h.repo.ListEvents(c.Context())
	if err != nil {
		h.log.Errorw("failed to list events", "error", err.Error())
		return writeError(c, err)
	}

	resp := api.EventsResponse{Events: make([]api.EventDTO, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, mapper.ToAPIEvent(e))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// CreateEvent puts a confirmed event straight on the calendar.
func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	var body api.EventDTO
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return writeBadRequest(c, "invalid body")
	}

	event, err := h.repo.CreateEvent(c.Context(), mapper.FromAPIEvent(body))
	if err != nil {
		h.log.Errorw("failed to create event", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIEvent(*event))
}

// UpdateEvent overwrites editable fields; blanks keep prior values.
func (h *Handler) UpdateEvent(c *fiber.Ctx) error {
	var body api.EventDTO
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return writeBadRequest(c, "invalid body")
	}

	event, err := h.repo.UpdateEvent(c.Context(), c.Params("id"), mapper.FromAPIEvent(body))
	if err != nil {
		h.log.Errorw("failed to update event", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIEvent(*event))
}

// DeleteEvent removes an event from the calendar.
func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	if err := h.repo.DeleteEvent(c.Context(), c.Params("id")); err != nil {
		h.log.Errorw("failed to delete event", "error", err.Error())
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListEventRequests returns every pending event request.
func (h *Handler) ListEventRequests(c *fiber.Ctx) error {
	requests, err := h.repo.ListEventRequests(c.Context())
	if err != nil {
		h.log.Errorw("failed to list event requests", "error", err.Error())
		return writeError(c, err)
	}

	resp := api.PendingEventsResponse{Requests: make([]api.PendingEventDTO, 0, len(requests))}
	for _, r := range requests {
		resp.Requests = append(resp.Requests, mapper.ToAPIPendingEvent(r))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// CreateEventRequest files a request awaiting a decision.
func (h *Handler) CreateEventRequest(c *fiber.Ctx) error {
	var body api.PendingEventDTO
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return writeBadRequest(c, "invalid body")
	}

	req, err := h.repo.CreateEventRequest(c.Context(), mapper.FromAPIPendingEvent(body))
	if err != nil {
		h.log.Errorw("failed to create event request", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIPendingEvent(*req))
}

// ApproveEventRequest promotes a pending request to a confirmed event.
func (h *Handler) ApproveEventRequest(c *fiber.Ctx) error {
	event, err := h.repo.ApproveEventRequest(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to approve event request", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIEvent(*event))
}

// RejectEventRequest discards a pending request.
func (h *Handler) RejectEventRequest(c *fiber.Ctx) error {
	if err := h.repo.RejectEventRequest(c.Context(), c.Params("id")); err != nil {
		h.log.Errorw("failed to reject event request", "error", err.Error())
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
