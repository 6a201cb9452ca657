package memory

import (
	"context"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"

	"github.com/google/uuid"
)

// ListEvents returns every confirmed event, newest first.
func (m *Memory) ListEvents(_ context.Context) ([]entities.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entities.Event, len(m.events))
	for i, e := range m.events {
		e.Attendees = cloneStrings(e.Attendees)
		out[i] = e
	}
	return out, nil
}

// CreateEvent assigns the id server-side and defaults the color by type.
func (m *Memory) CreateEvent(_ context.Context, event entities.Event) (*entities.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	event.ID = uuid.NewString()
	if event.Type == "" {
		event.Type = entities.EventGeneral
	}
	if event.Color == "" {
		event.Color = colorFor(event.Type)
	}
	event.Attendees = cloneStrings(event.Attendees)

	m.events = append([]entities.Event{event}, m.events...)
	m.log.Infow("event created", "event_id", event.ID, "title", event.Title)
	out := event
	out.Attendees = cloneStrings(event.Attendees)
	return &out, nil
}

// UpdateEvent overwrites editable fields.
func (m *Memory) UpdateEvent(_ context.Context, id string, event entities.Event) (*entities.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.events {
		if e.ID != id {
			continue
		}
		if event.Title != "" {
			e.Title = event.Title
		}
		if event.Description != "" {
			e.Description = event.Description
		}
		if event.Date != "" {
			e.Date = event.Date
		}
		if event.Time != "" {
			e.Time = event.Time
		}
		if event.Duration != 0 {
			e.Duration = event.Duration
		}
		if event.Type != "" {
			e.Type = event.Type
		}
		if event.Attendees != nil {
			e.Attendees = cloneStrings(event.Attendees)
		}
		if event.Location != "" {
			e.Location = event.Location
		}
		if event.Color != "" {
			e.Color = event.Color
		}
		m.events[i] = e
		out := e
		out.Attendees = cloneStrings(e.Attendees)
		return &out, nil
	}
	return nil, entities.ErrEventNotFound
}

// DeleteEvent removes the event.
func (m *Memory) DeleteEvent(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.events {
		if e.ID == id {
			m.events = append(m.events[:i], m.events[i+1:]...)
			m.log.Infow("event deleted", "event_id", id)
			return nil
		}
	}
	return entities.ErrEventNotFound
}

// ListEventRequests returns every pending request, newest first.
func (m *Memory) ListEventRequests(_ context.Context) ([]entities.PendingEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entities.PendingEvent, len(m.requests))
	for i, r := range m.requests {
		r.Attendees = cloneStrings(r.Attendees)
		out[i] = r
	}
	return out, nil
}

// CreateEventRequest stores a request awaiting a decision.
func (m *Memory) CreateEventRequest(_ context.Context, req entities.PendingEvent) (*entities.PendingEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req.ID = uuid.NewString()
	if req.Type == "" {
		req.Type = entities.EventGeneral
	}
	req.Attendees = cloneStrings(req.Attendees)

	m.requests = append([]entities.PendingEvent{req}, m.requests...)
	out := req
	out.Attendees = cloneStrings(req.Attendees)
	return &out, nil
}

// ApproveEventRequest converts a pending request into a confirmed event
// carrying the request's id, and drops the request.
func (m *Memory) ApproveEventRequest(_ context.Context, id string) (*entities.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.requests {
		if r.ID != id {
			continue
		}
		event := entities.Event{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Date:        r.Date,
			Time:        r.Time,
			Duration:    r.Duration,
			Type:        r.Type,
			Attendees:   cloneStrings(r.Attendees),
			Color:       colorFor(r.Type),
		}
		m.events = append([]entities.Event{event}, m.events...)
		m.requests = append(m.requests[:i], m.requests[i+1:]...)
		m.log.Infow("event request approved", "request_id", id)
		out := event
		out.Attendees = cloneStrings(event.Attendees)
		return &out, nil
	}
	return nil, entities.ErrRequestNotFound
}

// RejectEventRequest discards a pending request.
func (m *Memory) RejectEventRequest(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.requests {
		if r.ID == id {
			m.requests = append(m.requests[:i], m.requests[i+1:]...)
			m.log.Infow("event request rejected", "request_id", id)
			return nil
		}
	}
	return entities.ErrRequestNotFound
}

func colorFor(t entities.EventType) string {
	switch t {
	case entities.EventMeeting:
		return "blue"
	case entities.EventReview:
		return "purple"
	case entities.EventPlanning:
		return "green"
	case entities.EventWorkshop:
		return "orange"
	case entities.EventDeadline:
		return "red"
	default:
		return "gray"
	}
}
