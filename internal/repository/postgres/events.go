package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	listEventsQuery = `
SELECT id, title, description, event_date, event_time, duration_minutes, type, location, color
FROM events
ORDER BY created_at DESC`
	selectEventQuery = `
SELECT id, title, description, event_date, event_time, duration_minutes, type, location, color
FROM events WHERE id = $1`
	insertEventQuery = `
INSERT INTO events(id, title, description, event_date, event_time, duration_minutes, type, location, color)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	updateEventQuery = `
UPDATE events
SET title = COALESCE(NULLIF($2, ''), title),
    description = COALESCE(NULLIF($3, ''), description),
    event_date = COALESCE(NULLIF($4, ''), event_date),
    event_time = COALESCE(NULLIF($5, ''), event_time),
    duration_minutes = CASE WHEN $6 = 0 THEN duration_minutes ELSE $6 END,
    type = COALESCE(NULLIF($7, ''), type),
    location = COALESCE(NULLIF($8, ''), location),
    color = COALESCE(NULLIF($9, ''), color)
WHERE id = $1
RETURNING id, title, description, event_date, event_time, duration_minutes, type, location, color`
	deleteEventQuery       = `DELETE FROM events WHERE id = $1`
	insertAttendeeQuery    = `INSERT INTO event_attendees(event_id, name) VALUES ($1, $2)`
	deleteAttendeesQuery   = `DELETE FROM event_attendees WHERE event_id = $1`
	selectAttendeesQuery   = `SELECT event_id, name FROM event_attendees ORDER BY position`
	selectOneAttendees     = `SELECT name FROM event_attendees WHERE event_id = $1 ORDER BY position`

	listRequestsQuery = `
SELECT id, title, description, event_date, event_time, duration_minutes, type, requested_by
FROM event_requests
ORDER BY created_at DESC`
	selectRequestQuery = `
SELECT id, title, description, event_date, event_time, duration_minutes, type, requested_by
FROM event_requests WHERE id = $1`
	insertRequestQuery = `
INSERT INTO event_requests(id, title, description, event_date, event_time, duration_minutes, type, requested_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	deleteRequestQuery        = `DELETE FROM event_requests WHERE id = $1`
	insertRequestAttendee     = `INSERT INTO event_request_attendees(request_id, name) VALUES ($1, $2)`
	selectRequestAttendees    = `SELECT request_id, name FROM event_request_attendees ORDER BY position`
	selectOneRequestAttendees = `SELECT name FROM event_request_attendees WHERE request_id = $1 ORDER BY position`
)

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var e entities.Event
	var typ string
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Duration, &typ, &e.Location, &e.Color); err != nil {
		return nil, err
	}
	e.Type = entities.EventType(typ)
	return &e, nil
}

// ListEvents returns every confirmed event with attendees, newest first.
func (p *Postgres) ListEvents(ctx context.Context) ([]entities.Event, error) {
	rows, err := p.db.Query(ctx, listEventsQuery)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]entities.Event, 0)
	index := make(map[string]int)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		index[e.ID] = len(events)
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	attendeeRows, err := p.db.Query(ctx, selectAttendeesQuery)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer attendeeRows.Close()
	for attendeeRows.Next() {
		var eventID, name string
		if err := attendeeRows.Scan(&eventID, &name); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		if i, ok := index[eventID]; ok {
			events[i].Attendees = append(events[i].Attendees, name)
		}
	}
	if err := attendeeRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendees: %w", err)
	}
	return events, nil
}

// CreateEvent inserts an event and its attendees in one transaction.
func (p *Postgres) CreateEvent(ctx context.Context, event entities.Event) (*entities.Event, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := uuid.NewString()
	typ := event.Type
	if typ == "" {
		typ = entities.EventGeneral
	}
	color := event.Color
	if color == "" {
		color = colorFor(typ)
	}
	if _, err := tx.Exec(ctx, insertEventQuery, id, event.Title, event.Description, event.Date, event.Time, event.Duration, string(typ), event.Location, color); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	for _, name := range event.Attendees {
		if _, err := tx.Exec(ctx, insertAttendeeQuery, id, name); err != nil {
			return nil, fmt.Errorf("insert attendee: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("event created", "event_id", id, "title", event.Title)
	return p.getEvent(ctx, id)
}

// UpdateEvent overwrites editable fields and replaces attendees when a
// new list is supplied.
func (p *Postgres) UpdateEvent(ctx context.Context, id string, event entities.Event) (*entities.Event, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	e, err := scanEvent(tx.QueryRow(ctx, updateEventQuery, id, event.Title, event.Description, event.Date, event.Time, event.Duration, string(event.Type), event.Location, event.Color))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrEventNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}

	if event.Attendees != nil {
		if _, err := tx.Exec(ctx, deleteAttendeesQuery, id); err != nil {
			return nil, fmt.Errorf("clear attendees: %w", err)
		}
		for _, name := range event.Attendees {
			if _, err := tx.Exec(ctx, insertAttendeeQuery, id, name); err != nil {
				return nil, fmt.Errorf("insert attendee: %w", err)
			}
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	attendees, err := p.eventAttendees(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Attendees = attendees
	return e, nil
}

// DeleteEvent removes the event; attendees go with it via FK cascade.
func (p *Postgres) DeleteEvent(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteEventQuery, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrEventNotFound
	}
	p.log.Infow("event deleted", "event_id", id)
	return nil
}

// ListEventRequests returns every pending request, newest first.
func (p *Postgres) ListEventRequests(ctx context.Context) ([]entities.PendingEvent, error) {
	rows, err := p.db.Query(ctx, listRequestsQuery)
	if err != nil {
		return nil, fmt.Errorf("list event requests: %w", err)
	}
	defer rows.Close()

	requests := make([]entities.PendingEvent, 0)
	index := make(map[string]int)
	for rows.Next() {
		var r entities.PendingEvent
		var typ string
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.Date, &r.Time, &r.Duration, &typ, &r.RequestedBy); err != nil {
			return nil, fmt.Errorf("scan event request: %w", err)
		}
		r.Type = entities.EventType(typ)
		index[r.ID] = len(requests)
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event requests: %w", err)
	}

	attendeeRows, err := p.db.Query(ctx, selectRequestAttendees)
	if err != nil {
		return nil, fmt.Errorf("list request attendees: %w", err)
	}
	defer attendeeRows.Close()
	for attendeeRows.Next() {
		var requestID, name string
		if err := attendeeRows.Scan(&requestID, &name); err != nil {
			return nil, fmt.Errorf("scan request attendee: %w", err)
		}
		if i, ok := index[requestID]; ok {
			requests[i].Attendees = append(requests[i].Attendees, name)
		}
	}
	if err := attendeeRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate request attendees: %w", err)
	}
	return requests, nil
}

// CreateEventRequest stores a request awaiting a decision.
func (p *Postgres) CreateEventRequest(ctx context.Context, req entities.PendingEvent) (*entities.PendingEvent, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := uuid.NewString()
	typ := req.Type
	if typ == "" {
		typ = entities.EventGeneral
	}
	if _, err := tx.Exec(ctx, insertRequestQuery, id, req.Title, req.Description, req.Date, req.Time, req.Duration, string(typ), req.RequestedBy); err != nil {
		return nil, fmt.Errorf("insert event request: %w", err)
	}
	for _, name := range req.Attendees {
		if _, err := tx.Exec(ctx, insertRequestAttendee, id, name); err != nil {
			return nil, fmt.Errorf("insert request attendee: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	out := req
	out.ID = id
	out.Type = typ
	return &out, nil
}

// ApproveEventRequest converts a pending request into an event carrying
// the request's id, and drops the request, in one transaction.
func (p *Postgres) ApproveEventRequest(ctx context.Context, id string) (*entities.Event, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var r entities.PendingEvent
	var typ string
	err = tx.QueryRow(ctx, selectRequestQuery, id).Scan(&r.ID, &r.Title, &r.Description, &r.Date, &r.Time, &r.Duration, &typ, &r.RequestedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRequestNotFound
		}
		return nil, fmt.Errorf("get event request: %w", err)
	}

	attendeeRows, err := tx.Query(ctx, selectOneRequestAttendees, id)
	if err != nil {
		return nil, fmt.Errorf("get request attendees: %w", err)
	}
	attendees := make([]string, 0)
	for attendeeRows.Next() {
		var name string
		if err := attendeeRows.Scan(&name); err != nil {
			attendeeRows.Close()
			return nil, fmt.Errorf("scan request attendee: %w", err)
		}
		attendees = append(attendees, name)
	}
	attendeeRows.Close()
	if err := attendeeRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate request attendees: %w", err)
	}

	eventType := entities.EventType(typ)
	if _, err := tx.Exec(ctx, insertEventQuery, r.ID, r.Title, r.Description, r.Date, r.Time, r.Duration, typ, "", colorFor(eventType)); err != nil {
		return nil, fmt.Errorf("insert approved event: %w", err)
	}
	for _, name := range attendees {
		if _, err := tx.Exec(ctx, insertAttendeeQuery, r.ID, name); err != nil {
			return nil, fmt.Errorf("insert attendee: %w", err)
		}
	}
	if _, err := tx.Exec(ctx, deleteRequestQuery, id); err != nil {
		return nil, fmt.Errorf("delete event request: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("event request approved", "request_id", id)
	return p.getEvent(ctx, r.ID)
}

// RejectEventRequest discards a pending request.
func (p *Postgres) RejectEventRequest(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, deleteRequestQuery, id)
	if err != nil {
		return fmt.Errorf("reject event request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrRequestNotFound
	}
	p.log.Infow("event request rejected", "request_id", id)
	return nil
}

func (p *Postgres) getEvent(ctx context.Context, id string) (*entities.Event, error) {
	e, err := scanEvent(p.db.QueryRow(ctx, selectEventQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	attendees, err := p.eventAttendees(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Attendees = attendees
	return e, nil
}

func (p *Postgres) eventAttendees(ctx context.Context, id string) ([]string, error) {
	rows, err := p.db.Query(ctx, selectOneAttendees, id)
	if err != nil {
		return nil, fmt.Errorf("get attendees: %w", err)
	}
	defer rows.Close()

	attendees := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		attendees = append(attendees, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendees: %w", err)
	}
	return attendees, nil
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
