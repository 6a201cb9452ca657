// Package domain contains synchronizer operations by calendar event,
// including the pending-request approval workflow.
package domain

import (
	"context"
	"strings"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"
)

var eventCodec = codec[entities.Event]{
	name:   "event",
	entity: api.EntityEvents,
	decode: decodeAs(mapper.FromAPIEvent),
	merge:  mapper.MergeEvent,
}

// Events returns the current event collection, most recent first.
func (u *Usecase) Events() []entities.Event {
	return u.events.List()
}

// PendingEvents returns the event requests awaiting a decision.
func (u *Usecase) PendingEvents() []entities.PendingEvent {
	return u.pending.List()
}

// CreateEvent sends a new event to the server and inserts the returned
// canonical object as the first item. Like every create, nothing is
// written before the server confirms.
func (u *Usecase) CreateEvent(ctx context.Context, draft entities.Event) bool {
	if strings.TrimSpace(draft.Title) == "" || draft.Date == "" {
		return u.invalid("Could not save event", "title and date are required")
	}
	return createOne(ctx, u, u.events, eventCodec, mapper.ToAPIEvent(draft))
}

// UpdateEvent saves changes to an existing event.
func (u *Usecase) UpdateEvent(ctx context.Context, id string, draft entities.Event) bool {
	if id == "" {
		return u.invalid("Could not save event", "event id is required")
	}
	return updateOne(ctx, u, u.events, eventCodec, id, mapper.ToAPIEvent(draft))
}

// DeleteEvent removes the event optimistically and rolls back on failure.
func (u *Usecase) DeleteEvent(ctx context.Context, id string) bool {
	if id == "" {
		return u.invalid("Could not delete event", "event id is required")
	}
	return deleteOne(ctx, u, u.events, eventCodec, id)
}

// ApproveRequest turns a pending event into a confirmed one. On success
// the normalized server event joins the event collection and the request
// leaves the pending collection. On failure the request simply stays
// pending; there is nothing to roll back.
func (u *Usecase) ApproveRequest(ctx context.Context, id string) bool {
	if id == "" {
		return u.invalid("Could not approve request", "request id is required")
	}

	token := "accept-" + id
	u.tokens.begin(token)
	defer u.tokens.end(token)

	raw, err := u.api.Post(ctx, api.ApproveRequestPath(id), nil)
	if err != nil {
		return u.failed("Could not approve request", err)
	}
	event, err := eventCodec.decode(raw)
	if err != nil {
		return u.failed("Could not approve request", err)
	}

	unlock := u.locks.lock(api.EntityEvents + ":" + event.ID)
	defer unlock()
	if !u.events.Reconcile(event.ID, event, eventCodec.merge) {
		u.events.Prepend(event)
	}
	u.pending.Remove(id)

	u.notify.Success("Request approved", event.Title+" is now on the calendar.")
	return true
}

// RejectRequest discards a pending event. The server answers with no
// content; the request is removed with no corresponding event.
func (u *Usecase) RejectRequest(ctx context.Context, id string) bool {
	if id == "" {
		return u.invalid("Could not reject request", "request id is required")
	}

	token := "reject-" + id
	u.tokens.begin(token)
	defer u.tokens.end(token)

	if _, err := u.api.Post(ctx, api.RejectRequestPath(id), nil); err != nil {
		return u.failed("Could not reject request", err)
	}
	u.pending.Remove(id)

	u.notify.Success("Request rejected", "The request has been discarded.")
	return true
}
