package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/store"
)

// codec binds one entity type to its paths, response decoding and
// reconciliation merge. The four synchronizer instances share the
// algorithms below and differ only in their codec.
type codec[T store.Identifiable] struct {
	name   string // display name, e.g. "user"
	entity string // path segment, e.g. "users"
	decode func(json.RawMessage) (T, error)
	merge  func(prev, next T) T
}

// decodeAs adapts a DTO normalizer into a raw-JSON decoder.
func decodeAs[D any, T any](from func(D) T) func(json.RawMessage) (T, error) {
	return func(raw json.RawMessage) (T, error) {
		var zero T
		if raw == nil {
			return zero, fmt.Errorf("empty response body")
		}
		var dto D
		if err := json.Unmarshal(raw, &dto); err != nil {
			return zero, fmt.Errorf("decode response: %w", err)
		}
		return from(dto), nil
	}
}

// createOne POSTs the payload and, on success, reconciles the returned
// canonical object into the store, prepending it when new. Nothing is
// written optimistically: a failure leaves the store untouched.
func createOne[T store.Identifiable](ctx context.Context, u *Usecase, s *store.Store[T], c codec[T], payload any) bool {
	token := "add-" + c.name
	u.tokens.begin(token)
	defer u.tokens.end(token)

	raw, err := u.api.Post(ctx, api.CollectionPath(c.entity), payload)
	if err != nil {
		return u.failed("Could not save "+c.name, err)
	}
	item, err := c.decode(raw)
	if err != nil {
		return u.failed("Could not save "+c.name, err)
	}

	unlock := u.locks.lock(c.entity + ":" + item.EntityID())
	defer unlock()
	if !s.Reconcile(item.EntityID(), item, c.merge) {
		s.Prepend(item)
	}
	u.notify.Success(titleCase(c.name)+" created", "The "+c.name+" has been saved.")
	return true
}

// updateOne PUTs the payload and reconciles the server object over the
// stored one. Updating an item that is no longer present is a no-op, not
// an error.
func updateOne[T store.Identifiable](ctx context.Context, u *Usecase, s *store.Store[T], c codec[T], id string, payload any) bool {
	token := "edit-" + c.name + "-" + id
	u.tokens.begin(token)
	defer u.tokens.end(token)

	unlock := u.locks.lock(c.entity + ":" + id)
	defer unlock()

	raw, err := u.api.Put(ctx, api.ItemPath(c.entity, id), payload)
	if err != nil {
		return u.failed("Could not save "+c.name, err)
	}
	item, err := c.decode(raw)
	if err != nil {
		return u.failed("Could not save "+c.name, err)
	}

	s.Reconcile(id, item, c.merge)
	u.notify.Success(titleCase(c.name)+" updated", "Your changes have been saved.")
	return true
}

// deleteOne removes the item optimistically, then confirms with the
// server. On failure the pre-mutation snapshot is restored verbatim,
// order included.
func deleteOne[T store.Identifiable](ctx context.Context, u *Usecase, s *store.Store[T], c codec[T], id string) bool {
	token := "delete-" + c.name + "-" + id
	u.tokens.begin(token)
	defer u.tokens.end(token)

	unlock := u.locks.lock(c.entity + ":" + id)
	defer unlock()

	snapshot := s.Snapshot()
	s.Remove(id)

	if _, err := u.api.Delete(ctx, api.ItemPath(c.entity, id)); err != nil {
		s.Restore(snapshot)
		return u.failed("Could not delete "+c.name, err)
	}
	u.notify.Success(titleCase(c.name)+" deleted", "The "+c.name+" has been removed.")
	return true
}
