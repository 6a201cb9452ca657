// Package domain contains synchronizer operations by user.
package domain

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"
)

var userCodec = codec[entities.User]{
	name:   "user",
	entity: api.EntityUsers,
	decode: decodeAs(mapper.FromAPIUser),
	merge:  mapper.MergeUser,
}

// Users returns the current user collection, most recent first.
func (u *Usecase) Users() []entities.User {
	return u.users.List()
}

// CreateUser sends a new user to the server and inserts the returned
// canonical object as the first item.
func (u *Usecase) CreateUser(ctx context.Context, draft entities.User) bool {
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Email) == "" {
		return u.invalid("Could not save user", "name and email are required")
	}
	return createOne(ctx, u, u.users, userCodec, mapper.ToAPIUser(draft))
}

// UpdateUser saves changes to an existing user.
func (u *Usecase) UpdateUser(ctx context.Context, id string, draft entities.User) bool {
	if id == "" {
		return u.invalid("Could not save user", "user id is required")
	}
	return updateOne(ctx, u, u.users, userCodec, id, mapper.ToAPIUser(draft))
}

// DeleteUser removes the user optimistically and rolls back on failure.
func (u *Usecase) DeleteUser(ctx context.Context, id string) bool {
	if id == "" {
		return u.invalid("Could not delete user", "user id is required")
	}
	return deleteOne(ctx, u, u.users, userCodec, id)
}

// VerifyUser calls the dedicated verify endpoint and merges only the
// verification fields into the stored user. Every other field keeps its
// prior value even when the server returns a partial object.
func (u *Usecase) VerifyUser(ctx context.Context, id string) bool {
	if id == "" {
		return u.invalid("Could not verify user", "user id is required")
	}

	token := "verify-user-" + id
	u.tokens.begin(token)
	defer u.tokens.end(token)

	unlock := u.locks.lock(api.EntityUsers + ":" + id)
	defer unlock()

	raw, err := u.api.Post(ctx, api.VerifyUserPath(id), nil)
	if err != nil {
		return u.failed("Could not verify user", err)
	}

	var dto api.UserDTO
	if raw != nil {
		if err := json.Unmarshal(raw, &dto); err != nil {
			return u.failed("Could not verify user", err)
		}
	}

	if prev, ok := u.users.Get(id); ok {
		next := prev
		// Status only ever moves pending -> verified.
		if strings.EqualFold(dto.Status, string(entities.StatusVerified)) || dto.Status == "" {
			next.Status = entities.StatusVerified
		}
		if t, perr := time.Parse(time.RFC3339, dto.VerifiedAt); perr == nil {
			next.VerifiedAt = &t
		}
		u.users.Replace(id, next)
	}

	u.notify.Success("User verified", "The account is now verified.")
	return true
}
