// Package domain contains synchronizer operations by team.
package domain

import (
	"context"
	"strings"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"
)

var teamCodec = codec[entities.Team]{
	name:   "team",
	entity: api.EntityTeams,
	decode: decodeAs(mapper.FromAPITeam),
	merge:  mapper.MergeTeam,
}

// Teams returns the current team collection, most recent first.
func (u *Usecase) Teams() []entities.Team {
	return u.teams.List()
}

// CreateTeam sends a new team to the server and inserts the returned
// canonical object as the first item.
func (u *Usecase) CreateTeam(ctx context.Context, draft entities.Team) bool {
	if strings.TrimSpace(draft.Name) == "" {
		return u.invalid("Could not save team", "team name is required")
	}
	return createOne(ctx, u, u.teams, teamCodec, mapper.ToAPITeam(draft))
}

// UpdateTeam saves changes to an existing team.
func (u *Usecase) UpdateTeam(ctx context.Context, id string, draft entities.Team) bool {
	if id == "" {
		return u.invalid("Could not save team", "team id is required")
	}
	return updateOne(ctx, u, u.teams, teamCodec, id, mapper.ToAPITeam(draft))
}

// DeleteTeam removes the team optimistically and rolls back on failure.
func (u *Usecase) DeleteTeam(ctx context.Context, id string) bool {
	if id == "" {
		return u.invalid("Could not delete team", "team id is required")
	}
	return deleteOne(ctx, u, u.teams, teamCodec, id)
}
