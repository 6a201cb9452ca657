// Package domain contains the cross-store refresh path.
package domain

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/samibentaiba/itc-hub-sub000/internal/api"
	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
	"github.com/samibentaiba/itc-hub-sub000/internal/mapper"
)

// RefreshAll re-fetches every collection concurrently and replaces the
// stores wholesale. The swap is all-or-nothing: if any of the five calls
// fails, one consolidated failure notification fires and every store
// keeps its pre-refresh contents.
func (u *Usecase) RefreshAll(ctx context.Context) bool {
	u.refreshMu.Lock()
	defer u.refreshMu.Unlock()

	var (
		users       []entities.User
		teams       []entities.Team
		departments []entities.Department
		events      []entities.Event
		pending     []entities.PendingEvent
	)

	fetches := []struct {
		path   string
		decode func(json.RawMessage) error
	}{
		{api.CollectionPath(api.EntityUsers), func(raw json.RawMessage) error {
			var resp api.UsersResponse
			if err := unmarshalList(raw, &resp); err != nil {
				return err
			}
			users = make([]entities.User, 0, len(resp.Users))
			for _, dto := range resp.Users {
				users = append(users, mapper.FromAPIUser(dto))
			}
			return nil
		}},
		{api.CollectionPath(api.EntityTeams), func(raw json.RawMessage) error {
			var resp api.TeamsResponse
			if err := unmarshalList(raw, &resp); err != nil {
				return err
			}
			teams = make([]entities.Team, 0, len(resp.Teams))
			for _, dto := range resp.Teams {
				teams = append(teams, mapper.FromAPITeam(dto))
			}
			return nil
		}},
		{api.CollectionPath(api.EntityDepartments), func(raw json.RawMessage) error {
			var resp api.DepartmentsResponse
			if err := unmarshalList(raw, &resp); err != nil {
				return err
			}
			departments = make([]entities.Department, 0, len(resp.Departments))
			for _, dto := range resp.Departments {
				departments = append(departments, mapper.FromAPIDepartment(dto))
			}
			return nil
		}},
		{api.CollectionPath(api.EntityEvents), func(raw json.RawMessage) error {
			var resp api.EventsResponse
			if err := unmarshalList(raw, &resp); err != nil {
				return err
			}
			events = make([]entities.Event, 0, len(resp.Events))
			for _, dto := range resp.Events {
				events = append(events, mapper.FromAPIEvent(dto))
			}
			return nil
		}},
		{api.RequestsPath(), func(raw json.RawMessage) error {
			var resp api.PendingEventsResponse
			if err := unmarshalList(raw, &resp); err != nil {
				return err
			}
			pending = make([]entities.PendingEvent, 0, len(resp.Requests))
			for _, dto := range resp.Requests {
				pending = append(pending, mapper.FromAPIPendingEvent(dto))
			}
			return nil
		}},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(fetches))
	for i, f := range fetches {
		wg.Add(1)
		go func(i int, path string, decode func(json.RawMessage) error) {
			defer wg.Done()
			raw, err := u.api.Get(ctx, path)
			if err != nil {
				errs[i] = err
				return
			}
			errs[i] = decode(raw)
		}(i, f.path, f.decode)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return u.failed("Could not refresh data", err)
		}
	}

	u.users.Restore(users)
	u.teams.Restore(teams)
	u.departments.Restore(departments)
	u.events.Restore(events)
	u.pending.Restore(pending)

	u.log.Infow("stores refreshed",
		"users", len(users),
		"teams", len(teams),
		"departments", len(departments),
		"events", len(events),
		"pending", len(pending),
	)
	return true
}

func unmarshalList(raw json.RawMessage, into any) error {
	if raw == nil {
		return nil
	}
	return json.Unmarshal(raw, into)
}
