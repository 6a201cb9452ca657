// Package memory implements the repository in process memory. It backs
// development setups and tests; contents reset on restart. Collections are
// kept newest-first to match the list order the console expects.
package memory

import (
	"context"
	"sync"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"

	"go.uber.org/zap"
)

// Memory holds every collection behind one lock.
type Memory struct {
	log *zap.SugaredLogger

	mu          sync.RWMutex
	users       []entities.User
	teams       []entities.Team
	departments []entities.Department
	events      []entities.Event
	requests    []entities.PendingEvent
}

// New creates a seeded in-memory repository.
func New(log *zap.SugaredLogger) *Memory {
	m := &Memory{log: log.Named("repo.memory")}
	m.seed()
	return m
}

// OnStart implements the lifecycle hook; memory needs no setup.
func (m *Memory) OnStart(_ context.Context) error { return nil }

// OnStop implements the lifecycle hook.
func (m *Memory) OnStop(_ context.Context) error { return nil }

func cloneMembers(members []entities.Member) []entities.Member {
	out := make([]entities.Member, len(members))
	copy(out, members)
	return out
}

func cloneStrings(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}
