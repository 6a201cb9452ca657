// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/samibentaiba/itc-hub-sub000/config"
	"github.com/samibentaiba/itc-hub-sub000/internal/repository/memory"
	"github.com/samibentaiba/itc-hub-sub000/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	UserInterface
	TeamInterface
	DepartmentInterface
	MemberInterface
	EventInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "memory":
		return memory.New(log), nil
	case "postgres":
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
