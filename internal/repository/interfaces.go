package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/scurve/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

// SnapshotRepo stores at most one snapshot per (project, phase, week).
type SnapshotRepo interface {
	Upsert(ctx context.Context, s *domain.PhaseSnapshot) error
	ListByProject(ctx context.Context, projectID string) ([]domain.PhaseSnapshot, error)
	Delete(ctx context.Context, id string) error
}
