package service

import (
	"context"

	"github.com/alexanderramin/scurve/internal/app"
	"github.com/alexanderramin/scurve/internal/catalog"
	"github.com/alexanderramin/scurve/internal/contract"
	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/alexanderramin/scurve/internal/importer"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// Resolve looks a project up by short ID or ID.
	Resolve(ctx context.Context, ref string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type SnapshotService interface {
	// Record stores a weekly reading, replacing any earlier reading for the
	// same project, phase and week.
	Record(ctx context.Context, s *domain.PhaseSnapshot) error
	ListByProject(ctx context.Context, projectID string) ([]domain.PhaseSnapshot, error)
	Delete(ctx context.Context, id string) error
}

type CurveService interface {
	GetCurve(ctx context.Context, req contract.CurveRequest) (*contract.CurveResponse, error)
	GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error)
	Catalog() catalog.Catalog
}

// ImportResult holds the outcome of a project import.
type ImportResult = app.ImportResult

type ImportService interface {
	ImportProject(ctx context.Context, filePath string) (*ImportResult, error)
	ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
