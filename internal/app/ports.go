package app

import (
	"context"

	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/alexanderramin/scurve/internal/importer"
)

type CurveUseCase interface {
	GetCurve(ctx context.Context, req CurveRequest) (*CurveResponse, error)
}

type StatusUseCase interface {
	GetStatus(ctx context.Context, req StatusRequest) (*StatusResponse, error)
}

type RecordSnapshotUseCase interface {
	Record(ctx context.Context, s *domain.PhaseSnapshot) error
}

type ImportResult struct {
	Project       *domain.Project
	TaskCount     int
	SnapshotCount int
}

type ImportProjectUseCase interface {
	ImportProject(ctx context.Context, filePath string) (*ImportResult, error)
	ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
