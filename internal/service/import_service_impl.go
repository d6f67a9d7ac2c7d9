package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/scurve/internal/db"
	"github.com/alexanderramin/scurve/internal/importer"
	"github.com/alexanderramin/scurve/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService persists import files inside a single transaction; the
// repositories are created from the transaction handle.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportProject(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	fields := map[string]any{"short_id": schema.Project.ShortID}
	defer observe(ctx, s.observer, "import-project", time.Now(), fields, &err)

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}
	fields["task_count"] = len(generated.Tasks)
	fields["snapshot_count"] = len(generated.Snapshots)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		projects := repository.NewSQLiteProjectRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)
		snapshots := repository.NewSQLiteSnapshotRepo(tx)

		if _, err := projects.GetByShortID(ctx, generated.Project.ShortID); err == nil {
			return fmt.Errorf("short ID %q is already in use", generated.Project.ShortID)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		if err := projects.Create(ctx, generated.Project); err != nil {
			return fmt.Errorf("creating project: %w", err)
		}
		for _, t := range generated.Tasks {
			if err := tasks.Create(ctx, t); err != nil {
				return fmt.Errorf("creating task %q: %w", t.Title, err)
			}
		}
		for _, snap := range generated.Snapshots {
			if err := snapshots.Upsert(ctx, snap); err != nil {
				return fmt.Errorf("recording snapshot %s week %d: %w", snap.PhaseName, snap.WeekIndex, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Project:       generated.Project,
		TaskCount:     len(generated.Tasks),
		SnapshotCount: len(generated.Snapshots),
	}, nil
}
