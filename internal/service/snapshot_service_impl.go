package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/scurve/internal/db"
	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/alexanderramin/scurve/internal/repository"
	"github.com/google/uuid"
)

type snapshotService struct {
	snapshots repository.SnapshotRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewSnapshotService(snapshots repository.SnapshotRepo, uow db.UnitOfWork, observers ...UseCaseObserver) SnapshotService {
	return &snapshotService{
		snapshots: snapshots,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *snapshotService) Record(ctx context.Context, snap *domain.PhaseSnapshot) (err error) {
	fields := map[string]any{
		"phase": snap.PhaseName,
		"week":  snap.WeekIndex,
	}
	defer observe(ctx, s.observer, "record-snapshot", time.Now(), fields, &err)

	snap.PhaseName = strings.TrimSpace(snap.PhaseName)
	if snap.PhaseName == "" {
		return fmt.Errorf("phase name is required")
	}
	if snap.WeekIndex < 1 {
		return fmt.Errorf("week must be >= 1 (got %d)", snap.WeekIndex)
	}
	if !snap.HasProgress() && !snap.HasExpected() {
		return fmt.Errorf("at least one of progress or expected progress is required")
	}
	if (snap.Progress != nil && math.IsNaN(*snap.Progress)) || (snap.ExpectedProgress != nil && math.IsNaN(*snap.ExpectedProgress)) {
		return fmt.Errorf("progress values must be numbers")
	}
	if snap.ID == "" {
		snap.ID = uuid.New().String()
	}
	if snap.RecordedAt.IsZero() {
		snap.RecordedAt = time.Now().UTC()
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, snap.ProjectID); err != nil {
			return fmt.Errorf("loading project for snapshot: %w", err)
		}
		return repository.NewSQLiteSnapshotRepo(tx).Upsert(ctx, snap)
	})
}

func (s *snapshotService) ListByProject(ctx context.Context, projectID string) ([]domain.PhaseSnapshot, error) {
	return s.snapshots.ListByProject(ctx, projectID)
}

func (s *snapshotService) Delete(ctx context.Context, id string) error {
	return s.snapshots.Delete(ctx, id)
}
