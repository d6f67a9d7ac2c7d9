package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/scurve/internal/db"
	"github.com/alexanderramin/scurve/internal/domain"
)

const snapshotColumns = `id, project_id, phase_name, week_index, progress, expected_progress, recorded_at`

// SQLiteSnapshotRepo implements SnapshotRepo using a SQLite database.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: conn}
}

// Upsert inserts the snapshot or replaces the readings already stored for the
// same (project, phase, week). On conflict the stored row keeps its ID and s.ID
// is updated to match it.
func (r *SQLiteSnapshotRepo) Upsert(ctx context.Context, s *domain.PhaseSnapshot) error {
	query := `INSERT INTO phase_snapshots (` + snapshotColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(project_id, phase_name, week_index) DO UPDATE SET
			progress = excluded.progress,
			expected_progress = excluded.expected_progress,
			recorded_at = excluded.recorded_at
		RETURNING id`
	row := r.db.QueryRowContext(ctx, query,
		s.ID,
		s.ProjectID,
		s.PhaseName,
		s.WeekIndex,
		nullable(s.Progress),
		nullable(s.ExpectedProgress),
		stamp(s.RecordedAt),
	)
	var id string
	if err := row.Scan(&id); err != nil {
		return fmt.Errorf("upserting snapshot: %w", err)
	}
	s.ID = id
	return nil
}

// ListByProject returns snapshots ordered by week, then phase name.
func (r *SQLiteSnapshotRepo) ListByProject(ctx context.Context, projectID string) ([]domain.PhaseSnapshot, error) {
	return queryAll(ctx, r.db, "snapshot", scanSnapshot,
		`SELECT `+snapshotColumns+` FROM phase_snapshots WHERE project_id = ?
		ORDER BY week_index, phase_name`, projectID)
}

func (r *SQLiteSnapshotRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, "snapshot", "deleting", `DELETE FROM phase_snapshots WHERE id = ?`, id)
}

func scanSnapshot(row rowScanner) (domain.PhaseSnapshot, error) {
	var (
		s                  domain.PhaseSnapshot
		progress, expected sql.Null[float64]
		recorded           string
	)
	if err := row.Scan(&s.ID, &s.ProjectID, &s.PhaseName, &s.WeekIndex, &progress, &expected, &recorded); err != nil {
		return s, notFound("snapshot", err)
	}
	s.Progress = ptrFromNull(progress)
	s.ExpectedProgress = ptrFromNull(expected)
	err := parseStamps([]string{"recorded_at"}, []string{recorded}, &s.RecordedAt)
	return s, err
}
