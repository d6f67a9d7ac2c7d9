package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/scurve/internal/db"
	"github.com/alexanderramin/scurve/internal/domain"
)

const (
	taskColumns = `id, project_id, title, type_name, planned_start, planned_end, created_at, updated_at`
	selectTasks = `SELECT ` + taskColumns + ` FROM tasks`
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database. Planning
// dates are stored as calendar days; a NULL date means "not planned".
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.ProjectID, t.Title,
		nullable(t.TypeName), nullableDate(t.PlannedStart), nullableDate(t.PlannedEnd),
		stamp(t.CreatedAt), stamp(t.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, selectTasks+` WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByProject returns the project's tasks ordered by planned start, unplanned last.
func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	return queryAll(ctx, r.db, "task", scanTask,
		selectTasks+` WHERE project_id = ?
		ORDER BY planned_start IS NULL, planned_start, created_at, id`, projectID)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	return execOne(ctx, r.db, "task", "updating",
		`UPDATE tasks SET title = ?, type_name = ?, planned_start = ?, planned_end = ?, updated_at = ?
		WHERE id = ?`,
		t.Title, nullable(t.TypeName), nullableDate(t.PlannedStart), nullableDate(t.PlannedEnd),
		stamp(t.UpdatedAt), t.ID)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, "task", "deleting", `DELETE FROM tasks WHERE id = ?`, id)
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		t                domain.Task
		typeName         sql.Null[string]
		start, end       sql.Null[string]
		created, updated string
	)
	if err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &typeName, &start, &end, &created, &updated); err != nil {
		return t, notFound("task", err)
	}
	t.TypeName = ptrFromNull(typeName)
	t.PlannedStart = dateFromNull(start)
	t.PlannedEnd = dateFromNull(end)
	err := parseStamps([]string{"created_at", "updated_at"},
		[]string{created, updated}, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
