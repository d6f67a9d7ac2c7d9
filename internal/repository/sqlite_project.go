package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/scurve/internal/db"
	"github.com/alexanderramin/scurve/internal/domain"
)

const (
	projectColumns = `id, short_id, name, status, created_at, updated_at`
	selectProjects = `SELECT ` + projectColumns + ` FROM projects`
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.ShortID, p.Name, string(p.Status), stamp(p.CreatedAt), stamp(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return scanProject(r.db.QueryRowContext(ctx, selectProjects+` WHERE id = ?`, id))
}

// GetByShortID matches case-insensitively; short IDs are stored upper-case
// but typed however the user likes.
func (r *SQLiteProjectRepo) GetByShortID(ctx context.Context, shortID string) (*domain.Project, error) {
	return scanProject(r.db.QueryRowContext(ctx, selectProjects+` WHERE short_id != '' AND UPPER(short_id) = UPPER(?)`, shortID))
}

// List returns projects oldest first. Archived projects are skipped unless
// includeArchived is set.
func (r *SQLiteProjectRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	query := selectProjects + ` WHERE status != ? ORDER BY created_at, name`
	exclude := string(domain.ProjectArchived)
	if includeArchived {
		exclude = ""
	}
	return queryAll(ctx, r.db, "project", scanProject, query, exclude)
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	return execOne(ctx, r.db, "project", "updating",
		`UPDATE projects SET short_id = ?, name = ?, status = ?, updated_at = ? WHERE id = ?`,
		p.ShortID, p.Name, string(p.Status), stamp(p.UpdatedAt), p.ID)
}

func (r *SQLiteProjectRepo) Archive(ctx context.Context, id string) error {
	return execOne(ctx, r.db, "project", "archiving",
		`UPDATE projects SET status = ?, updated_at = ? WHERE id = ?`,
		string(domain.ProjectArchived), stamp(time.Now()), id)
}

// Delete removes the project; its tasks and snapshots go with it.
func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, "project", "deleting", `DELETE FROM projects WHERE id = ?`, id)
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p                domain.Project
		status           string
		created, updated string
	)
	if err := row.Scan(&p.ID, &p.ShortID, &p.Name, &status, &created, &updated); err != nil {
		return nil, notFound("project", err)
	}
	p.Status = domain.ProjectStatus(status)
	if err := parseStamps([]string{"created_at", "updated_at"},
		[]string{created, updated}, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
