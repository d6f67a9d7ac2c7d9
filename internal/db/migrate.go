package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateDedupSnapshots(db); err != nil {
		return fmt.Errorf("deduplicating phase snapshots: %w", err)
	}
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_snapshots_phase_week
		ON phase_snapshots(project_id, phase_name, week_index)`); err != nil {
		return fmt.Errorf("creating idx_snapshots_phase_week: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','paused','done','archived')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title         TEXT NOT NULL DEFAULT '',
		type_name     TEXT,
		planned_start TEXT,
		planned_end   TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,

	`CREATE TABLE IF NOT EXISTS phase_snapshots (
		id                TEXT PRIMARY KEY,
		project_id        TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		phase_name        TEXT NOT NULL,
		week_index        INTEGER NOT NULL CHECK(week_index >= 1),
		progress          REAL,
		expected_progress REAL,
		recorded_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_snapshots_project ON phase_snapshots(project_id)`,

	// Add short_id column to projects
	`ALTER TABLE projects ADD COLUMN short_id TEXT NOT NULL DEFAULT ''`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_short_id ON projects(short_id) WHERE short_id != ''`,
}

// migrateDedupSnapshots keeps only the most recent snapshot per
// (project, phase, week) so the unique index can be created on databases
// written before it existed. Idempotent.
func migrateDedupSnapshots(db *sql.DB) error {
	ctx := context.Background()

	var dupes int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM (
		SELECT 1 FROM phase_snapshots
		GROUP BY project_id, phase_name, week_index
		HAVING COUNT(*) > 1)`).Scan(&dupes)
	if err != nil {
		return fmt.Errorf("counting duplicate snapshots: %w", err)
	}
	if dupes == 0 {
		return nil
	}

	_, err = db.ExecContext(ctx, `DELETE FROM phase_snapshots
		WHERE rowid NOT IN (
			SELECT rowid FROM (
				SELECT rowid, ROW_NUMBER() OVER (
					PARTITION BY project_id, phase_name, week_index
					ORDER BY recorded_at DESC, rowid DESC
				) AS rn
				FROM phase_snapshots
			) WHERE rn = 1
		)`)
	if err != nil {
		return fmt.Errorf("deleting superseded snapshots: %w", err)
	}
	return nil
}
