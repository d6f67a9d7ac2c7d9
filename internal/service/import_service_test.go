package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/scurve/internal/contract"
	"github.com/alexanderramin/scurve/internal/importer"
	"github.com/alexanderramin/scurve/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func importFixture() *importer.ImportSchema {
	return &importer.ImportSchema{
		Project: importer.ProjectImport{ShortID: "imp01", Name: "Imported"},
		Tasks: []importer.TaskImport{
			{Ref: "dev", Title: "Build API", Type: strPtr("Desenvolvimento"), PlannedStart: strPtr("2025-03-03"), PlannedEnd: strPtr("2025-04-10")},
			{Ref: "hom", Title: "UAT", Type: strPtr("Homologação"), PlannedStart: strPtr("2025-04-07"), PlannedEnd: strPtr("2025-04-24")},
			{Title: "Weekly sync", Type: strPtr("Gestão")},
		},
		Snapshots: []importer.SnapshotImport{
			{Phase: "Desenvolvimento", Week: 4, Progress: f64(45), ExpectedProgress: f64(60)},
		},
	}
}

func TestImportService_ImportProjectFromSchema(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewImportService(r.uow)

	result, err := svc.ImportProjectFromSchema(ctx, importFixture())
	require.NoError(t, err)
	assert.Equal(t, "IMP01", result.Project.ShortID)
	assert.Equal(t, 3, result.TaskCount)
	assert.Equal(t, 1, result.SnapshotCount)

	stored, err := r.projects.GetByShortID(ctx, "IMP01")
	require.NoError(t, err)
	assert.Equal(t, "Imported", stored.Name)

	tasks, err := r.tasks.ListByProject(ctx, stored.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)

	snaps, err := r.snapshots.ListByProject(ctx, stored.ID)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.InDelta(t, 45.0, *snaps[0].Progress, 1e-9)

	// The imported project feeds the curve directly.
	now := dayN(24)
	req := contract.NewCurveRequest("IMP01")
	req.Now = &now
	resp, err := r.curveService().GetCurve(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 8, resp.Chart.TotalWeeks)
	assert.InDelta(t, 45.0, resp.Chart.ActualAt(4), 1e-9)
}

func TestImportService_ImportProject_FromFile(t *testing.T) {
	r := setupRepos(t)
	path := filepath.Join(t.TempDir(), "project.json")
	body := `{
  "project": {"short_id": "FILE01", "name": "From file"},
  "tasks": [
    {"title": "Specs", "type": "Especificação", "planned_start": "2025-01-06", "planned_end": "2025-01-24"}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	result, err := NewImportService(r.uow).ImportProject(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "FILE01", result.Project.ShortID)
	assert.Equal(t, 1, result.TaskCount)
	assert.Zero(t, result.SnapshotCount)
}

func TestImportService_ValidationErrorsAggregated(t *testing.T) {
	r := setupRepos(t)
	schema := importFixture()
	schema.Project.Name = ""
	schema.Snapshots[0].Week = 0

	_, err := NewImportService(r.uow).ImportProjectFromSchema(context.Background(), schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(2 errors)")
	assert.Contains(t, err.Error(), "project.name is required")

	projects, err := r.projects.List(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestImportService_DuplicateShortID(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	require.NoError(t, r.projects.Create(ctx, testutil.NewTestProject("Existing", testutil.WithShortID("IMP01"))))

	_, err := NewImportService(r.uow).ImportProjectFromSchema(ctx, importFixture())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in use")
}

func TestImportService_RollbackOnFailure(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	injected := errors.New("disk full")

	// Exec 1 creates the project, exec 2 and 3 the first two tasks.
	uow := &testutil.FailOnNthExecUoW{DB: r.db, FailOn: 3, Err: injected}
	_, err := NewImportService(uow).ImportProjectFromSchema(ctx, importFixture())
	require.Error(t, err)
	assert.ErrorIs(t, err, injected)

	projects, err := r.projects.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, projects, "project insert must be rolled back")

	var taskCount int
	require.NoError(t, r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&taskCount))
	assert.Zero(t, taskCount)
}
