package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/scurve/internal/catalog"
	"github.com/alexanderramin/scurve/internal/db"
	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/alexanderramin/scurve/internal/repository"
	"github.com/alexanderramin/scurve/internal/testutil"
	"github.com/stretchr/testify/require"
)

// projectDay0 is a Monday; scenario tasks are laid out in days from it.
var projectDay0 = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func dayN(n int) time.Time {
	return projectDay0.AddDate(0, 0, n)
}

func f64(v float64) *float64 { return &v }
func boolPtr(v bool) *bool   { return &v }

type testRepos struct {
	db        *sql.DB
	projects  repository.ProjectRepo
	tasks     repository.TaskRepo
	snapshots repository.SnapshotRepo
	uow       db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:        database,
		projects:  repository.NewSQLiteProjectRepo(database),
		tasks:     repository.NewSQLiteTaskRepo(database),
		snapshots: repository.NewSQLiteSnapshotRepo(database),
		uow:       testutil.NewTestUoW(database),
	}
}

func (r testRepos) curveService(opts ...CurveServiceOption) CurveService {
	return NewCurveService(r.projects, r.tasks, r.snapshots, catalog.Default(), opts...)
}

// seedScenario stores an 8-week project: development over days 0-38 and
// homologation over days 35-52, with one development reading in week 4.
func seedScenario(t *testing.T, r testRepos, name, shortID string, progress, expected float64) *domain.Project {
	t.Helper()
	ctx := context.Background()

	proj := testutil.NewTestProject(name, testutil.WithShortID(shortID))
	require.NoError(t, r.projects.Create(ctx, proj))

	plan := []struct {
		typeName   string
		start, end int
	}{
		{"Desenvolvimento", 0, 38},
		{"Desenvolvimento Backend", 2, 30},
		{"Homologação", 35, 52},
	}
	for _, p := range plan {
		task := testutil.NewTestTask(proj.ID, p.typeName,
			testutil.WithTaskType(p.typeName),
			testutil.WithPlannedDates(dayN(p.start), dayN(p.end)))
		require.NoError(t, r.tasks.Create(ctx, task))
	}

	snap := testutil.NewTestSnapshot(proj.ID, catalog.PhaseDevelopment, 4,
		testutil.WithProgress(progress),
		testutil.WithExpectedProgress(expected))
	require.NoError(t, r.snapshots.Upsert(ctx, snap))
	return proj
}
