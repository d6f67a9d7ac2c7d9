package service

import (
	"context"
	"math"
	"testing"

	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/alexanderramin/scurve/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotService_Record_ReplacesSameWeek(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewSnapshotService(r.snapshots, r.uow)

	proj := testutil.NewTestProject("Readings")
	require.NoError(t, r.projects.Create(ctx, proj))

	first := &domain.PhaseSnapshot{ProjectID: proj.ID, PhaseName: "Desenvolvimento", WeekIndex: 2, Progress: f64(10)}
	require.NoError(t, svc.Record(ctx, first))
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.RecordedAt.IsZero())

	second := &domain.PhaseSnapshot{ProjectID: proj.ID, PhaseName: " Desenvolvimento ", WeekIndex: 2, Progress: f64(18), ExpectedProgress: f64(20)}
	require.NoError(t, svc.Record(ctx, second))
	assert.Equal(t, "Desenvolvimento", second.PhaseName)

	snaps, err := svc.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.InDelta(t, 18.0, *snaps[0].Progress, 1e-9)
	assert.InDelta(t, 20.0, *snaps[0].ExpectedProgress, 1e-9)
}

func TestSnapshotService_Record_Validation(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewSnapshotService(r.snapshots, r.uow)

	proj := testutil.NewTestProject("Invalid")
	require.NoError(t, r.projects.Create(ctx, proj))

	tests := []struct {
		name    string
		snap    domain.PhaseSnapshot
		wantMsg string
	}{
		{"missing phase", domain.PhaseSnapshot{ProjectID: proj.ID, WeekIndex: 1, Progress: f64(1)}, "phase name is required"},
		{"week zero", domain.PhaseSnapshot{ProjectID: proj.ID, PhaseName: "Homologação", WeekIndex: 0, Progress: f64(1)}, "week must be >= 1"},
		{"no readings", domain.PhaseSnapshot{ProjectID: proj.ID, PhaseName: "Homologação", WeekIndex: 1}, "at least one of progress"},
		{"NaN progress", domain.PhaseSnapshot{ProjectID: proj.ID, PhaseName: "Homologação", WeekIndex: 1, Progress: f64(math.NaN())}, "must be numbers"},
		{"NaN expected", domain.PhaseSnapshot{ProjectID: proj.ID, PhaseName: "Homologação", WeekIndex: 1, ExpectedProgress: f64(math.NaN())}, "must be numbers"},
		{"unknown project", domain.PhaseSnapshot{ProjectID: "missing", PhaseName: "Homologação", WeekIndex: 1, Progress: f64(1)}, "project not found"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := tc.snap
			err := svc.Record(ctx, &snap)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}

	snaps, err := svc.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, snaps)
}
