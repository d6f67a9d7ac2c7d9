package progress

import (
	"math"
	"testing"
	"time"

	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/stretchr/testify/assert"
)

func twoPhaseTasks() []domain.Task {
	return []domain.Task{
		plannedTask("alpha", 0, 34),
		plannedTask("beta", 21, 63),
	}
}

func TestActualProgress_RedistributesSilentPhaseWeight(t *testing.T) {
	m := newTestModel(twoPhaseTasks(), []domain.PhaseSnapshot{actualSnap("A", 3, 50)}, twoPhaseCatalog())
	assert.InDelta(t, 50.0, m.ActualProgress(3), 1e-9, "A's weight must cover B's silence, not yield 30")
}

func TestActualProgress_WithoutRedistribution(t *testing.T) {
	m := NewModel(twoPhaseTasks(), []domain.PhaseSnapshot{actualSnap("A", 3, 50)},
		Input{Catalog: twoPhaseCatalog(), NoRedistribution: true})
	assert.InDelta(t, 30.0, m.ActualProgress(3), 1e-9)
}

func TestActualProgress_AllPhasesReporting(t *testing.T) {
	snaps := []domain.PhaseSnapshot{actualSnap("A", 2, 50), actualSnap("B", 2, 25)}
	m := newTestModel(twoPhaseTasks(), snaps, twoPhaseCatalog())
	assert.InDelta(t, 0.6*50+0.4*25, m.ActualProgress(2), 1e-9)
}

func TestActualProgress_Clamping(t *testing.T) {
	cases := []struct {
		name     string
		progress float64
		want     float64
	}{
		{"above 100", 150, 100},
		{"below 0", -20, 0},
		{"inside", 42, 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(twoPhaseTasks(), []domain.PhaseSnapshot{actualSnap("A", 1, tc.progress)}, twoPhaseCatalog())
			assert.InDelta(t, tc.want, m.ActualProgress(1), 1e-9)
		})
	}
}

func TestActualProgress_ClampingInMixedWeek(t *testing.T) {
	snaps := []domain.PhaseSnapshot{actualSnap("A", 1, 150), actualSnap("B", 1, -20)}
	m := newTestModel(twoPhaseTasks(), snaps, twoPhaseCatalog())
	assert.InDelta(t, 60.0, m.ActualProgress(1), 1e-9, "computed as if A=100 and B=0")
}

func TestActualProgress_NaNReadingIsNotRegistered(t *testing.T) {
	snaps := []domain.PhaseSnapshot{actualSnap("A", 1, 40), actualSnap("A", 2, math.NaN())}
	m := newTestModel(twoPhaseTasks(), snaps, twoPhaseCatalog())
	assert.InDelta(t, m.ActualProgress(1), m.ActualProgress(2), 1e-9, "week 2 carries week 1 forward")
	assert.False(t, math.IsNaN(m.ActualProgress(3)))
}

func TestClampPct(t *testing.T) {
	cases := map[string]struct {
		in, want float64
	}{
		"NaN":           {math.NaN(), 0},
		"negative":      {-0.5, 0},
		"plus infinity": {math.Inf(1), 100},
		"inside":        {12.5, 12.5},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClampPct(tc.in))
		})
	}
}

func TestActualProgress_CarryForward(t *testing.T) {
	m := newTestModel(twoPhaseTasks(), []domain.PhaseSnapshot{actualSnap("A", 1, 40)}, twoPhaseCatalog())
	assert.Equal(t, m.ActualProgress(1), m.ActualProgress(5))
	assert.InDelta(t, 40.0, m.ActualProgress(5), 1e-9)
}

func TestActualProgress_CarryForwardUsesLatestEarlierWeek(t *testing.T) {
	snaps := []domain.PhaseSnapshot{
		actualSnap("A", 2, 20),
		actualSnap("A", 4, 60),
	}
	m := newTestModel(twoPhaseTasks(), snaps, twoPhaseCatalog())
	assert.Equal(t, 0.0, m.ActualProgress(1))
	assert.InDelta(t, 20.0, m.ActualProgress(3), 1e-9)
	assert.InDelta(t, 60.0, m.ActualProgress(9), 1e-9)
	assert.InDelta(t, 60.0, m.ActualProgress(500), 1e-9, "beyond the project length is allowed")
}

func TestActualProgress_NoSnapshots(t *testing.T) {
	m := newTestModel(twoPhaseTasks(), nil, twoPhaseCatalog())
	for w := -1; w <= 10; w++ {
		assert.Equal(t, 0.0, m.ActualProgress(w))
	}
}

func TestActualProgress_LongProjectBoundedWalk(t *testing.T) {
	tasks := []domain.Task{plannedTask("alpha", 0, 7*5000)}
	m := newTestModel(tasks, []domain.PhaseSnapshot{actualSnap("A", 1, 10)}, singlePhaseCatalog())
	assert.InDelta(t, 10.0, m.ActualProgress(1_000_000), 1e-9)
}

func TestActualProgress_LatestDuplicateWins(t *testing.T) {
	older := actualSnap("A", 2, 80)
	older.RecordedAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	newer := actualSnap("A", 2, 30)
	newer.RecordedAt = older.RecordedAt.Add(time.Hour)

	m := newTestModel(twoPhaseTasks(), []domain.PhaseSnapshot{newer, older}, twoPhaseCatalog())
	assert.InDelta(t, 30.0, m.ActualProgress(2), 1e-9, "duplicates are not averaged")
}

func TestActualProgress_DuplicateTieKeepsLastInput(t *testing.T) {
	snaps := []domain.PhaseSnapshot{actualSnap("A", 2, 80), actualSnap("A", 2, 30)}
	m := newTestModel(twoPhaseTasks(), snaps, twoPhaseCatalog())
	assert.InDelta(t, 30.0, m.ActualProgress(2), 1e-9)
}

func TestActualProgress_UnscheduledPhaseIgnored(t *testing.T) {
	snaps := []domain.PhaseSnapshot{
		actualSnap("A", 3, 50),
		actualSnap("Typo", 3, 100),
		actualSnap("Typo", 4, 100),
	}
	m := newTestModel(twoPhaseTasks(), snaps, twoPhaseCatalog())
	assert.InDelta(t, 50.0, m.ActualProgress(3), 1e-9)
	assert.InDelta(t, 50.0, m.ActualProgress(4), 1e-9, "a week with only ignored snapshots carries forward")
}

func TestActualProgress_SnapshotWithoutProgressIsNotRegistered(t *testing.T) {
	snaps := []domain.PhaseSnapshot{
		actualSnap("A", 1, 40),
		expectedSnap("A", 2, 90),
	}
	m := newTestModel(twoPhaseTasks(), snaps, twoPhaseCatalog())
	assert.InDelta(t, 40.0, m.ActualProgress(2), 1e-9)
}

func TestActualProgress_ZeroWeightPhasesReportZero(t *testing.T) {
	tasks := []domain.Task{plannedTask("Gestão", 0, 30)}
	m := NewModel(tasks, []domain.PhaseSnapshot{actualSnap("Gestão", 1, 80)}, Input{Catalog: defaultCatalog()})
	assert.Equal(t, 0.0, m.ActualProgress(1))
	assert.Equal(t, 0.0, m.ActualProgress(3))
}

func TestPlannedProgress_LinearFallbackWithoutExpectations(t *testing.T) {
	tasks := []domain.Task{plannedTask("alpha", 0, 63)}
	m := newTestModel(tasks, nil, singlePhaseCatalog())
	if !assert.Equal(t, 10, m.Buckets.Total()) {
		return
	}
	assert.InDelta(t, 50.0, m.PlannedProgress(5), 1e-9)
	assert.InDelta(t, 100.0, m.PlannedProgress(10), 1e-9)
	assert.InDelta(t, 10.0, m.PlannedProgress(1), 1e-9)
	assert.InDelta(t, 100.0, m.PlannedProgress(12), 1e-9, "clamped past the end")
	assert.Equal(t, 0.0, m.PlannedProgress(0))
}

func TestPlannedProgress_RegisteredWeekUsesWeightedExpectation(t *testing.T) {
	snaps := []domain.PhaseSnapshot{expectedSnap("A", 4, 60), expectedSnap("B", 4, 10)}
	m := newTestModel(twoPhaseTasks(), snaps, twoPhaseCatalog())
	assert.InDelta(t, 0.6*60+0.4*10, m.PlannedProgress(4), 1e-9)
}

func TestPlannedProgress_RedistributesLikeActual(t *testing.T) {
	m := newTestModel(twoPhaseTasks(), []domain.PhaseSnapshot{expectedSnap("B", 2, 30)}, twoPhaseCatalog())
	assert.InDelta(t, 30.0, m.PlannedProgress(2), 1e-9)
}

func TestPlannedProgress_LinearFromLastRegisteredWeek(t *testing.T) {
	tasks := []domain.Task{plannedTask("alpha", 0, 63)}
	m := newTestModel(tasks, []domain.PhaseSnapshot{expectedSnap("A", 2, 20)}, singlePhaseCatalog())

	// V=20 at L=2, remaining 80 spread over weeks 3..10.
	assert.InDelta(t, 20.0, m.PlannedProgress(2), 1e-9)
	assert.InDelta(t, 30.0, m.PlannedProgress(3), 1e-9)
	assert.InDelta(t, 40.0, m.PlannedProgress(4), 1e-9)
	assert.InDelta(t, 100.0, m.PlannedProgress(10), 1e-9)
}

func TestPlannedProgress_BeforeFirstExpectationIsLinearFromZero(t *testing.T) {
	tasks := []domain.Task{plannedTask("alpha", 0, 63)}
	m := newTestModel(tasks, []domain.PhaseSnapshot{expectedSnap("A", 6, 90)}, singlePhaseCatalog())
	assert.InDelta(t, 30.0, m.PlannedProgress(3), 1e-9)
	assert.InDelta(t, 90.0, m.PlannedProgress(6), 1e-9)
	assert.InDelta(t, 92.5, m.PlannedProgress(7), 1e-9)
}

func TestPlannedProgress_LastRegisteredAtOrBeyondEndIsFlat(t *testing.T) {
	tasks := []domain.Task{plannedTask("alpha", 0, 27)}
	m := newTestModel(tasks, []domain.PhaseSnapshot{expectedSnap("A", 4, 70)}, singlePhaseCatalog())
	if !assert.Equal(t, 4, m.Buckets.Total()) {
		return
	}
	assert.InDelta(t, 70.0, m.PlannedProgress(6), 1e-9)
}
