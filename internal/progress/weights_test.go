package progress

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/scurve/internal/catalog"
	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributeWeights_RenormalizesPresentPhases(t *testing.T) {
	tasks := []domain.Task{
		plannedTask("Desenvolvimento", 0, 41),
		plannedTask("Homologação", 35, 52),
	}
	cat := catalog.Default()
	w := DistributeWeights(BuildSchedule(tasks, cat), cat)

	assert.InDelta(t, 45.0/65*100, w.Weight(catalog.PhaseDevelopment), 1e-9)
	assert.InDelta(t, 20.0/65*100, w.Weight(catalog.PhaseHomologation), 1e-9)
	assert.InDelta(t, 69.23, w.Weight(catalog.PhaseDevelopment), 0.01)
	assert.InDelta(t, 100, w.Cumulative(catalog.PhaseHomologation), 1e-9)
	assert.InDelta(t, 100, w.Total(), 1e-9)
	assert.False(t, w.ZeroWeight())
}

func TestDistributeWeights_InformationalPhaseCarriesNoWeight(t *testing.T) {
	tasks := []domain.Task{
		plannedTask("Gestão", 0, 60),
		plannedTask("Desenvolvimento", 0, 41),
	}
	cat := catalog.Default()
	w := DistributeWeights(BuildSchedule(tasks, cat), cat)

	assert.Equal(t, 0.0, w.Weight(catalog.PhaseManagement))
	assert.InDelta(t, 100, w.Weight(catalog.PhaseDevelopment), 1e-9)
	assert.InDelta(t, 100, w.Cumulative(catalog.PhaseManagement), 1e-9,
		"informational phase must not move the cumulative sum")
}

func TestDistributeWeights_OnlyInformationalIsZeroWeight(t *testing.T) {
	cat := catalog.Default()
	w := DistributeWeights(BuildSchedule([]domain.Task{plannedTask("Gestão", 0, 60)}, cat), cat)

	require.Len(t, w.Items(), 1)
	assert.Equal(t, 0.0, w.Total())
	assert.True(t, w.ZeroWeight())
}

func TestDistributeWeights_EmptySchedule(t *testing.T) {
	w := DistributeWeights(Schedule{}, catalog.Default())
	assert.Empty(t, w.Items())
	assert.False(t, w.ZeroWeight())
	assert.Equal(t, 0.0, w.Weight("missing"))
	assert.Equal(t, 0.0, w.Cumulative("missing"))
}

// TestDistributeWeights_Invariants_SumAndMonotonic property-tests random
// subsets of the reference phases.
func TestDistributeWeights_Invariants_SumAndMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cat := catalog.Default()
	types := []string{"Planejamento", "Especificação", "Desenvolvimento", "Homologação", "Implantação", "Gestão"}

	for trial := 0; trial < 200; trial++ {
		var tasks []domain.Task
		weighted := false
		for i, tn := range types {
			if rng.Intn(2) == 0 {
				continue
			}
			start := rng.Intn(60)
			tasks = append(tasks, plannedTask(tn, start, start+rng.Intn(30)))
			if i < 5 {
				weighted = true
			}
		}

		w := DistributeWeights(BuildSchedule(tasks, cat), cat)
		var sum, prev float64
		for _, it := range w.Items() {
			assert.GreaterOrEqual(t, it.Cumulative, prev, "trial %d: cumulative must not decrease", trial)
			prev = it.Cumulative
			sum += it.Weight
		}
		if weighted {
			assert.InDelta(t, 100, sum, 1e-6, "trial %d: weights must sum to 100", trial)
			assert.InDelta(t, 100, prev, 1e-6, "trial %d: final cumulative must be 100", trial)
		} else {
			assert.Equal(t, 0.0, sum, "trial %d", trial)
		}
	}
}
