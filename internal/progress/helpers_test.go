package progress

import (
	"time"

	"github.com/alexanderramin/scurve/internal/catalog"
	"github.com/alexanderramin/scurve/internal/domain"
)

var projectDay0 = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func dayN(n int) time.Time {
	return projectDay0.AddDate(0, 0, n)
}

func f64(v float64) *float64 { return &v }

func plannedTask(typeName string, startDay, endDay int) domain.Task {
	start, end := dayN(startDay), dayN(endDay)
	return domain.Task{ID: typeName, TypeName: &typeName, PlannedStart: &start, PlannedEnd: &end}
}

func actualSnap(phase string, week int, progress float64) domain.PhaseSnapshot {
	return domain.PhaseSnapshot{PhaseName: phase, WeekIndex: week, Progress: f64(progress)}
}

func expectedSnap(phase string, week int, expected float64) domain.PhaseSnapshot {
	return domain.PhaseSnapshot{PhaseName: phase, WeekIndex: week, ExpectedProgress: f64(expected)}
}

// twoPhaseCatalog has A (60) followed by B (40).
func twoPhaseCatalog() catalog.Catalog {
	return catalog.New(
		catalog.PhaseDefinition{Name: "A", Order: 1, NominalWeight: 60, TaskTypeMatchers: []string{"alpha"}},
		catalog.PhaseDefinition{Name: "B", Order: 2, NominalWeight: 40, TaskTypeMatchers: []string{"beta"}},
	)
}

// singlePhaseCatalog has one phase carrying the whole weight.
func singlePhaseCatalog() catalog.Catalog {
	return catalog.New(
		catalog.PhaseDefinition{Name: "A", Order: 1, NominalWeight: 100, TaskTypeMatchers: []string{"alpha"}},
	)
}

func newTestModel(tasks []domain.Task, snaps []domain.PhaseSnapshot, cat catalog.Catalog) *Model {
	return NewModel(tasks, snaps, Input{Catalog: cat})
}

func defaultCatalog() catalog.Catalog {
	return catalog.Default()
}
