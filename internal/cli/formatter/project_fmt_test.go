package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/scurve/internal/catalog"
	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatProjectList_UsesShortIDWhenPresent(t *testing.T) {
	now := time.Now().UTC()
	projects := []*domain.Project{
		{
			ID:        "12345678-aaaa-bbbb-cccc-1234567890ab",
			ShortID:   "ERP01",
			Name:      "ERP Rollout",
			Status:    domain.ProjectActive,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	out := FormatProjectList(projects)

	assert.Contains(t, out, "ERP01")
	assert.NotContains(t, out, "12345678")
	assert.Contains(t, out, "Active")
}

func TestFormatProjectList_FallsBackToUUIDPrefixWhenShortIDMissing(t *testing.T) {
	now := time.Now().UTC()
	projects := []*domain.Project{
		{
			ID:        "abcdef12-3456-7890-abcd-ef1234567890",
			Name:      "Legacy",
			Status:    domain.ProjectPaused,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	out := FormatProjectList(projects)

	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "3456-7890")
}

func TestFormatTaskList_ShowsMatchedPhases(t *testing.T) {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 20)
	dev, mixed, other := "Desenvolvimento", "Teste de Implantação", "Marketing"
	tasks := []domain.Task{
		{Title: "Build", TypeName: &dev, PlannedStart: &start, PlannedEnd: &end},
		{Title: "Smoke", TypeName: &mixed, PlannedEnd: &end},
		{Title: "Launch post", TypeName: &other, PlannedStart: &start},
		{Title: "Someday"},
	}
	project := &domain.Project{ID: "p-1", ShortID: "ERP01"}

	out := stripANSI(FormatTaskList(project, tasks, catalog.Default()))

	assert.Contains(t, out, "TASKS: ERP01")
	assert.Contains(t, out, "2025-03-23")
	assert.Contains(t, out, "Homologação, Implantação")
	assert.Contains(t, out, "no phase")
	assert.Contains(t, out, "unplanned")
}

func TestFormatSnapshotList(t *testing.T) {
	progress := 45.0
	snaps := []domain.PhaseSnapshot{
		{PhaseName: "Desenvolvimento", WeekIndex: 4, Progress: &progress, RecordedAt: time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC)},
	}
	project := &domain.Project{ID: "p-1", ShortID: "ERP01"}

	out := stripANSI(FormatSnapshotList(project, snaps))
	assert.Contains(t, out, "Desenvolvimento")
	assert.Contains(t, out, "45.0%")
	assert.Contains(t, out, "Sep 30, 2022")

	empty := stripANSI(FormatSnapshotList(project, nil))
	assert.Contains(t, empty, "No snapshots.")
}

func TestFormatCatalog(t *testing.T) {
	out := stripANSI(FormatCatalog(catalog.Default(), "built-in"))

	assert.Contains(t, out, "PHASE CATALOG")
	assert.Contains(t, out, "Desenvolvimento")
	assert.Contains(t, out, "45.0")
	assert.Contains(t, out, "Gestão")
	assert.Contains(t, out, "Total nominal weight 100.0")
	assert.Contains(t, out, "source: built-in")
}
