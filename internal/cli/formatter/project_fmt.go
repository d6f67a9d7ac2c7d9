package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/scurve/internal/catalog"
	"github.com/alexanderramin/scurve/internal/domain"
)

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "STATUS", "CREATED"}
	rows := make([][]string, 0, len(projects))

	now := time.Now()
	for _, p := range projects {
		id := strings.TrimSpace(p.ShortID)
		if id == "" {
			id = IDPrefix(p.ID)
		}
		rows = append(rows, []string{
			id,
			Bold(p.Name),
			StatusPill(p.Status),
			Dim(CalendarDay(p.CreatedAt, now)),
		})
	}

	if len(rows) == 0 {
		return RenderBox("Projects", Dim("No projects."))
	}
	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatTaskList renders a project's tasks with the phases their type maps
// to under cat. Tasks that cannot feed the curve are flagged.
func FormatTaskList(project *domain.Project, tasks []domain.Task, cat catalog.Catalog) string {
	headers := []string{"TITLE", "TYPE", "START", "END", "PHASE"}
	rows := make([][]string, 0, len(tasks))

	for i := range tasks {
		t := &tasks[i]
		typeName := Dim("--")
		if t.TypeName != nil && *t.TypeName != "" {
			typeName = *t.TypeName
		}
		rows = append(rows, []string{
			Bold(t.Title),
			typeName,
			ShortDate(t.PlannedStart),
			ShortDate(t.PlannedEnd),
			taskPhases(t, cat),
		})
	}

	title := fmt.Sprintf("Tasks: %s", project.DisplayID())
	if len(rows) == 0 {
		return RenderBox(title, Dim("No tasks."))
	}
	return RenderBox(title, RenderTable(headers, rows))
}

func taskPhases(t *domain.Task, cat catalog.Catalog) string {
	if !t.Participates() {
		return StyleYellow.Render("unplanned")
	}
	var names []string
	for _, def := range cat.Ordered() {
		if def.Matches(*t.TypeName) {
			names = append(names, def.Name)
		}
	}
	if len(names) == 0 {
		return StyleYellow.Render("no phase")
	}
	return StylePurple.Render(strings.Join(names, ", "))
}

// FormatSnapshotList renders weekly phase readings ordered as given.
func FormatSnapshotList(project *domain.Project, snaps []domain.PhaseSnapshot) string {
	headers := []string{"WEEK", "PHASE", "PROGRESS", "EXPECTED", "RECORDED"}
	rows := make([][]string, 0, len(snaps))

	now := time.Now()
	for _, s := range snaps {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.WeekIndex),
			s.PhaseName,
			OptionalPct(s.Progress),
			OptionalPct(s.ExpectedProgress),
			Dim(Elapsed(s.RecordedAt, now)),
		})
	}

	title := fmt.Sprintf("Snapshots: %s", project.DisplayID())
	if len(rows) == 0 {
		return RenderBox(title, Dim("No snapshots."))
	}
	return RenderBox(title, RenderTable(headers, rows, 0, 2, 3))
}
