package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/google/uuid"
)

// GeneratedProject holds the domain objects produced from an import file.
type GeneratedProject struct {
	Project   *domain.Project
	Tasks     []*domain.Task
	Snapshots []*domain.PhaseSnapshot
}

// Convert transforms a validated ImportSchema into domain objects ready for persistence.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*GeneratedProject, error) {
	return convertAt(schema, time.Now().UTC())
}

func convertAt(schema *ImportSchema, now time.Time) (*GeneratedProject, error) {
	status := domain.ProjectStatus(domain.Coalesce(schema.Project.Status, string(domain.ProjectActive)))

	project := &domain.Project{
		ID:        uuid.New().String(),
		ShortID:   strings.ToUpper(schema.Project.ShortID),
		Name:      schema.Project.Name,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tasks := make([]*domain.Task, 0, len(schema.Tasks))
	for _, t := range schema.Tasks {
		var typeName *string
		if t.Type != nil {
			typeName = domain.PtrOrNil(strings.TrimSpace(*t.Type))
		}
		tasks = append(tasks, &domain.Task{
			ID:           uuid.New().String(),
			ProjectID:    project.ID,
			Title:        t.Title,
			TypeName:     typeName,
			PlannedStart: parseOptionalDate(t.PlannedStart),
			PlannedEnd:   parseOptionalDate(t.PlannedEnd),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	snapshots := make([]*domain.PhaseSnapshot, 0, len(schema.Snapshots))
	for i, s := range schema.Snapshots {
		recordedAt := now
		if s.RecordedAt != nil && *s.RecordedAt != "" {
			t, err := time.Parse(time.RFC3339, *s.RecordedAt)
			if err != nil {
				return nil, fmt.Errorf("snapshots[%d].recorded_at: %w", i, err)
			}
			recordedAt = t.UTC()
		}
		snapshots = append(snapshots, &domain.PhaseSnapshot{
			ID:               uuid.New().String(),
			ProjectID:        project.ID,
			PhaseName:        strings.TrimSpace(s.Phase),
			WeekIndex:        s.Week,
			Progress:         s.Progress,
			ExpectedProgress: s.ExpectedProgress,
			RecordedAt:       recordedAt,
		})
	}

	return &GeneratedProject{
		Project:   project,
		Tasks:     tasks,
		Snapshots: snapshots,
	}, nil
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
