package importer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/scurve/internal/domain"
)

const dateLayout = "2006-01-02"

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateProject(&schema.Project)...)
	errs = append(errs, validateTasks(schema.Tasks)...)
	errs = append(errs, validateSnapshots(schema.Snapshots)...)

	return errs
}

func validateProject(p *ProjectImport) []error {
	var errs []error

	if p.ShortID == "" {
		errs = append(errs, fmt.Errorf("project.short_id is required"))
	} else {
		candidate := domain.Project{ShortID: strings.ToUpper(p.ShortID)}
		if err := candidate.ValidateShortID(); err != nil {
			errs = append(errs, fmt.Errorf("project.short_id: %w", err))
		}
	}
	if p.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}
	if p.Status != "" && !domain.ValidProjectStatuses[p.Status] {
		errs = append(errs, fmt.Errorf("project.status: invalid value %q", p.Status))
	}

	return errs
}

func validateTasks(tasks []TaskImport) []error {
	var errs []error
	refs := make(map[string]bool)

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.Ref != "" {
			if refs[t.Ref] {
				errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, t.Ref))
			}
			refs[t.Ref] = true
		}
		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}

		startErrs := validateOptionalDate(prefix+".planned_start", t.PlannedStart)
		endErrs := validateOptionalDate(prefix+".planned_end", t.PlannedEnd)
		errs = append(errs, startErrs...)
		errs = append(errs, endErrs...)

		if len(startErrs) == 0 && len(endErrs) == 0 {
			start, end := parseOptionalDate(t.PlannedStart), parseOptionalDate(t.PlannedEnd)
			if start != nil && end != nil && end.Before(*start) {
				errs = append(errs, fmt.Errorf("%s: planned_end %q is before planned_start %q", prefix, *t.PlannedEnd, *t.PlannedStart))
			}
		}
	}

	return errs
}

func validateSnapshots(snaps []SnapshotImport) []error {
	var errs []error

	for i, s := range snaps {
		prefix := fmt.Sprintf("snapshots[%d]", i)

		if strings.TrimSpace(s.Phase) == "" {
			errs = append(errs, fmt.Errorf("%s.phase is required", prefix))
		}
		if s.Week < 1 {
			errs = append(errs, fmt.Errorf("%s.week must be >= 1 (got %d)", prefix, s.Week))
		}
		if s.Progress == nil && s.ExpectedProgress == nil {
			errs = append(errs, fmt.Errorf("%s: at least one of progress or expected_progress is required", prefix))
		}
		if s.Progress != nil && math.IsNaN(*s.Progress) {
			errs = append(errs, fmt.Errorf("%s.progress must be a number", prefix))
		}
		if s.ExpectedProgress != nil && math.IsNaN(*s.ExpectedProgress) {
			errs = append(errs, fmt.Errorf("%s.expected_progress must be a number", prefix))
		}
		if s.RecordedAt != nil && *s.RecordedAt != "" {
			if _, err := time.Parse(time.RFC3339, *s.RecordedAt); err != nil {
				errs = append(errs, fmt.Errorf("%s.recorded_at: invalid timestamp %q (expected RFC 3339)", prefix, *s.RecordedAt))
			}
		}
	}

	return errs
}

func validateOptionalDate(field string, dateStr *string) []error {
	if dateStr == nil || *dateStr == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, *dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *dateStr)}
	}
	return nil
}
