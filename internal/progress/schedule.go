// Package progress derives the weekly planned-vs-actual completion curve of
// a project from its task planning dates and sparse phase snapshots.
//
// Every function here is pure: inputs are read, fresh values are returned,
// nothing is retained between calls.
package progress

import (
	"time"

	"github.com/alexanderramin/scurve/internal/catalog"
	"github.com/alexanderramin/scurve/internal/domain"
)

// PhaseRange is the date span a phase occupies, inferred from its tasks.
type PhaseRange struct {
	Phase         string
	Order         int
	Informational bool
	Start         time.Time
	End           time.Time
	TaskCount     int
}

// Schedule holds one range per phase present in the project, in catalog order.
type Schedule struct {
	ranges []PhaseRange
}

// BuildSchedule infers each phase's date range from the tasks whose type
// matches it. Only tasks with both planning dates contribute; a phase left
// without any such task is omitted.
func BuildSchedule(tasks []domain.Task, cat catalog.Catalog) Schedule {
	var s Schedule
	for _, def := range cat.Ordered() {
		r, ok := phaseRange(def, tasks)
		if !ok {
			continue
		}
		s.ranges = append(s.ranges, r)
	}
	return s
}

func phaseRange(def catalog.PhaseDefinition, tasks []domain.Task) (PhaseRange, bool) {
	r := PhaseRange{
		Phase:         def.Name,
		Order:         def.Order,
		Informational: def.Informational,
	}
	for i := range tasks {
		t := &tasks[i]
		if !t.Participates() || !def.Matches(*t.TypeName) {
			continue
		}
		// Not yet fully planned.
		if !t.FullyPlanned() {
			continue
		}
		start, end := civilDate(*t.PlannedStart), civilDate(*t.PlannedEnd)
		if r.TaskCount == 0 || start.Before(r.Start) {
			r.Start = start
		}
		if r.TaskCount == 0 || end.After(r.End) {
			r.End = end
		}
		r.TaskCount++
	}
	return r, r.TaskCount > 0
}

// Empty reports whether no phase has a resolvable date range.
func (s Schedule) Empty() bool {
	return len(s.ranges) == 0
}

// Ranges returns the phase ranges in catalog order.
func (s Schedule) Ranges() []PhaseRange {
	out := make([]PhaseRange, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Has reports whether phase is present in the schedule.
func (s Schedule) Has(phase string) bool {
	_, ok := s.Range(phase)
	return ok
}

// Range returns the range of phase.
func (s Schedule) Range(phase string) (PhaseRange, bool) {
	for _, r := range s.ranges {
		if r.Phase == phase {
			return r, true
		}
	}
	return PhaseRange{}, false
}

// Span returns the earliest start and latest end across all phases.
func (s Schedule) Span() (start, end time.Time, ok bool) {
	if s.Empty() {
		return time.Time{}, time.Time{}, false
	}
	start, end = s.ranges[0].Start, s.ranges[0].End
	for _, r := range s.ranges[1:] {
		if r.Start.Before(start) {
			start = r.Start
		}
		if r.End.After(end) {
			end = r.End
		}
	}
	return start, end, true
}

// civilDate drops the clock part, keeping the calendar date as seen in t's
// own location, and re-anchors it at UTC midnight.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
