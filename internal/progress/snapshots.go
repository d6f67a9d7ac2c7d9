package progress

import (
	"math"

	"github.com/alexanderramin/scurve/internal/domain"
)

// readingIndex holds at most one reading per (week, phase): the most
// recently recorded snapshot that carries the selected field.
type readingIndex struct {
	byWeek  map[int]map[string]reading
	maxWeek int
}

type reading struct {
	value    float64
	snapshot domain.PhaseSnapshot
}

type fieldSelector func(s *domain.PhaseSnapshot) *float64

func selectProgress(s *domain.PhaseSnapshot) *float64 { return s.Progress }

func selectExpected(s *domain.PhaseSnapshot) *float64 { return s.ExpectedProgress }

// indexReadings keeps snapshots for scheduled phases only; later RecordedAt
// wins, and on equal timestamps the later element of the slice wins. A NaN
// value counts as not registered.
func indexReadings(snapshots []domain.PhaseSnapshot, s Schedule, field fieldSelector) readingIndex {
	idx := readingIndex{byWeek: make(map[int]map[string]reading)}
	for i := range snapshots {
		snap := snapshots[i]
		v := field(&snap)
		if v == nil || math.IsNaN(*v) || snap.WeekIndex < 1 || !s.Has(snap.PhaseName) {
			continue
		}
		week := idx.byWeek[snap.WeekIndex]
		if week == nil {
			week = make(map[string]reading)
			idx.byWeek[snap.WeekIndex] = week
		}
		if prev, ok := week[snap.PhaseName]; ok && prev.snapshot.RecordedAt.After(snap.RecordedAt) {
			continue
		}
		week[snap.PhaseName] = reading{value: ClampPct(*v), snapshot: snap}
		if snap.WeekIndex > idx.maxWeek {
			idx.maxWeek = snap.WeekIndex
		}
	}
	return idx
}

// unscheduledPhases lists snapshot phase names that are not in the schedule,
// in first-seen order.
func unscheduledPhases(snapshots []domain.PhaseSnapshot, s Schedule) []string {
	seen := make(map[string]bool)
	var out []string
	for _, snap := range snapshots {
		if s.Has(snap.PhaseName) || seen[snap.PhaseName] {
			continue
		}
		seen[snap.PhaseName] = true
		out = append(out, snap.PhaseName)
	}
	return out
}

// ClampPct bounds a percentage into [0, 100]. NaN becomes 0.
func ClampPct(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
