package progress

import (
	"github.com/alexanderramin/scurve/internal/domain"
)

// Model bundles the derived tables needed to evaluate progress at any week.
type Model struct {
	Schedule Schedule
	Weights  Weights
	Buckets  Buckets

	actual       readingIndex
	expected     readingIndex
	redistribute bool
}

// NewModel derives schedule, weights and week buckets and indexes the
// snapshots once.
func NewModel(tasks []domain.Task, snapshots []domain.PhaseSnapshot, in Input) *Model {
	s := BuildSchedule(tasks, in.Catalog)
	return &Model{
		Schedule:     s,
		Weights:      DistributeWeights(s, in.Catalog),
		Buckets:      NewBuckets(s),
		actual:       indexReadings(snapshots, s, selectProgress),
		expected:     indexReadings(snapshots, s, selectExpected),
		redistribute: !in.NoRedistribution,
	}
}

// weightedAt combines the readings registered exactly at week. ok is false
// when no weighted phase reported that week.
//
// With redistribution, the weight of silent phases is spread proportionally
// over the phases that did report, so a partial update is neither diluted
// by the silent phases nor inflated to the whole project.
func (m *Model) weightedAt(idx readingIndex, week int) (float64, bool) {
	registered := idx.byWeek[week]
	if len(registered) == 0 {
		return 0, false
	}

	items := m.Weights.items
	var registeredWeight float64
	for _, it := range items {
		if _, ok := registered[it.Phase]; ok {
			registeredWeight += it.Weight
		}
	}
	if registeredWeight == 0 {
		return 0, false
	}

	scale := 1.0
	if m.redistribute {
		scale = m.Weights.Total() / registeredWeight
	}

	var sum float64
	for _, it := range items {
		r, ok := registered[it.Phase]
		if !ok {
			continue
		}
		sum += it.Weight * scale * r.value / 100
	}
	return ClampPct(sum), true
}

// lastRegistered walks backward from week to 1 and returns the first week
// holding weighted readings. The walk starts no later than the highest
// indexed week.
func (m *Model) lastRegistered(idx readingIndex, week int) (int, float64, bool) {
	if week > idx.maxWeek {
		week = idx.maxWeek
	}
	for w := week; w >= 1; w-- {
		if v, ok := m.weightedAt(idx, w); ok {
			return w, v, true
		}
	}
	return 0, 0, false
}

// ActualProgress is the weighted actual completion at week. Weeks without
// readings carry forward the latest earlier value; before the first reading
// it is 0. The week is not clamped to the project length.
func (m *Model) ActualProgress(week int) float64 {
	_, v, ok := m.lastRegistered(m.actual, week)
	if !ok {
		return 0
	}
	return v
}

// PlannedProgress is the weighted expected completion at week. Without an
// expectation registered exactly at week it extrapolates linearly: from the
// last registered week L with value V towards 100 at the final week, or from
// 0 at the start when nothing was ever registered.
func (m *Model) PlannedProgress(week int) float64 {
	if v, ok := m.weightedAt(m.expected, week); ok {
		return v
	}
	total := m.Buckets.Total()
	if total == 0 || week < 1 {
		return 0
	}

	last, v, ok := m.lastRegistered(m.expected, week-1)
	if !ok {
		return ClampPct(float64(week) / float64(total) * 100)
	}
	if total <= last {
		return v
	}
	step := (100 - v) / float64(total-last)
	return ClampPct(v + float64(week-last)*step)
}
