package progress

import (
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/scurve/internal/catalog"
	"github.com/alexanderramin/scurve/internal/domain"
)

// Input carries the configuration of a single curve computation.
type Input struct {
	Catalog catalog.Catalog
	// Now positions the current-week marker. Zero means time.Now().
	Now time.Time
	// NoRedistribution counts silent phases as 0% instead of spreading
	// their weight over the phases that reported.
	NoRedistribution bool
	WeekLabel        func(week int) string
}

// Option adjusts an Input.
type Option func(*Input)

// WithNow fixes the reference time used for the current-week marker.
func WithNow(now time.Time) Option {
	return func(in *Input) { in.Now = now }
}

// WithoutRedistribution disables weight redistribution onto reporting phases.
func WithoutRedistribution() Option {
	return func(in *Input) { in.NoRedistribution = true }
}

// WithWeekLabel overrides the week label format.
func WithWeekLabel(fn func(week int) string) Option {
	return func(in *Input) { in.WeekLabel = fn }
}

// DefaultWeekLabel renders "Week N".
func DefaultWeekLabel(week int) string {
	return fmt.Sprintf("Week %d", week)
}

// WeeklyPoint is one sample of the S-curve.
type WeeklyPoint struct {
	WeekIndex      int
	WeekLabel      string
	WeekStart      time.Time
	ActualPercent  float64
	PlannedPercent float64
}

// PhaseBar is the horizontal span of a phase, in weeks clamped to the
// project length.
type PhaseBar struct {
	Phase          string
	Informational  bool
	Weight         float64
	StartDate      time.Time
	EndDate        time.Time
	StartWeekIndex int
	EndWeekIndex   int
}

// ChartData is everything the host needs to draw the curve.
type ChartData struct {
	WeeklySeries     []WeeklyPoint
	PhaseBars        []PhaseBar
	Weights          []PhaseWeight
	CurrentWeek      int
	CurrentWeekLabel *string
	ProjectStart     *time.Time
	ProjectEnd       *time.Time
	TotalWeeks       int
	// Insufficient is set when no phase has a resolvable date range; the
	// caller should render a placeholder instead of a curve.
	Insufficient bool
	// ZeroWeight is set when phases exist but none carries weight, which
	// yields a flat 0% curve.
	ZeroWeight bool
	// UnscheduledPhases lists snapshot phases ignored because the schedule
	// has no range for them.
	UnscheduledPhases []string
}

// Clone returns a copy that shares no slices or pointers with c.
func (c ChartData) Clone() ChartData {
	out := c
	out.WeeklySeries = slices.Clone(c.WeeklySeries)
	out.PhaseBars = slices.Clone(c.PhaseBars)
	out.Weights = slices.Clone(c.Weights)
	out.UnscheduledPhases = slices.Clone(c.UnscheduledPhases)
	out.CurrentWeekLabel = clonePtr(c.CurrentWeekLabel)
	out.ProjectStart = clonePtr(c.ProjectStart)
	out.ProjectEnd = clonePtr(c.ProjectEnd)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// ComputeProgressCurve runs the whole pipeline over already-fetched tasks
// and snapshots. It never fails: missing data yields an Insufficient result.
func ComputeProgressCurve(tasks []domain.Task, snapshots []domain.PhaseSnapshot, cat catalog.Catalog, opts ...Option) ChartData {
	in := Input{Catalog: cat}
	for _, opt := range opts {
		opt(&in)
	}
	return Assemble(tasks, snapshots, in)
}

// Assemble is ComputeProgressCurve with an explicit Input.
func Assemble(tasks []domain.Task, snapshots []domain.PhaseSnapshot, in Input) ChartData {
	if in.Now.IsZero() {
		in.Now = time.Now()
	}
	if in.WeekLabel == nil {
		in.WeekLabel = DefaultWeekLabel
	}

	m := NewModel(tasks, snapshots, in)
	if m.Buckets.Total() == 0 {
		return ChartData{
			Insufficient:      true,
			UnscheduledPhases: unscheduledPhases(snapshots, m.Schedule),
		}
	}

	weeks := m.Buckets.Weeks()
	series := make([]WeeklyPoint, 0, len(weeks))
	for _, w := range weeks {
		series = append(series, WeeklyPoint{
			WeekIndex:      w.Index,
			WeekLabel:      in.WeekLabel(w.Index),
			WeekStart:      w.Start,
			ActualPercent:  m.ActualProgress(w.Index),
			PlannedPercent: m.PlannedProgress(w.Index),
		})
	}

	current := m.Buckets.CurrentWeek(in.Now)
	label := in.WeekLabel(current)
	start, end := m.Buckets.Start, m.Buckets.End

	return ChartData{
		WeeklySeries:      series,
		PhaseBars:         phaseBars(m),
		Weights:           m.Weights.Items(),
		CurrentWeek:       current,
		CurrentWeekLabel:  &label,
		ProjectStart:      &start,
		ProjectEnd:        &end,
		TotalWeeks:        m.Buckets.Total(),
		ZeroWeight:        m.Weights.ZeroWeight(),
		UnscheduledPhases: unscheduledPhases(snapshots, m.Schedule),
	}
}

func phaseBars(m *Model) []PhaseBar {
	ranges := m.Schedule.Ranges()
	bars := make([]PhaseBar, 0, len(ranges))
	for _, r := range ranges {
		bars = append(bars, PhaseBar{
			Phase:          r.Phase,
			Informational:  r.Informational,
			Weight:         m.Weights.Weight(r.Phase),
			StartDate:      r.Start,
			EndDate:        r.End,
			StartWeekIndex: m.Buckets.Clamp(m.Buckets.WeekIndex(r.Start)),
			EndWeekIndex:   m.Buckets.Clamp(m.Buckets.WeekIndex(r.End)),
		})
	}
	return bars
}

// ActualAt returns the actual percentage at week, or 0 when out of range.
func (c ChartData) ActualAt(week int) float64 {
	if p, ok := c.point(week); ok {
		return p.ActualPercent
	}
	return 0
}

// PlannedAt returns the planned percentage at week, or 0 when out of range.
func (c ChartData) PlannedAt(week int) float64 {
	if p, ok := c.point(week); ok {
		return p.PlannedPercent
	}
	return 0
}

func (c ChartData) point(week int) (WeeklyPoint, bool) {
	if week < 1 || week > len(c.WeeklySeries) {
		return WeeklyPoint{}, false
	}
	return c.WeeklySeries[week-1], true
}
