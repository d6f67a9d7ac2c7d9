package progress

import (
	"sort"

	"github.com/alexanderramin/scurve/internal/domain"
)

// Deviation thresholds, in percentage points of planned minus actual.
const (
	AtRiskDeviationPts   = 10.0
	CriticalDeviationPts = 20.0
)

type RiskResult struct {
	Level          domain.RiskLevel
	Week           int
	ActualPercent  float64
	PlannedPercent float64
	// DeviationPts is planned minus actual; positive means behind plan.
	DeviationPts float64
}

// ComputeRisk classifies a chart by how far actual progress trails the plan
// at the current week. ok is false for insufficient charts.
func ComputeRisk(chart ChartData) (RiskResult, bool) {
	if chart.Insufficient || chart.CurrentWeek == 0 {
		return RiskResult{}, false
	}
	actual := chart.ActualAt(chart.CurrentWeek)
	planned := chart.PlannedAt(chart.CurrentWeek)
	dev := planned - actual

	return RiskResult{
		Level:          ClassifyDeviation(dev),
		Week:           chart.CurrentWeek,
		ActualPercent:  actual,
		PlannedPercent: planned,
		DeviationPts:   dev,
	}, true
}

// ClassifyDeviation maps planned minus actual points to a risk level.
// Running ahead of plan is on track.
func ClassifyDeviation(pts float64) domain.RiskLevel {
	switch {
	case pts >= CriticalDeviationPts:
		return domain.RiskCritical
	case pts >= AtRiskDeviationPts:
		return domain.RiskAtRisk
	default:
		return domain.RiskOnTrack
	}
}

// RiskPriority returns a sort priority (lower = more urgent).
func RiskPriority(r domain.RiskLevel) int {
	switch r {
	case domain.RiskCritical:
		return 0
	case domain.RiskAtRisk:
		return 1
	case domain.RiskOnTrack:
		return 2
	default:
		return 3
	}
}

// RankedRisk pairs a project with its risk for portfolio ordering.
type RankedRisk struct {
	ProjectID   string
	ProjectName string
	Risk        *RiskResult
}

// SortByRisk orders by:
// 1. Risk: critical > at_risk > on_track > unknown
// 2. Deviation: larger first
// 3. Project name: lexical ascending
func SortByRisk(items []RankedRisk) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		pa, pb := riskPriorityOf(a.Risk), riskPriorityOf(b.Risk)
		if pa != pb {
			return pa < pb
		}
		if a.Risk != nil && b.Risk != nil && a.Risk.DeviationPts != b.Risk.DeviationPts {
			return a.Risk.DeviationPts > b.Risk.DeviationPts
		}
		return a.ProjectName < b.ProjectName
	})
}

func riskPriorityOf(r *RiskResult) int {
	if r == nil {
		return RiskPriority("")
	}
	return RiskPriority(r.Level)
}
