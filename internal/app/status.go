package app

import (
	"time"

	"github.com/alexanderramin/scurve/internal/domain"
)

type StatusRequest struct {
	Now             *time.Time
	ProjectScope    []string
	IncludeArchived bool
	// Concurrency bounds the number of curves computed at once.
	Concurrency int
}

func NewStatusRequest() StatusRequest {
	return StatusRequest{Concurrency: 4}
}

type ProjectStatusView struct {
	ProjectID   string
	ShortID     string
	ProjectName string
	Status      domain.ProjectStatus
	// RiskLevel is empty when the project has insufficient planning data.
	RiskLevel      domain.RiskLevel
	CurrentWeek    int
	TotalWeeks     int
	ActualPercent  float64
	PlannedPercent float64
	DeviationPts   float64
	Insufficient   bool
	Notes          []string
}

type StatusSummary struct {
	GeneratedAt        time.Time
	CountsTotal        int
	CountsOnTrack      int
	CountsAtRisk       int
	CountsCritical     int
	CountsInsufficient int
}

type StatusResponse struct {
	Summary  StatusSummary
	Projects []ProjectStatusView
	Warnings []string
}
