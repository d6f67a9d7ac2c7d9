package app

import (
	"time"

	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/alexanderramin/scurve/internal/progress"
)

type CurveRequest struct {
	// ProjectRef is a project ID or short ID.
	ProjectRef string
	Now        *time.Time
	// Redistribute overrides the configured redistribution policy when set.
	Redistribute *bool
}

func NewCurveRequest(projectRef string) CurveRequest {
	return CurveRequest{ProjectRef: projectRef}
}

type CurveResponse struct {
	Project *domain.Project
	Chart   progress.ChartData
	// Risk is nil when the chart is insufficient.
	Risk     *progress.RiskResult
	Warnings []string
	// Cached reports whether the chart came from the memo cache.
	Cached bool
}

type CurveErrorCode string

const (
	CurveErrProjectNotFound CurveErrorCode = "PROJECT_NOT_FOUND"
	CurveErrInvalidInput    CurveErrorCode = "INVALID_INPUT"
)

type CurveError struct {
	Code    CurveErrorCode
	Message string
}

func (e *CurveError) Error() string {
	return string(e.Code) + ": " + e.Message
}
