package contract

import "github.com/alexanderramin/scurve/internal/app"

type CurveRequest = app.CurveRequest

func NewCurveRequest(projectRef string) CurveRequest {
	return app.NewCurveRequest(projectRef)
}

type CurveResponse = app.CurveResponse

type CurveErrorCode = app.CurveErrorCode

const (
	CurveErrProjectNotFound CurveErrorCode = app.CurveErrProjectNotFound
	CurveErrInvalidInput    CurveErrorCode = app.CurveErrInvalidInput
)

type CurveError = app.CurveError
