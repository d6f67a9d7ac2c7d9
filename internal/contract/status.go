package contract

import "github.com/alexanderramin/scurve/internal/app"

type StatusRequest = app.StatusRequest

func NewStatusRequest() StatusRequest {
	return app.NewStatusRequest()
}

type ProjectStatusView = app.ProjectStatusView

type StatusSummary = app.StatusSummary

type StatusResponse = app.StatusResponse
