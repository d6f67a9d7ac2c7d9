package cli

import "github.com/alexanderramin/scurve/internal/app"

func (a *App) curveUseCase() app.CurveUseCase {
	if a.Curve != nil {
		return a.Curve
	}
	return a.Curves
}

func (a *App) statusUseCase() app.StatusUseCase {
	if a.Status != nil {
		return a.Status
	}
	return a.Curves
}

func (a *App) recordSnapshotUseCase() app.RecordSnapshotUseCase {
	if a.RecordSnapshot != nil {
		return a.RecordSnapshot
	}
	return a.Snapshots
}

func (a *App) importProjectUseCase() app.ImportProjectUseCase {
	if a.ImportProject != nil {
		return a.ImportProject
	}
	return a.Import
}
