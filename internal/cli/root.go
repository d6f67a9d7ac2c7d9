package cli

import (
	"github.com/alexanderramin/scurve/internal/app"
	"github.com/alexanderramin/scurve/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Tasks     service.TaskService
	Snapshots service.SnapshotService
	Curves    service.CurveService
	Import    service.ImportService

	// Use-case ports. When nil, the matching service above is used.
	Curve          app.CurveUseCase
	Status         app.StatusUseCase
	RecordSnapshot app.RecordSnapshotUseCase
	ImportProject  app.ImportProjectUseCase

	// CatalogSource describes where the phase catalog was loaded from.
	CatalogSource string

	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "scurve" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "scurve",
		Short: "Planned vs actual progress curves for phased projects",
	}

	root.AddCommand(
		newProjectCmd(app),
		newTaskCmd(app),
		newSnapshotCmd(app),
		newCurveCmd(app),
		newStatusCmd(app),
		newImportCmd(app),
		newCatalogCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
