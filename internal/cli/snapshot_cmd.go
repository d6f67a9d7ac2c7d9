package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scurve/internal/cli/formatter"
	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snapshot",
		Aliases: []string{"snap"},
		Short:   "Record and list weekly phase progress",
	}

	cmd.AddCommand(
		newSnapshotAddCmd(app),
		newSnapshotListCmd(app),
	)

	return cmd
}

func newSnapshotAddCmd(app *App) *cobra.Command {
	var projectRef, phase string
	var week int
	var progress, expected percentValue

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a phase's progress for a week",
		Long: `Record a phase's progress for a week. A later reading for the same
phase and week replaces the earlier one. When run in a terminal without
--phase, --week or a percentage, a form asks for the missing values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}

			missing := phase == "" || week <= 0 || (progress.Value() == nil && expected.Value() == nil)
			if missing && app.interactive() {
				f := newSnapshotForm(phase, week, &progress, &expected)
				if err := f.form(app.Curves.Catalog()).RunWithContext(ctx); err != nil {
					return err
				}
				if err := f.apply(&phase, &week, &progress, &expected); err != nil {
					return err
				}
			}

			switch {
			case strings.TrimSpace(phase) == "":
				return fmt.Errorf("--phase is required")
			case week <= 0:
				return fmt.Errorf("--week must be 1 or greater")
			case progress.Value() == nil && expected.Value() == nil:
				return fmt.Errorf("at least one of --progress or --expected is required")
			}

			snap := &domain.PhaseSnapshot{
				ProjectID:        p.ID,
				PhaseName:        phase,
				WeekIndex:        week,
				Progress:         progress.Value(),
				ExpectedProgress: expected.Value(),
			}
			if err := app.recordSnapshotUseCase().Record(ctx, snap); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s week %d for %s\n", snap.PhaseName, snap.WeekIndex, p.DisplayID())
			if _, ok := app.Curves.Catalog().Lookup(snap.PhaseName); !ok {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render(
					fmt.Sprintf("Phase %q is not in the catalog; the reading will be ignored.", snap.PhaseName)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Project short ID or UUID")
	cmd.Flags().StringVar(&phase, "phase", "", "Phase name from the catalog")
	cmd.Flags().IntVar(&week, "week", 0, "Week index (1 = project start week)")
	cmd.Flags().Var(&progress, "progress", "Actual progress of the phase (0-100)")
	cmd.Flags().Var(&expected, "expected", "Expected progress of the phase (0-100)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newSnapshotListCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded snapshots of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			snaps, err := app.Snapshots.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatSnapshotList(p, snaps))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Project short ID or UUID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
