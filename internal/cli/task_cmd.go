package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scurve/internal/cli/formatter"
	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage project tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var projectRef, title, typeName string
	var start, end dateValue

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}

			t := &domain.Task{
				ProjectID:    p.ID,
				Title:        title,
				PlannedStart: start.Time(),
				PlannedEnd:   end.Time(),
			}
			if tn := strings.TrimSpace(typeName); tn != "" {
				t.TypeName = &tn
			}
			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added task %q to %s\n", t.Title, p.DisplayID())
			if !t.Participates() {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Task has no type or dates; it will not count toward the curve."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Project short ID or UUID")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&typeName, "type", "", "Task type, matched against the phase catalog")
	cmd.Flags().Var(&start, "start", "Planned start date (YYYY-MM-DD)")
	cmd.Flags().Var(&end, "end", "Planned end date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's tasks and the phases they map to",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatTaskList(p, tasks, app.Curves.Catalog()))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Project short ID or UUID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
