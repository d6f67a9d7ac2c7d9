package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scurve/internal/cli/formatter"
	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects", "p"},
		Short:   "Manage projects",
	}
	cmd.AddCommand(
		newProjectCreateCmd(app),
		newProjectListCmd(app),
		newProjectUpdateCmd(app),
		newProjectArchiveCmd(app),
		newProjectDeleteCmd(app),
	)
	return cmd
}

func newProjectCreateCmd(app *App) *cobra.Command {
	var name, shortID string

	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"add"},
		Short:   "Create a new project",
		Example: `  scurve project create --id ERP01 --name "ERP Rollout"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{ShortID: shortID, Name: name}
			if err := app.Projects.Create(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s [%s]\n", p.Name, p.ShortID)
			return nil
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "short ID, 3-6 letters then 2-4 digits (e.g. ERP01)")
	cmd.Flags().StringVar(&name, "name", "", "project name")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context(), all)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include archived projects")
	return cmd
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var (
		name, shortID string
		status        statusValue
	)

	cmd := newProjectRefCmd(app, "update PROJECT", "Rename a project, change its short ID or status",
		func(cmd *cobra.Command, p *domain.Project) (string, error) {
			flags := cmd.Flags()
			if !flags.Changed("id") && !flags.Changed("name") && !flags.Changed("status") {
				return "", fmt.Errorf("nothing to update: pass --id, --name or --status")
			}
			if flags.Changed("id") {
				p.ShortID = shortID
			}
			if flags.Changed("name") {
				p.Name = name
			}
			if flags.Changed("status") {
				p.Status = status.s
			}
			if err := app.Projects.Update(cmd.Context(), p); err != nil {
				return "", err
			}
			return fmt.Sprintf("Updated project %s [%s]", p.Name, p.ShortID), nil
		})

	cmd.Flags().StringVar(&shortID, "id", "", "new short ID")
	cmd.Flags().StringVar(&name, "name", "", "new project name")
	cmd.Flags().Var(&status, "status", "project status ("+strings.Join(projectStatusNames(), "|")+")")
	_ = cmd.RegisterFlagCompletionFunc("status", cobra.FixedCompletions(projectStatusNames(), cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func newProjectArchiveCmd(app *App) *cobra.Command {
	return newProjectRefCmd(app, "archive PROJECT", "Archive a project so it leaves portfolio status",
		func(cmd *cobra.Command, p *domain.Project) (string, error) {
			if err := app.Projects.Archive(cmd.Context(), p.ID); err != nil {
				return "", err
			}
			return "Archived project " + p.DisplayID(), nil
		})
}

func newProjectDeleteCmd(app *App) *cobra.Command {
	var force bool

	cmd := newProjectRefCmd(app, "delete PROJECT", "Delete a project with its tasks and snapshots",
		func(cmd *cobra.Command, p *domain.Project) (string, error) {
			if err := app.Projects.Delete(cmd.Context(), p.ID, force); err != nil {
				return "", err
			}
			return "Deleted project " + p.DisplayID(), nil
		})
	cmd.Aliases = []string{"remove", "rm"}
	cmd.Flags().BoolVar(&force, "force", false, "delete even if the project is not archived")
	return cmd
}

// newProjectRefCmd builds a command taking one project reference. run
// receives the resolved project and returns the confirmation line.
func newProjectRefCmd(app *App, use, short string, run func(*cobra.Command, *domain.Project) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:               use,
		Short:             short,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProjectIDs(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			msg, err := run(cmd, p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

// completeProjectIDs offers short IDs, with the project name as description.
func completeProjectIDs(app *App) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		projects, err := app.Projects.List(cmd.Context(), true)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var out []string
		for _, p := range projects {
			id := p.DisplayID()
			if strings.HasPrefix(strings.ToUpper(id), strings.ToUpper(toComplete)) {
				out = append(out, id+"\t"+p.Name)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
