package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a project with its tasks and snapshots from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.importProjectUseCase().ImportProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported project %s [%s]: %d tasks, %d snapshots\n",
				result.Project.Name, result.Project.ShortID,
				result.TaskCount, result.SnapshotCount)
			return nil
		},
	}
}
