package cli

import (
	"fmt"

	"github.com/alexanderramin/scurve/internal/cli/formatter"
	"github.com/alexanderramin/scurve/internal/contract"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var projects []string
	var all bool
	var now dateValue
	var concurrency int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show portfolio risk, most urgent project first",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewStatusRequest()
			req.ProjectScope = projects
			req.IncludeArchived = all
			req.Now = now.Time()
			if cmd.Flags().Changed("concurrency") {
				req.Concurrency = concurrency
			}

			resp, err := app.statusUseCase().GetStatus(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(resp))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&projects, "project", nil, "Limit to these project short IDs or UUIDs")
	cmd.Flags().BoolVar(&all, "all", false, "Include archived projects")
	cmd.Flags().Var(&now, "now", "Reference date for the current week (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Maximum curves computed in parallel")

	return cmd
}
