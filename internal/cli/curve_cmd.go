package cli

import (
	"fmt"

	"github.com/alexanderramin/scurve/internal/cli/formatter"
	"github.com/alexanderramin/scurve/internal/contract"
	"github.com/spf13/cobra"
)

func newCurveCmd(app *App) *cobra.Command {
	var now dateValue
	var noRedistribute bool

	cmd := &cobra.Command{
		Use:   "curve PROJECT",
		Short: "Show a project's planned vs actual progress curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			req := contract.NewCurveRequest(p.ID)
			req.Now = now.Time()
			if cmd.Flags().Changed("no-redistribute") {
				redistribute := !noRedistribute
				req.Redistribute = &redistribute
			}

			resp, err := app.curveUseCase().GetCurve(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatCurve(resp))
			return nil
		},
	}

	cmd.Flags().Var(&now, "now", "Reference date for the current week (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&noRedistribute, "no-redistribute", false, "Count phases without readings as 0% instead of spreading their weight")

	return cmd
}
