package cli

import (
	"fmt"

	"github.com/alexanderramin/scurve/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the effective phase catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := app.Curves.Catalog()

			if asYAML {
				data, err := cat.Marshal()
				if err != nil {
					return fmt.Errorf("encoding catalog: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			source := app.CatalogSource
			if source == "" {
				source = "built-in"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatCatalog(cat, source))
			for _, err := range cat.Validate() {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render("  WARNING: "+err.Error()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print as YAML, suitable for SCURVE_CATALOG")

	return cmd
}
