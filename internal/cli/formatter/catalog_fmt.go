package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scurve/internal/catalog"
)

// FormatCatalog renders the effective phase table. Nominal weights are shown
// as configured; per-project weights are rescaled over scheduled phases.
func FormatCatalog(cat catalog.Catalog, source string) string {
	headers := []string{"#", "PHASE", "WEIGHT", "MATCHES"}
	rows := make([][]string, 0, len(cat.Phases))

	var total float64
	for _, def := range cat.Ordered() {
		weight := fmt.Sprintf("%.1f", def.EffectiveWeight())
		if def.Informational {
			weight = Dim("info")
		}
		total += def.EffectiveWeight()
		rows = append(rows, []string{
			fmt.Sprintf("%d", def.Order),
			Bold(def.Name),
			weight,
			Dim(strings.Join(def.TaskTypeMatchers, ", ")),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows, 0, 2))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Total nominal weight %.1f  ·  source: %s", total, source)) + "\n")
	return RenderBox("Phase Catalog", b.String())
}
