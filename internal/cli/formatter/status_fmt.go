package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scurve/internal/contract"
)

const statusProgressBarWidth = 10

// FormatStatus formats a StatusResponse into a styled portfolio dashboard,
// most urgent project first.
func FormatStatus(resp *contract.StatusResponse) string {
	var b strings.Builder

	headers := []string{"ID", "NAME", "WEEK", "PLANNED", "ACTUAL", "DEVIATION", "RISK"}
	rows := make([][]string, 0, len(resp.Projects))

	for _, p := range resp.Projects {
		if p.Insufficient {
			rows = append(rows, []string{
				p.ShortID,
				Bold(p.ProjectName),
				Dim("--"),
				Dim("--"),
				Dim("--"),
				Dim("--"),
				RiskIndicator(""),
			})
			continue
		}
		rows = append(rows, []string{
			p.ShortID,
			Bold(p.ProjectName),
			fmt.Sprintf("%d/%d", p.CurrentWeek, p.TotalWeeks),
			Pct(p.PlannedPercent),
			RenderProgress(p.ActualPercent/100, statusProgressBarWidth),
			Deviation(p.DeviationPts),
			RiskIndicator(p.RiskLevel),
		})
	}

	if len(rows) == 0 {
		b.WriteString(Dim("No active projects.") + "\n")
	} else {
		b.WriteString(RenderTable(headers, rows, 3, 5))
	}

	summary := resp.Summary
	b.WriteString("\n")

	criticalPart := StyleRed.Render(fmt.Sprintf("%d Critical", summary.CountsCritical))
	atRiskPart := StyleYellow.Render(fmt.Sprintf("%d At Risk", summary.CountsAtRisk))
	onTrackPart := StyleGreen.Render(fmt.Sprintf("%d On Track", summary.CountsOnTrack))

	summaryLine := fmt.Sprintf("%s, %s, %s", criticalPart, atRiskPart, onTrackPart)
	if summary.CountsInsufficient > 0 {
		summaryLine += ", " + Dim(fmt.Sprintf("%d without data", summary.CountsInsufficient))
	}
	b.WriteString(summaryLine + "\n")
	b.WriteString(Dim("as of "+summary.GeneratedAt.Format(dateLayout)) + "\n")

	b.WriteString(Warnings(resp.Warnings))

	return RenderBox("Status", b.String())
}
