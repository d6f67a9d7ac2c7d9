package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scurve/internal/contract"
	"github.com/alexanderramin/scurve/internal/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	curveBarWidth   = 12
	ganttSpanCell   = "■"
	ganttIdleCell   = "·"
	currentWeekMark = "◀ now"
)

// FormatCurve renders a project's S-curve as a weekly table followed by the
// phase Gantt bars. Insufficient charts render a placeholder instead.
func FormatCurve(resp *contract.CurveResponse) string {
	chart := resp.Chart
	title := fmt.Sprintf("%s [%s]", resp.Project.Name, resp.Project.DisplayID())

	if chart.Insufficient {
		var b strings.Builder
		b.WriteString(Bold(title) + "\n\n")
		b.WriteString(Dim("Not enough planning data to draw a curve.") + "\n")
		b.WriteString(Dim("Give tasks a type and planned start/end dates.") + "\n")
		b.WriteString(Warnings(resp.Warnings))
		return RenderBox("Progress Curve", b.String())
	}

	var b strings.Builder
	b.WriteString(Bold(title) + "\n")
	b.WriteString(formatCurveHeadline(resp) + "\n\n")
	b.WriteString(formatWeeklyTable(chart))
	b.WriteString("\n")
	b.WriteString(Header("Phases") + "\n")
	b.WriteString(FormatPhaseBars(chart))
	b.WriteString(Warnings(resp.Warnings))

	return RenderBox("Progress Curve", b.String())
}

func formatCurveHeadline(resp *contract.CurveResponse) string {
	chart := resp.Chart
	parts := []string{
		fmt.Sprintf("%s → %s", ShortDate(chart.ProjectStart), ShortDate(chart.ProjectEnd)),
		fmt.Sprintf("%d weeks", chart.TotalWeeks),
	}
	if chart.CurrentWeekLabel != nil {
		parts = append(parts, StyleNow.Render(*chart.CurrentWeekLabel))
	}
	if resp.Risk != nil {
		parts = append(parts, RiskIndicator(resp.Risk.Level), Deviation(resp.Risk.DeviationPts))
	}
	if resp.Cached {
		parts = append(parts, Dim("(cached)"))
	}
	return strings.Join(parts, Dim("  │  "))
}

func formatWeeklyTable(chart progress.ChartData) string {
	headers := []string{"WEEK", "START", "PLANNED", "", "ACTUAL", "", ""}
	rows := make([][]string, 0, len(chart.WeeklySeries))

	for _, p := range chart.WeeklySeries {
		label := p.WeekLabel
		marker := ""
		if p.WeekIndex == chart.CurrentWeek {
			label = StyleNow.Render(label)
			marker = StyleNow.Render(currentWeekMark)
		}
		rows = append(rows, []string{
			label,
			p.WeekStart.Format(dateLayout),
			StyleBlue.Render(Pct(p.PlannedPercent)),
			RenderSeriesBar(p.PlannedPercent/100, curveBarWidth, ColorPlanned),
			StyleGreen.Render(Pct(p.ActualPercent)),
			RenderSeriesBar(p.ActualPercent/100, curveBarWidth, ColorActual),
			marker,
		})
	}
	return RenderTable(headers, rows, 2, 4)
}

// FormatPhaseBars renders one Gantt row per phase: a cell per week, filled
// where the phase is scheduled. The current week column is highlighted.
func FormatPhaseBars(chart progress.ChartData) string {
	if len(chart.PhaseBars) == 0 {
		return Dim("No scheduled phases.") + "\n"
	}

	nameWidth := 0
	for _, bar := range chart.PhaseBars {
		if w := lipgloss.Width(bar.Phase); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	for _, bar := range chart.PhaseBars {
		name := bar.Phase + strings.Repeat(" ", nameWidth-lipgloss.Width(bar.Phase))
		weight := fmt.Sprintf("%5.1f%%", bar.Weight)
		if bar.Informational {
			name = Dim(name)
			weight = Dim("  info")
		}

		b.WriteString(name + "  " + weight + "  ")
		b.WriteString(ganttCells(chart, bar))
		b.WriteString("  " + Dim(fmt.Sprintf("W%d-W%d", bar.StartWeekIndex, bar.EndWeekIndex)))
		b.WriteString("\n")
	}
	return b.String()
}

func ganttCells(chart progress.ChartData, bar progress.PhaseBar) string {
	var b strings.Builder
	for w := 1; w <= chart.TotalWeeks; w++ {
		inSpan := w >= bar.StartWeekIndex && w <= bar.EndWeekIndex
		cell := ganttIdleCell
		style := StyleDim
		if inSpan {
			cell = ganttSpanCell
			style = StyleBlue
			if bar.Informational {
				style = StylePurple
			}
		}
		if w == chart.CurrentWeek {
			style = StyleNow
		}
		b.WriteString(style.Render(cell))
	}
	return b.String()
}
