package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tableColGap = 2

// RenderTable lays out rows under styled headers and a rule line. Widths
// are measured with lipgloss.Width so styled cells align. Column indexes
// listed in rightAligned are padded on the left, for numeric columns.
// Trailing padding is never written.
func RenderTable(headers []string, rows [][]string, rightAligned ...int) string {
	cols := len(headers)
	if cols == 0 {
		return ""
	}

	right := make([]bool, cols)
	for _, i := range rightAligned {
		if i >= 0 && i < cols {
			right[i] = true
		}
	}

	widths := make([]int, cols)
	measure := func(cells []string) {
		for i := 0; i < cols && i < len(cells); i++ {
			widths[i] = max(widths[i], lipgloss.Width(cells[i]))
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		var line strings.Builder
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", max(0, widths[i]-lipgloss.Width(cell)))
			if style != nil {
				cell = style(cell)
			}
			if i > 0 {
				line.WriteString(strings.Repeat(" ", tableColGap))
			}
			if right[i] {
				line.WriteString(pad + cell)
			} else {
				line.WriteString(cell + pad)
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })

	rules := make([]string, cols)
	for i, w := range widths {
		rules[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(rules, nil)

	for _, row := range rows {
		writeRow(row, nil)
	}
	return b.String()
}
