package formatter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = '█'
	emptyBlock  = '░'
	minBarWidth = 2
)

// completionColor shades a bar by how far along it is: red below a third,
// yellow below two thirds, green above.
func completionColor(frac float64) lipgloss.Color {
	switch {
	case frac < 1.0/3:
		return ColorRed
	case frac < 2.0/3:
		return ColorYellow
	default:
		return ColorGreen
	}
}

// RenderProgress renders a bracketed bar followed by the percentage, e.g.
// "[████░░░░]  50%". frac is clamped to [0,1].
func RenderProgress(frac float64, width int) string {
	frac = clamp01(frac)
	bar := RenderSeriesBar(frac, width, completionColor(frac))
	return fmt.Sprintf("[%s] %3.0f%%", bar, frac*100)
}

// RenderSeriesBar renders a bar in a fixed series color, without text.
func RenderSeriesBar(frac float64, width int, color lipgloss.Color) string {
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(width, minBarWidth)),
		progress.WithoutPercentage(),
		progress.WithFillCharacters(filledBlock, emptyBlock),
	)
	return bar.ViewAs(clamp01(frac))
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
