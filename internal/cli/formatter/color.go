package formatter

import (
	"strings"

	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette shared by every view. Planned and actual series reuse the blue
// and green entries so tables and bars agree.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")

	ColorPlanned = ColorBlue
	ColorActual  = ColorGreen
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleNow    = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

// RiskStyle colors by risk level; unclassified projects render dim.
func RiskStyle(risk domain.RiskLevel) lipgloss.Style {
	switch risk {
	case domain.RiskCritical:
		return StyleRed
	case domain.RiskAtRisk:
		return StyleYellow
	case domain.RiskOnTrack:
		return StyleGreen
	default:
		return StyleDim
	}
}

var riskLabels = map[domain.RiskLevel]string{
	domain.RiskCritical: "● CRITICAL",
	domain.RiskAtRisk:   "● AT RISK",
	domain.RiskOnTrack:  "● ON TRACK",
}

// RiskIndicator renders a pill such as "● CRITICAL". An empty level means the
// project had too little data to classify.
func RiskIndicator(risk domain.RiskLevel) string {
	label, ok := riskLabels[risk]
	if !ok {
		label = "○ NO DATA"
	}
	return RiskStyle(risk).Render(label)
}

// Header upper-cases text and underlines it to its display width, which
// differs from its byte length for accented phase names.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return StyleHeader.Render(upper) + "\n" + StyleDim.Render(line)
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
