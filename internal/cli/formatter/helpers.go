package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/alexanderramin/scurve/internal/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	dateLayout  = "2006-01-02"
	humanLayout = "Jan 2, 2006"
	idPrefixLen = 8
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(1, 2)

// RenderBox frames content in a rounded border, headed by the upper-cased
// title when one is given.
func RenderBox(title, content string) string {
	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// CalendarDay names t relative to now's calendar day: "Today",
// "Yesterday", or an absolute date.
func CalendarDay(t, now time.Time) string {
	switch dayOf(now).Sub(dayOf(t)) {
	case 0:
		return "Today"
	case 24 * time.Hour:
		return "Yesterday"
	default:
		return t.Format(humanLayout)
	}
}

// Elapsed describes how long ago t happened, in minutes or hours within a
// day and as a CalendarDay beyond that. Future times are shown as dates.
func Elapsed(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < 0 || d >= 24*time.Hour:
		return CalendarDay(t, now)
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var statusPills = map[domain.ProjectStatus]struct {
	label string
	style lipgloss.Style
}{
	domain.ProjectActive:   {"● Active", StyleGreen},
	domain.ProjectPaused:   {"○ Paused", StyleYellow},
	domain.ProjectDone:     {"✔ Done", StyleDim},
	domain.ProjectArchived: {"✖ Archived", StyleDim},
}

func StatusPill(status domain.ProjectStatus) string {
	pill, ok := statusPills[status]
	if !ok {
		return StyleDim.Render(string(status))
	}
	return pill.style.Render(pill.label)
}

// IDPrefix dims the leading characters of a UUID, enough to resolve it.
func IDPrefix(id string) string {
	if len(id) > idPrefixLen {
		id = id[:idPrefixLen]
	}
	return StyleDim.Render(id)
}

// ShortDate renders an optional date as YYYY-MM-DD, or a dim "--".
func ShortDate(t *time.Time) string {
	if t == nil {
		return Dim("--")
	}
	return t.Format(dateLayout)
}

func Pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// OptionalPct renders a percentage pointer, or a dim "--" when absent.
func OptionalPct(v *float64) string {
	if v == nil {
		return Dim("--")
	}
	return Pct(*v)
}

// Deviation renders planned minus actual in points, colored by the risk
// thresholds.
func Deviation(pts float64) string {
	return RiskStyle(progress.ClassifyDeviation(pts)).Render(fmt.Sprintf("%+.1f pts", pts))
}

// Warnings renders warning lines, or nothing when there are none.
func Warnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
	}
	return b.String()
}
