package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/scurve/internal/catalog"
	"github.com/alexanderramin/scurve/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func fg(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

// formTheme styles huh forms with the formatter palette: orange accents
// when focused, dim when blurred.
func formTheme() *huh.Theme {
	t := huh.ThemeBase()

	f := &t.Focused
	f.Title = fg(formatter.ColorHeader).Bold(true)
	f.Description = fg(formatter.ColorDim)
	f.SelectSelector = fg(formatter.ColorHeader)
	f.SelectedOption = fg(formatter.ColorGreen)
	f.UnselectedOption = fg(formatter.ColorFg)
	f.FocusedButton = fg(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	f.BlurredButton = fg(formatter.ColorDim).Padding(0, 1)
	f.ErrorMessage = fg(formatter.ColorRed)
	f.TextInput.Cursor = fg(formatter.ColorHeader)
	f.TextInput.Prompt = fg(formatter.ColorHeader)
	f.TextInput.Text = fg(formatter.ColorFg)
	f.TextInput.Placeholder = fg(formatter.ColorDim)

	dim := fg(formatter.ColorDim)
	b := &t.Blurred
	b.Title, b.SelectSelector, b.SelectedOption, b.UnselectedOption = dim, dim, dim, dim
	b.TextInput.Prompt, b.TextInput.Text = dim, dim

	return t
}

// snapshotForm holds the raw text of one weekly phase reading while the
// user edits it. Values already given as flags are pre-filled.
type snapshotForm struct {
	Phase    string
	Week     string
	Progress string
	Expected string
}

func newSnapshotForm(phase string, week int, progress, expected *percentValue) *snapshotForm {
	f := &snapshotForm{Phase: phase, Progress: progress.String(), Expected: expected.String()}
	if week > 0 {
		f.Week = strconv.Itoa(week)
	}
	return f
}

// form lays out the reading in one group. Only weighted phases are offered;
// informational phases never move the curve.
func (f *snapshotForm) form(cat catalog.Catalog) *huh.Form {
	var options []huh.Option[string]
	for _, def := range cat.Ordered() {
		if def.Informational {
			continue
		}
		label := fmt.Sprintf("%s (%.0f%%)", def.Name, def.NominalWeight)
		options = append(options, huh.NewOption(label, def.Name))
	}
	if f.Phase == "" && len(options) > 0 {
		f.Phase = options[0].Value
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Phase").Options(options...).Value(&f.Phase),
		huh.NewInput().Title("Week").Description("1 is the project's first week").
			Placeholder("1").Value(&f.Week).Validate(validateWeek),
		huh.NewInput().Title("Progress %").Placeholder("blank for none").
			Value(&f.Progress).Validate(validateOptionalPercent),
		huh.NewInput().Title("Expected %").Placeholder("blank for none").
			Value(&f.Expected).Validate(func(s string) error {
				if strings.TrimSpace(s) == "" && strings.TrimSpace(f.Progress) == "" {
					return fmt.Errorf("enter progress, expected, or both")
				}
				return validateOptionalPercent(s)
			}),
	)).WithTheme(formTheme()).WithShowHelp(false)
}

// apply copies the edited values back into the command's flag variables.
func (f *snapshotForm) apply(phase *string, week *int, progress, expected *percentValue) error {
	w, err := strconv.Atoi(strings.TrimSpace(f.Week))
	if err != nil {
		return fmt.Errorf("week: %w", err)
	}
	p, err := parseOptionalPercent(f.Progress)
	if err != nil {
		return fmt.Errorf("progress: %w", err)
	}
	e, err := parseOptionalPercent(f.Expected)
	if err != nil {
		return fmt.Errorf("expected: %w", err)
	}
	*phase, *week, progress.v, expected.v = f.Phase, w, p, e
	return nil
}

func validateWeek(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return fmt.Errorf("enter a week number of 1 or more")
	}
	return nil
}

// validateOptionalPercent accepts blank or a number in [0,100].
func validateOptionalPercent(s string) error {
	_, err := parseOptionalPercent(s)
	return err
}

// parseOptionalPercent returns nil for blank input.
func parseOptionalPercent(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := parsePercent(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
