package cli

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// dateValue is a YYYY-MM-DD flag. The zero value is unset.
type dateValue struct {
	t *time.Time
}

var _ pflag.Value = (*dateValue)(nil)

func (d *dateValue) String() string {
	if d.t == nil {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d *dateValue) Set(s string) error {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	d.t = &t
	return nil
}

func (d *dateValue) Type() string { return "date" }

// Time returns the parsed date, or nil when the flag was not given.
func (d *dateValue) Time() *time.Time { return d.t }

// percentValue is a percentage flag in [0,100]. Absence is distinct from 0.
type percentValue struct {
	v *float64
}

var _ pflag.Value = (*percentValue)(nil)

func (p *percentValue) String() string {
	if p.v == nil {
		return ""
	}
	return strconv.FormatFloat(*p.v, 'f', -1, 64)
}

func (p *percentValue) Set(s string) error {
	v, err := parsePercent(s)
	if err != nil {
		return err
	}
	p.v = &v
	return nil
}

func (p *percentValue) Type() string { return "percent" }

func (p *percentValue) Value() *float64 { return p.v }

func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("enter a number between 0 and 100")
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("percentage %v is outside 0-100", v)
	}
	return v, nil
}

// statusValue restricts a flag to the known project statuses.
type statusValue struct {
	s domain.ProjectStatus
}

var _ pflag.Value = (*statusValue)(nil)

func (v *statusValue) String() string { return string(v.s) }

func (v *statusValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidProjectStatuses[s] {
		return fmt.Errorf("must be one of %s", strings.Join(projectStatusNames(), ", "))
	}
	v.s = domain.ProjectStatus(s)
	return nil
}

func (v *statusValue) Type() string { return "status" }

func projectStatusNames() []string {
	names := make([]string, 0, len(domain.ValidProjectStatuses))
	for name := range domain.ValidProjectStatuses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
