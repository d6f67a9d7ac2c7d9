// Package catalog holds the phase table that drives the progress curve:
// which phases exist, their nominal weights and the task types that belong
// to each of them.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// PhaseDefinition is one row of the phase table.
type PhaseDefinition struct {
	Name             string   `yaml:"name"`
	Order            int      `yaml:"order"`
	NominalWeight    float64  `yaml:"weight"`
	TaskTypeMatchers []string `yaml:"matchers"`
	// Informational phases show up in the schedule and bars but never carry
	// progress weight. Parse sets it for every phase whose weight is 0.
	Informational bool `yaml:"informational,omitempty"`
}

// Matches reports whether typeName contains any of the phase's matchers.
// Comparison is case-insensitive.
func (d PhaseDefinition) Matches(typeName string) bool {
	lower := strings.ToLower(typeName)
	for _, m := range d.TaskTypeMatchers {
		if m == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// EffectiveWeight is the weight used by the distributor: informational
// phases always count as zero.
func (d PhaseDefinition) EffectiveWeight() float64 {
	if d.Informational || d.NominalWeight < 0 {
		return 0
	}
	return d.NominalWeight
}

// Catalog is an ordered phase table.
type Catalog struct {
	Phases []PhaseDefinition `yaml:"phases"`
}

// New builds a catalog with phases sorted by Order (ties keep input order).
func New(phases ...PhaseDefinition) Catalog {
	sorted := make([]PhaseDefinition, len(phases))
	copy(sorted, phases)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return Catalog{Phases: sorted}
}

// Ordered returns the phases in project sequence.
func (c Catalog) Ordered() []PhaseDefinition {
	return New(c.Phases...).Phases
}

// Lookup finds a phase by exact name.
func (c Catalog) Lookup(name string) (PhaseDefinition, bool) {
	for _, p := range c.Phases {
		if p.Name == name {
			return p, true
		}
	}
	return PhaseDefinition{}, false
}

// Names returns phase names in project sequence.
func (c Catalog) Names() []string {
	ordered := c.Ordered()
	names := make([]string, len(ordered))
	for i, p := range ordered {
		names[i] = p.Name
	}
	return names
}

// Validate returns every problem found in the table.
func (c Catalog) Validate() []error {
	var errs []error
	if len(c.Phases) == 0 {
		return []error{fmt.Errorf("catalog has no phases")}
	}
	seen := make(map[string]bool, len(c.Phases))
	orders := make(map[int]string, len(c.Phases))
	for i, p := range c.Phases {
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Errorf("phases[%d].name is required", i))
			continue
		}
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("phases[%d]: duplicate phase name %q", i, p.Name))
		}
		seen[p.Name] = true
		if other, ok := orders[p.Order]; ok {
			errs = append(errs, fmt.Errorf("phases[%d]: order %d already used by %q", i, p.Order, other))
		} else {
			orders[p.Order] = p.Name
		}
		if p.NominalWeight < 0 {
			errs = append(errs, fmt.Errorf("phases[%d] %q: weight must be >= 0, got %g", i, p.Name, p.NominalWeight))
		}
		if p.Informational && p.NominalWeight != 0 {
			errs = append(errs, fmt.Errorf("phases[%d] %q: informational phase must have weight 0", i, p.Name))
		}
		if len(p.TaskTypeMatchers) == 0 {
			errs = append(errs, fmt.Errorf("phases[%d] %q: at least one matcher is required", i, p.Name))
		}
	}
	return errs
}

// Load reads a YAML phase table from path and validates it.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML phase table and validates it.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}
	// A zero weight marks a phase as informational.
	for i := range c.Phases {
		if c.Phases[i].NominalWeight == 0 && !c.Phases[i].Informational {
			c.Phases[i].Informational = true
		}
	}
	if errs := c.Validate(); len(errs) > 0 {
		return Catalog{}, joinErrors(errs)
	}
	return New(c.Phases...), nil
}

// Marshal encodes the catalog as YAML.
func (c Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(Catalog{Phases: c.Ordered()})
}

func joinErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = "  - " + e.Error()
	}
	return fmt.Errorf("invalid catalog (%d errors):\n%s", len(errs), strings.Join(msgs, "\n"))
}
