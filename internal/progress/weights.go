package progress

import "github.com/alexanderramin/scurve/internal/catalog"

// PhaseWeight is a phase's share of the project after renormalizing over
// the phases actually present.
type PhaseWeight struct {
	Phase      string
	Order      int
	Weight     float64
	Cumulative float64
}

// Weights is the distributed weight table in catalog order.
type Weights struct {
	items []PhaseWeight
	total float64
}

// DistributeWeights renormalizes nominal weights over the scheduled phases
// so that they sum to 100. When only zero-weight phases are present every
// weight is zero.
func DistributeWeights(s Schedule, cat catalog.Catalog) Weights {
	var nominal float64
	for _, r := range s.ranges {
		nominal += nominalWeight(cat, r.Phase)
	}

	var w Weights
	var running float64
	for _, r := range s.ranges {
		var share float64
		if nominal > 0 {
			share = nominalWeight(cat, r.Phase) / nominal * 100
		}
		running += share
		w.items = append(w.items, PhaseWeight{
			Phase:      r.Phase,
			Order:      r.Order,
			Weight:     share,
			Cumulative: running,
		})
	}
	w.total = running
	return w
}

func nominalWeight(cat catalog.Catalog, phase string) float64 {
	def, ok := cat.Lookup(phase)
	if !ok {
		return 0
	}
	return def.EffectiveWeight()
}

// Items returns the weight rows in catalog order.
func (w Weights) Items() []PhaseWeight {
	out := make([]PhaseWeight, len(w.items))
	copy(out, w.items)
	return out
}

// Weight returns the individual distributed weight of phase (0 if absent).
func (w Weights) Weight(phase string) float64 {
	for _, it := range w.items {
		if it.Phase == phase {
			return it.Weight
		}
	}
	return 0
}

// Cumulative returns the running weight up to and including phase.
func (w Weights) Cumulative(phase string) float64 {
	for _, it := range w.items {
		if it.Phase == phase {
			return it.Cumulative
		}
	}
	return 0
}

// Total is the summed weight of all scheduled phases: 100, or 0 when no
// weighted phase is present.
func (w Weights) Total() float64 {
	return w.total
}

// ZeroWeight reports whether phases are present but none of them carries
// weight, which usually means only informational phases have tasks.
func (w Weights) ZeroWeight() bool {
	return len(w.items) > 0 && w.total == 0
}
