package service

import (
	"time"

	"github.com/alexanderramin/scurve/internal/catalog"
	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/alexanderramin/scurve/internal/progress"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mitchellh/hashstructure/v2"
)

const defaultCurveCacheSize = 128

// curveKey is everything a chart depends on. Times are flattened to Unix
// nanoseconds and absent values carry explicit flags so that distinct
// inputs never hash alike.
type curveKey struct {
	Tasks        []taskKey
	Snapshots    []snapshotKey
	Catalog      catalog.Catalog
	Redistribute bool
	// Day is the calendar day of the reference time; the chart depends on
	// the clock only through the current week.
	Day string
}

type taskKey struct {
	TypeName string
	HasType  bool
	Start    int64
	HasStart bool
	End      int64
	HasEnd   bool
}

type snapshotKey struct {
	Phase       string
	Week        int
	Progress    float64
	HasProgress bool
	Expected    float64
	HasExpected bool
	RecordedAt  int64
}

func newCurveKey(tasks []domain.Task, snaps []domain.PhaseSnapshot, cat catalog.Catalog, redistribute bool, now time.Time) curveKey {
	k := curveKey{
		Tasks:        make([]taskKey, len(tasks)),
		Snapshots:    make([]snapshotKey, len(snaps)),
		Catalog:      cat,
		Redistribute: redistribute,
		Day:          now.Format("2006-01-02"),
	}
	for i, t := range tasks {
		tk := taskKey{}
		if t.TypeName != nil {
			tk.TypeName, tk.HasType = *t.TypeName, true
		}
		if t.PlannedStart != nil {
			tk.Start, tk.HasStart = t.PlannedStart.UnixNano(), true
		}
		if t.PlannedEnd != nil {
			tk.End, tk.HasEnd = t.PlannedEnd.UnixNano(), true
		}
		k.Tasks[i] = tk
	}
	for i, s := range snaps {
		sk := snapshotKey{Phase: s.PhaseName, Week: s.WeekIndex, RecordedAt: s.RecordedAt.UnixNano()}
		if s.Progress != nil {
			sk.Progress, sk.HasProgress = *s.Progress, true
		}
		if s.ExpectedProgress != nil {
			sk.Expected, sk.HasExpected = *s.ExpectedProgress, true
		}
		k.Snapshots[i] = sk
	}
	return k
}

func (k curveKey) hash() (uint64, error) {
	return hashstructure.Hash(k, hashstructure.FormatV2, nil)
}

// curveCache memoizes computed charts by input hash, evicting the least
// recently used chart when full. Charts go in and come out as clones, so
// callers may modify what they get.
type curveCache struct {
	max     int
	entries *lru.Cache[uint64, progress.ChartData]
}

func newCurveCache(max int) *curveCache {
	if max <= 0 {
		max = defaultCurveCacheSize
	}
	entries, err := lru.New[uint64, progress.ChartData](max)
	if err != nil {
		panic(err) // only for a non-positive size
	}
	return &curveCache{max: max, entries: entries}
}

func (c *curveCache) get(key uint64) (progress.ChartData, bool) {
	chart, ok := c.entries.Get(key)
	if !ok {
		return progress.ChartData{}, false
	}
	return chart.Clone(), true
}

func (c *curveCache) put(key uint64, chart progress.ChartData) {
	c.entries.Add(key, chart.Clone())
}

func (c *curveCache) len() int {
	return c.entries.Len()
}
