package progress

import "time"

const day = 24 * time.Hour

// Week is one 7-day bucket of the project timeline.
type Week struct {
	Index int
	Start time.Time
}

// Buckets splits the project span into weeks, 1-based from the project's
// earliest phase start.
type Buckets struct {
	Start time.Time
	End   time.Time
	weeks []Week
}

// NewBuckets walks from the schedule's start to its end in 7-day steps,
// inclusive of the final partial week. An empty schedule has zero weeks.
func NewBuckets(s Schedule) Buckets {
	start, end, ok := s.Span()
	if !ok {
		return Buckets{}
	}
	b := Buckets{Start: start, End: end}
	for d, i := start, 1; !d.After(end); d, i = d.AddDate(0, 0, 7), i+1 {
		b.weeks = append(b.weeks, Week{Index: i, Start: d})
	}
	return b
}

// Weeks returns the ordered buckets.
func (b Buckets) Weeks() []Week {
	out := make([]Week, len(b.weeks))
	copy(out, b.weeks)
	return out
}

// Total is the number of weeks in the project.
func (b Buckets) Total() int {
	return len(b.weeks)
}

// WeekIndex maps a date onto its 1-based week. Dates before the project
// start yield indices below 1; dates after the end exceed Total.
func (b Buckets) WeekIndex(date time.Time) int {
	days := int(civilDate(date).Sub(b.Start) / day)
	return floorDiv(days, 7) + 1
}

// CurrentWeek is WeekIndex(now) clamped into [1, Total]. It returns 0 when
// there are no weeks.
func (b Buckets) CurrentWeek(now time.Time) int {
	if b.Total() == 0 {
		return 0
	}
	return b.Clamp(b.WeekIndex(now))
}

// Clamp bounds a week index into [1, Total].
func (b Buckets) Clamp(week int) int {
	if week < 1 {
		return 1
	}
	if week > b.Total() {
		return b.Total()
	}
	return week
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
