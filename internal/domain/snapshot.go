package domain

import "time"

// PhaseSnapshot is a weekly progress reading for one phase of a project.
// Progress and ExpectedProgress are percentages; either may be absent.
type PhaseSnapshot struct {
	ID               string
	ProjectID        string
	PhaseName        string
	WeekIndex        int
	Progress         *float64
	ExpectedProgress *float64
	RecordedAt       time.Time
}

// HasProgress reports whether an actual progress reading was registered.
func (s *PhaseSnapshot) HasProgress() bool {
	return s.Progress != nil
}

// HasExpected reports whether an expected progress reading was registered.
func (s *PhaseSnapshot) HasExpected() bool {
	return s.ExpectedProgress != nil
}
