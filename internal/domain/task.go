package domain

import "time"

// Task is a scheduled unit of project work. Only the type name and the
// planning dates feed the progress curve.
type Task struct {
	ID           string
	ProjectID    string
	Title        string
	TypeName     *string
	PlannedStart *time.Time
	PlannedEnd   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Participates reports whether the task can be classified into a phase:
// it needs a type and at least one planning date.
func (t *Task) Participates() bool {
	if t.TypeName == nil || *t.TypeName == "" {
		return false
	}
	return t.PlannedStart != nil || t.PlannedEnd != nil
}

// FullyPlanned reports whether both planning dates are set.
func (t *Task) FullyPlanned() bool {
	return t.PlannedStart != nil && t.PlannedEnd != nil
}
