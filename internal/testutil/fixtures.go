package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/google/uuid"
)

var testShortIDCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithShortID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ShortID = id
	}
}

func defaultShortID(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Project{
		ID:        uuid.New().String(),
		ShortID:   defaultShortID(name),
		Name:      name,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskType(typeName string) TaskOption {
	return func(t *domain.Task) {
		t.TypeName = &typeName
	}
}

// WithPlannedDates sets both planning dates as calendar dates.
func WithPlannedDates(start, end time.Time) TaskOption {
	return func(t *domain.Task) {
		t.PlannedStart = &start
		t.PlannedEnd = &end
	}
}

func WithPlannedStart(start time.Time) TaskOption {
	return func(t *domain.Task) {
		t.PlannedStart = &start
	}
}

func WithPlannedEnd(end time.Time) TaskOption {
	return func(t *domain.Task) {
		t.PlannedEnd = &end
	}
}

func NewTestTask(projectID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Task{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Snapshot options
type SnapshotOption func(*domain.PhaseSnapshot)

func WithProgress(v float64) SnapshotOption {
	return func(s *domain.PhaseSnapshot) {
		s.Progress = &v
	}
}

func WithExpectedProgress(v float64) SnapshotOption {
	return func(s *domain.PhaseSnapshot) {
		s.ExpectedProgress = &v
	}
}

func WithRecordedAt(at time.Time) SnapshotOption {
	return func(s *domain.PhaseSnapshot) {
		s.RecordedAt = at
	}
}

func NewTestSnapshot(projectID, phase string, week int, opts ...SnapshotOption) *domain.PhaseSnapshot {
	s := &domain.PhaseSnapshot{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		PhaseName:  phase,
		WeekIndex:  week,
		RecordedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Date returns midnight UTC for the given calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
