package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testDay = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func TestTaskParticipates(t *testing.T) {
	cases := []struct {
		name string
		task Task
		want bool
	}{
		{"no type", Task{PlannedStart: &testDay}, false},
		{"empty type", Task{TypeName: strPtr(""), PlannedStart: &testDay}, false},
		{"no dates", Task{TypeName: strPtr("Desenvolvimento")}, false},
		{"start only", Task{TypeName: strPtr("Desenvolvimento"), PlannedStart: &testDay}, true},
		{"end only", Task{TypeName: strPtr("Desenvolvimento"), PlannedEnd: &testDay}, true},
		{"both", Task{TypeName: strPtr("Desenvolvimento"), PlannedStart: &testDay, PlannedEnd: &testDay}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.task.Participates())
		})
	}
}

func TestTaskFullyPlanned(t *testing.T) {
	assert.False(t, (&Task{PlannedStart: &testDay}).FullyPlanned())
	assert.False(t, (&Task{PlannedEnd: &testDay}).FullyPlanned())
	assert.True(t, (&Task{PlannedStart: &testDay, PlannedEnd: &testDay}).FullyPlanned())
}

func TestSnapshotPresence(t *testing.T) {
	v := 40.0
	s := PhaseSnapshot{Progress: &v}
	assert.True(t, s.HasProgress())
	assert.False(t, s.HasExpected())
}

func TestPtrOrNil(t *testing.T) {
	assert.Nil(t, PtrOrNil(""))
	assert.Equal(t, "Desenvolvimento", *PtrOrNil("Desenvolvimento"))
	assert.Nil(t, PtrOrNil(0.0))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "paused", Coalesce("", "paused", "active"))
	assert.Equal(t, ProjectActive, Coalesce(ProjectStatus(""), ProjectActive))
	assert.Zero(t, Coalesce[int]())
}
