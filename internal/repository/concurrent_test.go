package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alexanderramin/scurve/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAccess_ReadDuringWrite verifies that concurrent snapshot reads
// do not fail or observe half-written rows while a writer records a week of
// readings.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()

	projRepo := NewSQLiteProjectRepo(database)
	snapRepo := NewSQLiteSnapshotRepo(database)

	proj := testutil.NewTestProject("ReadWrite")
	require.NoError(t, projRepo.Create(ctx, proj))

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for week := 1; week <= 20; week++ {
			snap := testutil.NewTestSnapshot(proj.ID, "Desenvolvimento", week,
				testutil.WithProgress(float64(week*5)))
			if err := snapRepo.Upsert(ctx, snap); err != nil {
				t.Errorf("writer: upsert week %d: %v", week, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				snaps, err := snapRepo.ListByProject(ctx, proj.ID)
				if err != nil {
					t.Errorf("reader %d: list snapshots: %v", reader, err)
					return
				}
				for _, s := range snaps {
					if s.ID == "" || s.Progress == nil {
						t.Errorf("reader %d: got incomplete snapshot", reader)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	snaps, err := snapRepo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Len(t, snaps, 20)
}

// TestConcurrentAccess_SequentialWritesConcurrentReads builds up several
// projects sequentially, then reads every project's tasks from parallel
// goroutines, the access pattern of the portfolio status command.
func TestConcurrentAccess_SequentialWritesConcurrentReads(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()

	projRepo := NewSQLiteProjectRepo(database)
	taskRepo := NewSQLiteTaskRepo(database)

	const projectCount = 10
	ids := make([]string, 0, projectCount)
	for i := 0; i < projectCount; i++ {
		proj := testutil.NewTestProject(fmt.Sprintf("Project-%d", i),
			testutil.WithShortID(fmt.Sprintf("CCC%02d", i)))
		require.NoError(t, projRepo.Create(ctx, proj))
		for j := 0; j <= i; j++ {
			task := testutil.NewTestTask(proj.ID, fmt.Sprintf("Task-%d-%d", i, j))
			require.NoError(t, taskRepo.Create(ctx, task))
		}
		ids = append(ids, proj.ID)
	}

	var wg sync.WaitGroup
	counts := make([]int, projectCount)
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			tasks, err := taskRepo.ListByProject(ctx, id)
			if err != nil {
				t.Errorf("project %d: list tasks: %v", i, err)
				return
			}
			counts[i] = len(tasks)
		}(i, id)
	}
	wg.Wait()

	for i, n := range counts {
		assert.Equal(t, i+1, n, "project %d task count", i)
	}
}
