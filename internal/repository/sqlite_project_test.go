package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/scurve/internal/domain"
	"github.com/alexanderramin/scurve/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectRepo(t *testing.T) *SQLiteProjectRepo {
	t.Helper()
	return NewSQLiteProjectRepo(testutil.NewTestDB(t))
}

func TestProjectRepo_RoundTripKeepsSubSecondStamps(t *testing.T) {
	repo := newProjectRepo(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("ERP Rollout", testutil.WithShortID("ERP01"))
	proj.CreatedAt = time.Date(2025, 3, 3, 8, 15, 0, 123456789, time.UTC)
	proj.UpdatedAt = proj.CreatedAt.Add(time.Millisecond)
	require.NoError(t, repo.Create(ctx, proj))

	got, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "ERP Rollout", got.Name)
	assert.Equal(t, "ERP01", got.ShortID)
	assert.Equal(t, domain.ProjectActive, got.Status)
	assert.True(t, proj.CreatedAt.Equal(got.CreatedAt), "created_at %s", got.CreatedAt)
	assert.True(t, proj.UpdatedAt.Equal(got.UpdatedAt), "updated_at %s", got.UpdatedAt)
}

func TestProjectRepo_GetByShortID(t *testing.T) {
	repo := newProjectRepo(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Billing", testutil.WithShortID("BIL01"))
	require.NoError(t, repo.Create(ctx, proj))

	for _, ref := range []string{"BIL01", "bil01", "Bil01"} {
		got, err := repo.GetByShortID(ctx, ref)
		require.NoError(t, err, ref)
		assert.Equal(t, proj.ID, got.ID)
	}

	_, err := repo.GetByShortID(ctx, "BIL02")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_GetByShortID_BlankNeverMatches(t *testing.T) {
	repo := newProjectRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("Legacy", testutil.WithShortID(""))))

	_, err := repo.GetByShortID(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_List(t *testing.T) {
	repo := newProjectRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

	names := []string{"Second", "First", "Shelved"}
	offsets := []time.Duration{time.Second, 0, 2 * time.Second}
	ids := map[string]string{}
	for i, name := range names {
		p := testutil.NewTestProject(name)
		p.CreatedAt = base.Add(offsets[i])
		p.UpdatedAt = p.CreatedAt
		require.NoError(t, repo.Create(ctx, p))
		ids[name] = p.ID
	}
	require.NoError(t, repo.Archive(ctx, ids["Shelved"]))

	listNames := func(includeArchived bool) []string {
		list, err := repo.List(ctx, includeArchived)
		require.NoError(t, err)
		out := make([]string, 0, len(list))
		for _, p := range list {
			out = append(out, p.Name)
		}
		return out
	}

	assert.Equal(t, []string{"First", "Second"}, listNames(false))
	assert.Equal(t, []string{"First", "Second", "Shelved"}, listNames(true))
}

func TestProjectRepo_UpdateAndArchive(t *testing.T) {
	repo := newProjectRepo(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Portal")
	require.NoError(t, repo.Create(ctx, proj))

	proj.Name = "Customer Portal"
	proj.ShortID = "POR02"
	proj.Status = domain.ProjectPaused
	proj.UpdatedAt = proj.UpdatedAt.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, proj))

	got, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Customer Portal", got.Name)
	assert.Equal(t, "POR02", got.ShortID)
	assert.Equal(t, domain.ProjectPaused, got.Status)

	require.NoError(t, repo.Archive(ctx, proj.ID))
	got, err = repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectArchived, got.Status)
	assert.WithinDuration(t, time.Now(), got.UpdatedAt, time.Minute)
}

func TestProjectRepo_MissingRows(t *testing.T) {
	repo := newProjectRepo(t)
	ctx := context.Background()
	ghost := testutil.NewTestProject("Ghost")

	_, err := repo.GetByID(ctx, ghost.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "project not found")

	assert.ErrorIs(t, repo.Update(ctx, ghost), ErrNotFound)
	assert.ErrorIs(t, repo.Archive(ctx, ghost.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, ghost.ID), ErrNotFound)
}

func TestProjectRepo_Delete(t *testing.T) {
	repo := newProjectRepo(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Sunset")
	require.NoError(t, repo.Create(ctx, proj))
	require.NoError(t, repo.Delete(ctx, proj.ID))

	_, err := repo.GetByID(ctx, proj.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_ShortIDIsUnique(t *testing.T) {
	repo := newProjectRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("One", testutil.WithShortID("DUP01"))))
	err := repo.Create(ctx, testutil.NewTestProject("Two", testutil.WithShortID("DUP01")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inserting project")
}
