package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sampath-kumaramd/mathlearn-project/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestProfileRepo_SaveAndLoad(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	ctx := context.Background()

	p := profile.New("s1", profile.ImpairmentLowVision)
	require.NoError(t, p.RecordAttempt(ctx, "addition", "", true, nil))

	require.NoError(t, repo.Save(ctx, p.Snapshot()))

	rec, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, rec, "Load returned nil for saved profile")

	assert.Equal(t, "s1", rec.StudentID)
	assert.Equal(t, int(profile.ImpairmentLowVision), rec.ImpairmentType)
	assert.Len(t, rec.PerformanceHistory, 1)

	q := profile.FromRecord(rec)
	assert.Equal(t, p.TopicLevel("addition"), q.TopicLevel("addition"))
}

func TestProfileRepo_LoadMissing(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()

	rec, err := repo.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, rec, "Load of a missing student should return nil, nil")
}

func TestProfileRepo_SaveOverwrites(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	ctx := context.Background()

	p := profile.New("s1", profile.ImpairmentCongenitalBlindness)
	require.NoError(t, repo.Save(ctx, p.Snapshot()))

	for range 3 {
		require.NoError(t, p.RecordAttempt(ctx, "division", "", true, nil))
	}
	require.NoError(t, repo.Save(ctx, p.Snapshot()))

	rec, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, rec.PerformanceHistory, 3)
}

func TestProfileRepo_Delete(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	ctx := context.Background()

	p := profile.New("s1", profile.ImpairmentCongenitalBlindness)
	require.NoError(t, repo.Save(ctx, p.Snapshot()))
	require.NoError(t, repo.Delete(ctx, "s1"))

	rec, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, rec, "record survived delete")

	// Deleting again is not an error.
	assert.NoError(t, repo.Delete(ctx, "s1"))
}

func TestProfileRepo_List(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	ctx := context.Background()

	for _, id := range []string{"charlie", "alpha", "bravo"} {
		p := profile.New(id, profile.ImpairmentCongenitalBlindness)
		require.NoError(t, repo.Save(ctx, p.Snapshot()))
	}

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, ids)
}

func TestStore_RegistryIntegration(t *testing.T) {
	s := openTestStore(t)
	reg := profile.NewRegistry(s.ProfileRepo(), nil)
	ctx := context.Background()

	p, release := reg.Acquire(ctx, "s1", profile.ImpairmentAcquiredBlindness)
	require.NoError(t, p.RecordAttempt(ctx, "subtraction", "", false, nil))
	release()

	// Evict and re-acquire: state must come back from SQLite.
	reg.Evict("s1")
	q, release := reg.Acquire(ctx, "s1", profile.ImpairmentAcquiredBlindness)
	defer release()

	assert.Len(t, q.History(), 1)
	assert.Equal(t, p.TopicLevel("subtraction"), q.TopicLevel("subtraction"))
}
