package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lanepath/lanegrid"
	"github.com/katalvlaran/lanepath/planner"
	"github.com/katalvlaran/lanepath/store"
)

func openTemp(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func samplePlan(t *testing.T, c lanegrid.Corner) (lanegrid.Grid, lanegrid.ExitPoint, planner.Plan) {
	t.Helper()
	g, err := lanegrid.FromLanes(4, 4)
	require.NoError(t, err)
	exit, err := lanegrid.ResolveCorner(g, c)
	require.NoError(t, err)
	p, err := planner.GenerateForGrid(g, exit)
	require.NoError(t, err)

	return g, exit, p
}

func TestSaveAndLoadRun(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	g, exit, p := samplePlan(t, lanegrid.TopRight)

	run := store.NewRun(g, exit, planner.DefaultGapSize, p)
	id, err := s.SaveRun(ctx, run)
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	got, err := s.LoadRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 4, got.LanesX)
	assert.Equal(t, 4, got.LanesY)
	assert.Equal(t, exit, got.Exit)
	assert.Equal(t, planner.DefaultGapSize, got.GapSize)
	assert.Equal(t, p.Points, got.Plan.Points)
	assert.Equal(t, p.SowFlags, got.Plan.SowFlags)
	assert.Equal(t, run.Labels, got.Labels)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestListRunsNewestFirst(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var ids []string
	for i, c := range []lanegrid.Corner{lanegrid.BottomLeft, lanegrid.TopLeft, lanegrid.BottomRight} {
		g, exit, p := samplePlan(t, c)
		run := store.NewRun(g, exit, 1, p)
		run.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		id, err := s.SaveRun(ctx, run)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	all, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[2], all[0].ID)
	assert.Equal(t, ids[0], all[2].ID)
	assert.Equal(t, lanegrid.Point{X: 3, Y: 0}, all[0].Exit)
	assert.Equal(t, "right", all[0].ExitEdge)

	two, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
	assert.True(t, two[0].CreatedAt.After(two[1].CreatedAt))
}

func TestLoadRunNotFound(t *testing.T) {
	s := openTemp(t)
	_, err := s.LoadRun(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestSaveRunRejectsInvalid(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	_, err := s.SaveRun(ctx, store.Run{})
	assert.ErrorIs(t, err, store.ErrInvalidRun)

	g, exit, p := samplePlan(t, lanegrid.BottomLeft)
	run := store.NewRun(g, exit, 1, p)
	run.ID = "not-a-uuid"
	_, err = s.SaveRun(ctx, run)
	assert.ErrorIs(t, err, store.ErrInvalidRun)

	run = store.NewRun(g, exit, 1, p)
	run.Labels = run.Labels[:1]
	_, err = s.SaveRun(ctx, run)
	assert.ErrorIs(t, err, store.ErrInvalidRun)
}

func TestDeleteRun(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	g, exit, p := samplePlan(t, lanegrid.BottomLeft)

	id, err := s.SaveRun(ctx, store.NewRun(g, exit, 1, p))
	require.NoError(t, err)
	require.NoError(t, s.DeleteRun(ctx, id))

	_, err = s.LoadRun(ctx, id)
	assert.ErrorIs(t, err, store.ErrRunNotFound)
	assert.ErrorIs(t, s.DeleteRun(ctx, id), store.ErrRunNotFound)
}

func TestInMemoryStore(t *testing.T) {
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	runs, err := s.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
