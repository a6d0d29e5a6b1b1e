package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lanepath/lanegrid"
)

// TestBoundaryCases_Total checks every reachable key has a strategy and
// that mirrored rows use mirrored entry columns.
func TestBoundaryCases_Total(t *testing.T) {
	require.Len(t, boundaryCases, 8)
	for _, e := range []lanegrid.Edge{lanegrid.Left, lanegrid.Right} {
		below, ok := boundaryCases[caseKey{e, relBelow}]
		require.True(t, ok, "%s/below", e)
		above, ok := boundaryCases[caseKey{e, relAbove}]
		require.True(t, ok, "%s/above", e)
		assert.Equal(t, entryExitSide, below.entry)
		assert.Equal(t, entryExitSide, above.entry)
		assert.Equal(t, entryBottom, below.row)
		assert.Equal(t, entryTop, above.row)
	}
	for _, e := range []lanegrid.Edge{lanegrid.Top, lanegrid.Bottom} {
		assert.Equal(t, entryLeft, boundaryCases[caseKey{e, relLeftOf}].entry)
		assert.Equal(t, entryRight, boundaryCases[caseKey{e, relRightOf}].entry)
		assert.Equal(t, entryCurrentRow, boundaryCases[caseKey{e, relLeftOf}].row)
	}
}

// TestRelate covers side and top/bottom exits including ties.
func TestRelate(t *testing.T) {
	g, err := lanegrid.FromLanes(7, 5) // MaxX=6, MaxY=4
	require.NoError(t, err)
	classify := func(p lanegrid.Point) lanegrid.ExitPoint {
		e, err := lanegrid.Classify(g, p)
		require.NoError(t, err)
		return e
	}

	left := classify(pt(0, 2))
	assert.Equal(t, relBelow, relate(g, pt(1, 0), left))
	assert.Equal(t, relAbove, relate(g, pt(1, 4), left))

	// Rover on the exit row: the half holding the exit wins.
	assert.Equal(t, relBelow, relate(g, pt(3, 0), classify(pt(6, 0))))
	assert.Equal(t, relAbove, relate(g, pt(3, 4), classify(pt(0, 4))))

	bottom := classify(pt(2, 0))
	assert.Equal(t, relLeftOf, relate(g, pt(1, 4), bottom))
	assert.Equal(t, relRightOf, relate(g, pt(5, 0), bottom))
	assert.Equal(t, relLeftOf, relate(g, pt(2, 4), bottom), "tie resolves to the nearer side")

	top := classify(pt(4, 4))
	assert.Equal(t, relRightOf, relate(g, pt(4, 0), top))
}

// TestLoop_FarBoundaryFirst checks loop orientation per exit kind.
func TestLoop_FarBoundaryFirst(t *testing.T) {
	g, err := lanegrid.FromLanes(5, 4) // MaxX=4, MaxY=3
	require.NoError(t, err)

	side, _ := lanegrid.Classify(g, pt(4, 1))
	_, s := selectStrategy(g, pt(3, 3), side)
	k := s.entryCorner(g, pt(3, 3), side)
	assert.Equal(t, pt(4, 3), k)
	assert.Equal(t, [4]lanegrid.Point{pt(0, 3), pt(0, 0), pt(4, 0), pt(4, 3)}, s.loop(g, k, side))

	// On the exit row of a top exit: climb away to the far row first.
	top, _ := lanegrid.Classify(g, pt(2, 3))
	_, s = selectStrategy(g, pt(3, 3), top)
	k = s.entryCorner(g, pt(3, 3), top)
	assert.Equal(t, pt(4, 3), k)
	assert.Equal(t, [4]lanegrid.Point{pt(4, 0), pt(0, 0), pt(0, 3), pt(4, 3)}, s.loop(g, k, top))

	// On the far row: sweep it first.
	_, s = selectStrategy(g, pt(1, 0), top)
	k = s.entryCorner(g, pt(1, 0), top)
	assert.Equal(t, pt(0, 0), k)
	assert.Equal(t, [4]lanegrid.Point{pt(4, 0), pt(4, 3), pt(0, 3), pt(0, 0)}, s.loop(g, k, top))
	assert.Equal(t, pt(0, 3), approachCorner(g, k, top))
}

// TestEntryCorner_SideMirror checks that the from-below and from-above side
// strategies enter on mirrored headland rows of the exit column.
func TestEntryCorner_SideMirror(t *testing.T) {
	g, err := lanegrid.FromLanes(6, 5) // MaxX=5, MaxY=4
	require.NoError(t, err)

	for _, exitPt := range []lanegrid.Point{pt(0, 2), pt(5, 1), pt(0, 0), pt(5, 4)} {
		exit, err := lanegrid.Classify(g, exitPt)
		require.NoError(t, err)
		for _, row := range []int{0, g.MaxY} {
			cur := pt(2, row)
			key, s := selectStrategy(g, cur, exit)
			k := s.entryCorner(g, cur, exit)
			assert.Equal(t, pt(exitPt.X, row), k, "%s from row %d", s.name, row)
			if row == 0 {
				assert.Equal(t, relBelow, key.rel, s.name)
			} else {
				assert.Equal(t, relAbove, key.rel, s.name)
			}
		}
	}
}
