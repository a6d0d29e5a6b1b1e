// File: lanegrid/exit_test.go
package lanegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, nx, ny int) Grid {
	t.Helper()
	g, err := FromLanes(nx, ny)
	require.NoError(t, err)

	return g
}

// TestResolveCorner maps every corner and marks it as a corner exit.
func TestResolveCorner(t *testing.T) {
	g := mustGrid(t, 5, 4)
	want := map[Corner]Point{
		TopLeft:     {0, 3},
		TopRight:    {4, 3},
		BottomLeft:  {0, 0},
		BottomRight: {4, 0},
	}
	for c, p := range want {
		e, err := ResolveCorner(g, c)
		require.NoError(t, err, c.String())
		assert.Equal(t, p, e.Point, c.String())
		assert.True(t, e.Corner, c.String())
		assert.True(t, e.Primary().Vertical(), "corners follow side-exit rules")
	}

	_, err := ResolveCorner(g, Corner(42))
	require.ErrorIs(t, err, ErrInputRange)
}

// TestResolveCustom_Edges resolves a lane on each edge and classifies it.
func TestResolveCustom_Edges(t *testing.T) {
	g := mustGrid(t, 5, 4) // MaxX=4, MaxY=3

	e, err := ResolveCustom(g, Top, 2)
	require.NoError(t, err)
	assert.Equal(t, Point{2, 3}, e.Point)
	assert.Equal(t, Top, e.Primary())
	assert.False(t, e.Corner)

	e, err = ResolveCustom(g, Right, 1)
	require.NoError(t, err)
	assert.Equal(t, Point{4, 1}, e.Point)
	assert.Equal(t, Right, e.Primary())
	assert.Equal(t, EdgeNone, e.HorizontalEdge)

	e, err = ResolveCustom(g, Bottom, 4)
	require.NoError(t, err)
	assert.True(t, e.Corner)
	assert.True(t, e.On(Bottom))
	assert.True(t, e.On(Right))
}

// TestResolveCustom_OutOfRange rejects coordinates beyond the edge length.
func TestResolveCustom_OutOfRange(t *testing.T) {
	g := mustGrid(t, 5, 4)
	cases := []struct {
		edge  Edge
		coord int
	}{
		{Top, 5}, {Bottom, -1}, {Left, 4}, {Right, -2}, {EdgeNone, 0},
	}
	for _, tc := range cases {
		_, err := ResolveCustom(g, tc.edge, tc.coord)
		assert.ErrorIs(t, err, ErrInputRange, "%s %d", tc.edge, tc.coord)
	}
}

// TestClassify_RejectsInner refuses exits that are not on the boundary.
func TestClassify_RejectsInner(t *testing.T) {
	g := mustGrid(t, 5, 4)
	_, err := Classify(g, Point{2, 1})
	require.ErrorIs(t, err, ErrInputRange)
	_, err = Classify(g, Point{9, 0})
	require.ErrorIs(t, err, ErrInputRange)
}

// TestParse covers the accepted spellings.
func TestParse(t *testing.T) {
	c, err := ParseCorner("Top_Left")
	require.NoError(t, err)
	assert.Equal(t, TopLeft, c)
	c, err = ParseCorner("br")
	require.NoError(t, err)
	assert.Equal(t, BottomRight, c)
	_, err = ParseCorner("middle")
	require.ErrorIs(t, err, ErrInputRange)

	e, err := ParseEdge(" Left ")
	require.NoError(t, err)
	assert.Equal(t, Left, e)
	_, err = ParseEdge("north")
	require.ErrorIs(t, err, ErrInputRange)
}
