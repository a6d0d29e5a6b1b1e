package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lanepath/lanegrid"
)

func pt(x, y int) lanegrid.Point { return lanegrid.Point{X: x, Y: y} }

// TestCommit_OriginAndNoop covers rules 1 and 2.
func TestCommit_OriginAndNoop(t *testing.T) {
	c := NewCommitter(nil)
	require.NoError(t, c.Commit(pt(1, 0), true))
	require.NoError(t, c.Commit(pt(1, 0), true))

	p := c.Plan()
	assert.Equal(t, []lanegrid.Point{pt(1, 0)}, p.Points)
	assert.Empty(t, p.SowFlags, "origin carries no flag")
	assert.Empty(t, c.Sown())
}

// TestCommit_DedupUndirected downgrades a reverse traversal of a sown segment.
func TestCommit_DedupUndirected(t *testing.T) {
	c := NewCommitter(nil)
	require.NoError(t, c.Commit(pt(1, 0), false))
	require.NoError(t, c.Commit(pt(1, 3), true))
	require.NoError(t, c.Commit(pt(1, 0), true))
	require.NoError(t, c.Commit(pt(2, 0), false))
	require.NoError(t, c.Commit(pt(1, 0), true))

	p := c.Plan()
	assert.Equal(t, []bool{true, false, false, true}, p.SowFlags)
	assert.True(t, c.Sown().Has(NewSegment(pt(1, 3), pt(1, 0))))
	assert.True(t, c.Sown().Has(NewSegment(pt(2, 0), pt(1, 0))))
	assert.Len(t, c.Sown(), 2)
}

// TestCommit_DedupOverlap downgrades a move that covers sown ground even
// when its endpoints differ from the sown segments.
func TestCommit_DedupOverlap(t *testing.T) {
	c := NewCommitter(nil)
	require.NoError(t, c.Commit(pt(0, 0), false))
	require.NoError(t, c.Commit(pt(1, 0), true))
	require.NoError(t, c.Commit(pt(2, 0), true))
	require.NoError(t, c.Commit(pt(0, 0), true))
	require.NoError(t, c.Commit(pt(0, 2), true))
	require.NoError(t, c.Commit(pt(0, 1), true))
	require.NoError(t, c.Commit(pt(3, 1), true))

	assert.Equal(t, []bool{true, true, false, true, false, true}, c.Plan().SowFlags)
	assert.True(t, c.Sown().Has(NewSegment(pt(1, 0), pt(5, 0))))
	assert.False(t, c.Sown().Has(NewSegment(pt(2, 0), pt(5, 0))), "touching at a point shares no edge")
	assert.False(t, c.Sown().Has(NewSegment(pt(1, 0), pt(1, 0))))
}

// TestCommit_SharedSet threads one set through two committers.
func TestCommit_SharedSet(t *testing.T) {
	set := make(SownSet)
	a := NewCommitter(set)
	require.NoError(t, a.Commit(pt(0, 0), false))
	require.NoError(t, a.Commit(pt(0, 4), true))

	b := NewCommitter(set)
	require.NoError(t, b.Commit(pt(0, 4), false))
	require.NoError(t, b.Commit(pt(0, 0), true))
	assert.Equal(t, []bool{false}, b.Plan().SowFlags)
}

// TestCommit_Diagonal rejects moves that change both axes.
func TestCommit_Diagonal(t *testing.T) {
	c := NewCommitter(nil)
	require.NoError(t, c.Commit(pt(0, 0), false))
	err := c.Commit(pt(1, 1), true)
	require.ErrorIs(t, err, ErrDiagonalMove)
	require.ErrorIs(t, err, ErrIntegrity)
	assert.Equal(t, 1, c.Len())

	require.ErrorIs(t, c.CommitGapped(pt(2, 2), true, 1), ErrDiagonalMove)
}

// TestCommitGapped_Split produces entry gap, sown middle, exit gap.
func TestCommitGapped_Split(t *testing.T) {
	c := NewCommitter(nil)
	require.NoError(t, c.Commit(pt(3, 0), false))
	require.NoError(t, c.CommitGapped(pt(3, 5), true, 1))

	p := c.Plan()
	assert.Equal(t, []lanegrid.Point{pt(3, 0), pt(3, 1), pt(3, 4), pt(3, 5)}, p.Points)
	assert.Equal(t, []bool{false, true, false}, p.SowFlags)

	// Reverse direction, wider gap.
	require.NoError(t, c.CommitGapped(pt(3, 0), true, 2))
	p = c.Plan()
	assert.Equal(t, []lanegrid.Point{pt(3, 3), pt(3, 2), pt(3, 0)}, p.Points[4:])
	assert.Equal(t, []bool{false, true, false}, p.SowFlags[3:])
}

// TestCommitGapped_Collapse keeps short moves as one segment.
func TestCommitGapped_Collapse(t *testing.T) {
	c := NewCommitter(nil)
	require.NoError(t, c.Commit(pt(0, 0), false))
	require.NoError(t, c.CommitGapped(pt(2, 0), true, 1)) // dist 2 == 2·gap
	require.NoError(t, c.CommitGapped(pt(2, 7), false, 0))
	require.NoError(t, c.CommitGapped(pt(2, 7), true, 1)) // zero length

	p := c.Plan()
	assert.Equal(t, []lanegrid.Point{pt(0, 0), pt(2, 0), pt(2, 7)}, p.Points)
	assert.Equal(t, []bool{true, false}, p.SowFlags)
}

// TestSegment_Canonical checks direction independence and geometry helpers.
func TestSegment_Canonical(t *testing.T) {
	s1 := NewSegment(pt(4, 3), pt(0, 3))
	s2 := NewSegment(pt(0, 3), pt(4, 3))
	assert.Equal(t, s1, s2)
	assert.Equal(t, pt(0, 3), s1.A)
	assert.True(t, s1.Horizontal())
	assert.False(t, s1.Vertical())
	assert.Equal(t, 4, s1.Length())
	assert.Equal(t, "(0,3)-(4,3)", s1.String())
}
