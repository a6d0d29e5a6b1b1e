package planner

import (
	"fmt"

	"github.com/katalvlaran/lanepath/lanegrid"
)

// Committer appends waypoints to a path and decides each segment's sow
// flag against a SownSet. It is the only place a Plan is mutated.
//
// Rules for Commit(next, sow):
//  1. Empty path: next becomes the origin; no flag is added.
//  2. next equals the last waypoint: no-op.
//  3. Otherwise next is appended and the undirected segment from the
//     previous waypoint is formed.
//  4. The flag is true only if sow is requested and none of the unit lane
//     edges the segment covers is sown yet; those edges are then added to
//     the set. A request overlapping sown ground is silently downgraded to
//     transit.
//
// A Committer is not safe for concurrent use.
type Committer struct {
	points   []lanegrid.Point
	flags    []bool
	sown     SownSet
	onCommit func(from, to lanegrid.Point, sown bool)
}

// NewCommitter returns an empty Committer bound to sown. A nil set is
// replaced with a fresh one.
func NewCommitter(sown SownSet) *Committer {
	if sown == nil {
		sown = make(SownSet)
	}

	return &Committer{sown: sown, onCommit: func(lanegrid.Point, lanegrid.Point, bool) {}}
}

// Commit applies rules 1-4 to next.
// Returns ErrDiagonalMove if next differs from the last waypoint on both axes.
// Complexity: O(1) amortized.
func (c *Committer) Commit(next lanegrid.Point, sow bool) error {
	if len(c.points) == 0 {
		c.points = append(c.points, next)
		return nil
	}
	last := c.points[len(c.points)-1]
	if next == last {
		return nil
	}
	if next.X != last.X && next.Y != last.Y {
		return fmt.Errorf("%w: %v -> %v", ErrDiagonalMove, last, next)
	}

	c.points = append(c.points, next)
	seg := NewSegment(last, next)
	flag := sow && !c.sown.Has(seg)
	if flag {
		c.sown.Add(seg)
	}
	c.flags = append(c.flags, flag)
	c.onCommit(last, next, flag)

	return nil
}

// CommitGapped moves to next in up to three sub-movements: an unsown
// entry gap of gap lanes, the middle with the requested sow flag, and an
// unsown exit gap of gap lanes. If gap <= 0 or the distance is at most
// 2·gap the move collapses to a single Commit(next, sow).
// Complexity: O(1) amortized.
func (c *Committer) CommitGapped(next lanegrid.Point, sow bool, gap int) error {
	last, ok := c.Last()
	if !ok || next == last {
		return c.Commit(next, sow)
	}
	if next.X != last.X && next.Y != last.Y {
		return fmt.Errorf("%w: %v -> %v", ErrDiagonalMove, last, next)
	}

	dx, dy := sign(next.X-last.X), sign(next.Y-last.Y)
	dist := abs(next.X-last.X) + abs(next.Y-last.Y)
	if gap <= 0 || dist <= 2*gap {
		return c.Commit(next, sow)
	}

	entry := lanegrid.Point{X: last.X + gap*dx, Y: last.Y + gap*dy}
	exit := lanegrid.Point{X: next.X - gap*dx, Y: next.Y - gap*dy}
	if err := c.Commit(entry, false); err != nil {
		return err
	}
	if err := c.Commit(exit, sow); err != nil {
		return err
	}

	return c.Commit(next, false)
}

// Last returns the last waypoint, if any.
func (c *Committer) Last() (lanegrid.Point, bool) {
	if len(c.points) == 0 {
		return lanegrid.Point{}, false
	}

	return c.points[len(c.points)-1], true
}

// Len returns the number of waypoints committed so far.
func (c *Committer) Len() int { return len(c.points) }

// Sown returns the set the committer records into.
func (c *Committer) Sown() SownSet { return c.sown }

// Plan returns the committed path. The slices are shared with the
// committer; callers that keep committing must copy them first.
func (c *Committer) Plan() Plan {
	return Plan{Points: c.points, SowFlags: c.flags}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
