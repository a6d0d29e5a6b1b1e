package planner

import (
	"fmt"

	"github.com/katalvlaran/lanepath/lanegrid"
	"github.com/katalvlaran/lanepath/sweep"
)

// Generate builds a full-coverage path over a lane grid with lane indices
// 0..maxX across and 0..maxY along, sweeping n inner lanes and ending at
// exit.
//
// Contract:
//   - maxX ≥ 2 and maxY ≥ 0, else lanegrid.ErrConfiguration.
//   - 0 ≤ n ≤ maxX-1, else sweep.ErrSweepCount.
//   - exit lies on the boundary and isCorner agrees with it, else
//     lanegrid.ErrInputRange.
//
// Guarantees on success:
//   - Points[len-1] == exit and len(SowFlags) == len(Points)-1.
//   - Every lane x in [0, maxX] appears in Points.
//   - No unit lane edge is sown twice, in either direction.
//   - Identical inputs yield identical plans.
//
// Any violated guarantee is reported as ErrIntegrity.
// Complexity: O(maxX + maxY) time, O(maxX) waypoints.
func Generate(n, maxX, maxY int, exit lanegrid.Point, isCorner bool, opts ...Option) (Plan, error) {
	g, err := lanegrid.FromLanes(maxX+1, maxY+1)
	if err != nil {
		return Plan{}, err
	}
	ep, err := lanegrid.Classify(g, exit)
	if err != nil {
		return Plan{}, err
	}
	if ep.Corner != isCorner {
		return Plan{}, fmt.Errorf("%w: %v corner=%t, caller said %t", lanegrid.ErrInputRange, exit, ep.Corner, isCorner)
	}

	return generate(g, ep, n, opts)
}

// GenerateForGrid runs Generate for a grid built by lanegrid.NewGrid,
// sweeping all of its inner lanes.
func GenerateForGrid(g lanegrid.Grid, exit lanegrid.ExitPoint, opts ...Option) (Plan, error) {
	return Generate(g.InnerSweeps, g.MaxX, g.MaxY, exit.Point, exit.Corner, opts...)
}

func generate(g lanegrid.Grid, exit lanegrid.ExitPoint, n int, opts []Option) (Plan, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Plan{}, err
	}
	seq, err := sweep.Plan(n, g.MaxX, g.MaxY, exit)
	if err != nil {
		return Plan{}, err
	}

	b := &builder{
		grid:    g,
		exit:    exit,
		opts:    o,
		c:       NewCommitter(make(SownSet)),
		visited: make([]bool, g.MaxX+1),
		phase:   PhaseInit,
	}
	b.c.onCommit = o.OnCommit

	return b.run(seq)
}

// builder owns all mutable state of one Generate call.
type builder struct {
	grid    lanegrid.Grid
	exit    lanegrid.ExitPoint
	opts    Options
	c       *Committer
	visited []bool
	marked  int // points already folded into visited
	phase   Phase
}

func (b *builder) run(seq sweep.Sequence) (Plan, error) {
	// INIT
	if err := b.commit(lanegrid.Point{X: seq.StartX, Y: seq.StartY}, false); err != nil {
		return Plan{}, err
	}

	b.enter(PhaseInnerSweeps)
	if err := b.innerSweeps(seq.Order); err != nil {
		return Plan{}, err
	}

	b.enter(PhaseBoundaryCoverage)
	if err := b.boundaryCoverage(); err != nil {
		return Plan{}, err
	}

	b.enter(PhaseExitApproach)
	if err := b.move(b.exit.Point, false); err != nil {
		return Plan{}, err
	}

	b.enter(PhaseDone)
	plan := b.c.Plan()
	if err := ValidatePlan(plan, b.grid.MaxX, b.exit.Point); err != nil {
		return Plan{}, err
	}
	b.opts.OnComplete(plan)

	return plan, nil
}

func (b *builder) enter(p Phase) {
	prev := b.phase
	b.phase = p
	b.opts.OnPhase(prev, p)
}

// innerSweeps turns along the current headland row onto each lane and
// sweeps it to the opposite headland row.
func (b *builder) innerSweeps(order []int) error {
	for i, lane := range order {
		cur := b.at()
		if err := b.move(lanegrid.Point{X: lane, Y: cur.Y}, false); err != nil {
			return err
		}
		// The final sweep toward a top/bottom exit keeps its ends unsown
		// so it does not sow straight into the exit row.
		gapped := b.opts.GapEverySweep || (i == len(order)-1 && b.exit.Primary().Horizontal())
		to := lanegrid.Point{X: lane, Y: opposite(b.grid, cur.Y)}
		if err := b.sweep(to, true, gapped); err != nil {
			return err
		}
	}

	return nil
}

// boundaryCoverage runs the strategy selected from the case table.
func (b *builder) boundaryCoverage() error {
	cur := b.at()
	_, strat := selectStrategy(b.grid, cur, b.exit)
	k := strat.entryCorner(b.grid, cur, b.exit)

	if err := b.move(k, false); err != nil {
		return err
	}
	corners := strat.loop(b.grid, k, b.exit)
	for i, corner := range corners {
		// Closing the loop on the exit itself: leave the last stretch unsown.
		gapped := b.opts.GapEverySweep || (i == len(corners)-1 && k == b.exit.Point)
		if err := b.sweep(corner, true, gapped); err != nil {
			return err
		}
	}

	return b.move(approachCorner(b.grid, k, b.exit), false)
}

// at returns the last committed waypoint.
func (b *builder) at() lanegrid.Point {
	p, _ := b.c.Last()
	return p
}

// move commits a straight move to `to`. Horizontal moves stop at every
// lane in between that no waypoint has touched yet, so lanes outside the
// swept set are still visited.
func (b *builder) move(to lanegrid.Point, sow bool) error {
	cur := b.at()
	if cur.Y == to.Y && cur.X != to.X {
		step := sign(to.X - cur.X)
		for x := cur.X + step; x != to.X; x += step {
			if b.visited[x] {
				continue
			}
			if err := b.commit(lanegrid.Point{X: x, Y: cur.Y}, sow); err != nil {
				return err
			}
		}
	}

	return b.commit(to, sow)
}

// sweep is move with optional gap insertion. A horizontal sweep that still
// has unvisited lanes in between falls back to move.
func (b *builder) sweep(to lanegrid.Point, sow, gapped bool) error {
	if !gapped || b.opts.GapSize == 0 || b.crossesUnvisited(to) {
		return b.move(to, sow)
	}
	if err := b.c.CommitGapped(to, sow, b.opts.GapSize); err != nil {
		return err
	}
	b.markVisited()

	return nil
}

func (b *builder) crossesUnvisited(to lanegrid.Point) bool {
	cur := b.at()
	if cur.Y != to.Y {
		return false
	}
	lo, hi := min(cur.X, to.X), max(cur.X, to.X)
	for x := lo + 1; x < hi; x++ {
		if !b.visited[x] {
			return true
		}
	}

	return false
}

func (b *builder) commit(p lanegrid.Point, sow bool) error {
	if err := b.c.Commit(p, sow); err != nil {
		return err
	}
	b.markVisited()

	return nil
}

func (b *builder) markVisited() {
	pts := b.c.points
	for ; b.marked < len(pts); b.marked++ {
		b.visited[pts[b.marked].X] = true
	}
}
