package planner

import (
	"github.com/katalvlaran/lanepath/lanegrid"
)

// relation places the rover, at the end of the inner sweeps, relative to
// the exit: above/below it for side exits, left/right of it for top and
// bottom exits.
type relation int

const (
	relBelow relation = iota
	relAbove
	relLeftOf
	relRightOf
)

func (r relation) String() string {
	switch r {
	case relBelow:
		return "below"
	case relAbove:
		return "above"
	case relLeftOf:
		return "left-of"
	default:
		return "right-of"
	}
}

// caseKey selects a boundary strategy.
type caseKey struct {
	edge lanegrid.Edge
	rel  relation
}

// entryColumn names the headland column whose corner on the current row
// starts the headland loop.
type entryColumn int

const (
	// entryExitSide is the exit's own column (side exits).
	entryExitSide entryColumn = iota
	entryLeft
	entryRight
)

// entryRow names the headland row of the entry corner.
type entryRow int

const (
	// entryCurrentRow keeps the rover's own row (top/bottom exits).
	entryCurrentRow entryRow = iota
	entryBottom
	entryTop
)

// boundaryStrategy is one row of the boundary case table. Every strategy
// runs the same three steps from its entry corner K:
//  1. reach the far boundary and sweep it fully,
//  2. cross to the near (exit-side) boundary, sweeping the remaining
//     headlands so all four are covered once, closing the loop at K,
//  3. head toward the exit along the headlands without sowing.
type boundaryStrategy struct {
	name  string
	entry entryColumn
	row   entryRow
}

// boundaryCases is keyed on the exit's primary edge and the rover's
// relation to the exit. Rows mirror each other by swapping left/right or
// top/bottom: a side exit approached from below enters on the bottom
// headland row, from above on the top one.
var boundaryCases = map[caseKey]boundaryStrategy{
	{lanegrid.Left, relBelow}:     {name: "left-exit/from-below", entry: entryExitSide, row: entryBottom},
	{lanegrid.Left, relAbove}:     {name: "left-exit/from-above", entry: entryExitSide, row: entryTop},
	{lanegrid.Right, relBelow}:    {name: "right-exit/from-below", entry: entryExitSide, row: entryBottom},
	{lanegrid.Right, relAbove}:    {name: "right-exit/from-above", entry: entryExitSide, row: entryTop},
	{lanegrid.Bottom, relLeftOf}:  {name: "bottom-exit/from-left", entry: entryLeft},
	{lanegrid.Bottom, relRightOf}: {name: "bottom-exit/from-right", entry: entryRight},
	{lanegrid.Top, relLeftOf}:     {name: "top-exit/from-left", entry: entryLeft},
	{lanegrid.Top, relRightOf}:    {name: "top-exit/from-right", entry: entryRight},
}

// relate classifies cur against the exit.
//   - Side exits: below when cur.Y < exit.Y, above when greater.
//   - Top/bottom exits: left-of when cur.X < exit.X, right-of when greater.
//
// On a tie the half of the field holding the exit wins. The rover ends its
// inner sweeps on row 0 or MaxY, so for side exits below means the bottom
// headland row and above the top one.
func relate(g lanegrid.Grid, cur lanegrid.Point, exit lanegrid.ExitPoint) relation {
	if exit.Primary().Vertical() {
		switch {
		case cur.Y < exit.Y:
			return relBelow
		case cur.Y > exit.Y:
			return relAbove
		case 2*exit.Y <= g.MaxY:
			return relBelow
		default:
			return relAbove
		}
	}
	switch {
	case cur.X < exit.X:
		return relLeftOf
	case cur.X > exit.X:
		return relRightOf
	case 2*exit.X <= g.MaxX:
		return relLeftOf
	default:
		return relRightOf
	}
}

// selectStrategy looks up the strategy for cur. The table is total over
// the primary edges Classify can produce.
func selectStrategy(g lanegrid.Grid, cur lanegrid.Point, exit lanegrid.ExitPoint) (caseKey, boundaryStrategy) {
	key := caseKey{edge: exit.Primary(), rel: relate(g, cur, exit)}

	return key, boundaryCases[key]
}

// entryCorner is the headland corner where the loop starts. It always lies
// on cur's row, so the turn into it is a single straight move.
func (s boundaryStrategy) entryCorner(g lanegrid.Grid, cur lanegrid.Point, exit lanegrid.ExitPoint) lanegrid.Point {
	k := lanegrid.Point{Y: cur.Y}
	switch s.row {
	case entryBottom:
		k.Y = 0
	case entryTop:
		k.Y = g.MaxY
	}
	switch s.entry {
	case entryLeft:
		k.X = 0
	case entryRight:
		k.X = g.MaxX
	default:
		k.X = exit.X
	}

	return k
}

// loop returns the four corners visited after k, ending back at k.
// The far boundary is reached first: for side exits that is the opposite
// column, reached along k's row; for top/bottom exits it is the row
// opposite the exit, reached along k's column unless k already lies on it.
func (s boundaryStrategy) loop(g lanegrid.Grid, k lanegrid.Point, exit lanegrid.ExitPoint) [4]lanegrid.Point {
	xo := g.MaxX - k.X
	yo := opposite(g, k.Y)
	rowFirst := exit.Primary().Vertical() || k.Y != exit.Y
	if rowFirst {
		return [4]lanegrid.Point{{X: xo, Y: k.Y}, {X: xo, Y: yo}, {X: k.X, Y: yo}, k}
	}

	return [4]lanegrid.Point{{X: k.X, Y: yo}, {X: xo, Y: yo}, {X: xo, Y: k.Y}, k}
}

// approachCorner is the headland corner to pass through on the way from
// k to the exit, or k itself when the exit shares its row or column.
func approachCorner(g lanegrid.Grid, k lanegrid.Point, exit lanegrid.ExitPoint) lanegrid.Point {
	if k.X == exit.X || k.Y == exit.Y {
		return k
	}
	if exit.VerticalEdge != lanegrid.EdgeNone {
		return lanegrid.Point{X: exit.X, Y: k.Y}
	}

	return lanegrid.Point{X: k.X, Y: exit.Y}
}

// opposite returns the headland row across from y.
func opposite(g lanegrid.Grid, y int) int {
	if y == g.MaxY {
		return 0
	}

	return g.MaxY
}
