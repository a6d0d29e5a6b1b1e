package planner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lanepath/lanegrid"
)

// Sentinel errors for planner operations.
var (
	// ErrIntegrity indicates a violated invariant in a generated path. It
	// signals a planner defect, never bad input.
	ErrIntegrity = errors.New("planner: path integrity violated")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("planner: invalid option supplied")

	// ErrDiagonalMove indicates two consecutive waypoints differ on both axes.
	ErrDiagonalMove = fmt.Errorf("%w: diagonal move", ErrIntegrity)
	// ErrExitNotReached indicates the last waypoint is not the exit.
	ErrExitNotReached = fmt.Errorf("%w: exit not reached", ErrIntegrity)
	// ErrFlagLength indicates len(SowFlags) != len(Points)-1.
	ErrFlagLength = fmt.Errorf("%w: sow flag count mismatch", ErrIntegrity)
	// ErrLaneNotVisited indicates some lane index never appears in the path.
	ErrLaneNotVisited = fmt.Errorf("%w: lane not visited", ErrIntegrity)
	// ErrPathTooShort indicates a path with fewer than two waypoints.
	ErrPathTooShort = fmt.Errorf("%w: path too short", ErrIntegrity)
	// ErrDoubleSown indicates a unit lane edge covered by more than one sown segment.
	ErrDoubleSown = fmt.Errorf("%w: segment sown twice", ErrIntegrity)
)

// Phase is a state of the path builder.
type Phase int

const (
	// PhaseInit places the starting waypoint.
	PhaseInit Phase = iota
	// PhaseInnerSweeps sweeps the inner lanes.
	PhaseInnerSweeps
	// PhaseBoundaryCoverage sweeps the four headlands.
	PhaseBoundaryCoverage
	// PhaseExitApproach moves into the exit.
	PhaseExitApproach
	// PhaseDone verifies and returns the plan.
	PhaseDone
)

// String returns the upper-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "INIT"
	case PhaseInnerSweeps:
		return "INNER_SWEEPS"
	case PhaseBoundaryCoverage:
		return "BOUNDARY_COVERAGE"
	case PhaseExitApproach:
		return "EXIT_APPROACH"
	case PhaseDone:
		return "DONE"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Segment is an undirected lane edge between two waypoints.
// A and B are stored in canonical order (A ≤ B by X, then Y), so the same
// edge traversed in either direction yields an equal Segment.
type Segment struct {
	A, B lanegrid.Point
}

// NewSegment returns the canonical segment between a and b.
func NewSegment(a, b lanegrid.Point) Segment {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}

	return Segment{A: a, B: b}
}

// Length is the axis-aligned distance between the endpoints in lane units.
func (s Segment) Length() int {
	return abs(s.B.X-s.A.X) + abs(s.B.Y-s.A.Y)
}

// Vertical reports whether the segment runs along a lane (constant X).
func (s Segment) Vertical() bool {
	return s.A.X == s.B.X && s.A.Y != s.B.Y
}

// Horizontal reports whether the segment runs across lanes (constant Y).
func (s Segment) Horizontal() bool {
	return s.A.Y == s.B.Y && s.A.X != s.B.X
}

// String renders the segment as "(x,y)-(x,y)".
func (s Segment) String() string {
	return s.A.String() + "-" + s.B.String()
}

// SownSet records the ground already sown during one planning run.
// Sown spans are kept per lane line (a column for vertical moves, a row for
// horizontal ones), so two segments conflict as soon as they share a unit
// lane edge, whatever their endpoints.
type SownSet map[lineKey][]span

// lineKey identifies a column (vertical) or a row (horizontal).
type lineKey struct {
	vertical bool
	at       int
}

// span is the closed interval [lo, hi] along a line.
type span struct {
	lo, hi int
}

func spanOf(s Segment) (lineKey, span) {
	if s.A.X == s.B.X {
		return lineKey{vertical: true, at: s.A.X}, span{lo: min(s.A.Y, s.B.Y), hi: max(s.A.Y, s.B.Y)}
	}

	return lineKey{at: s.A.Y}, span{lo: min(s.A.X, s.B.X), hi: max(s.A.X, s.B.X)}
}

// Has reports whether any unit edge covered by s was sown.
// A zero-length segment covers nothing.
// Complexity: O(spans on the line), a small constant for generated plans.
func (ss SownSet) Has(s Segment) bool {
	k, sp := spanOf(s)
	if sp.lo == sp.hi {
		return false
	}
	for _, o := range ss[k] {
		if max(o.lo, sp.lo) < min(o.hi, sp.hi) {
			return true
		}
	}

	return false
}

// Add marks every unit edge covered by s as sown. A span touching the
// line's most recent span is merged into it, so stepwise moves along one
// line stay a single span.
func (ss SownSet) Add(s Segment) {
	k, sp := spanOf(s)
	if sp.lo == sp.hi {
		return
	}
	spans := ss[k]
	if n := len(spans); n > 0 && spans[n-1].lo <= sp.hi && sp.lo <= spans[n-1].hi {
		spans[n-1] = span{lo: min(spans[n-1].lo, sp.lo), hi: max(spans[n-1].hi, sp.hi)}
		return
	}
	ss[k] = append(spans, sp)
}

// Plan is the output of Generate.
//   - Points are lane coordinates, not physical units.
//   - SowFlags[i] tells whether the move Points[i] → Points[i+1] sows.
//   - len(SowFlags) == len(Points)-1.
type Plan struct {
	Points   []lanegrid.Point
	SowFlags []bool
}

// Segments returns the undirected segment of every consecutive pair.
// Complexity: O(len(Points)).
func (p Plan) Segments() []Segment {
	if len(p.Points) < 2 {
		return nil
	}
	out := make([]Segment, len(p.Points)-1)
	for i := 1; i < len(p.Points); i++ {
		out[i-1] = NewSegment(p.Points[i-1], p.Points[i])
	}

	return out
}

// Lengths sums the lane distance covered by sown and transit moves.
// Complexity: O(len(Points)).
func (p Plan) Lengths() (sown, transit int) {
	for i, s := range p.Segments() {
		if i < len(p.SowFlags) && p.SowFlags[i] {
			sown += s.Length()
		} else {
			transit += s.Length()
		}
	}

	return sown, transit
}

// PadFlags returns a copy of the plan whose SowFlags are padded with false
// up to len(Points)-1. It is meant for consumers that index flags by
// segment; a plan that needs padding still fails ValidatePlan.
func (p Plan) PadFlags() Plan {
	want := max(0, len(p.Points)-1)
	flags := make([]bool, want)
	copy(flags, p.SowFlags)
	pts := make([]lanegrid.Point, len(p.Points))
	copy(pts, p.Points)

	return Plan{Points: pts, SowFlags: flags}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
