package planner

import (
	"fmt"

	"github.com/katalvlaran/lanepath/lanegrid"
)

// ValidatePlan checks the postconditions every generated plan satisfies:
//   - at least two waypoints, ending at exit;
//   - len(SowFlags) == len(Points)-1;
//   - consecutive waypoints differ on exactly one axis;
//   - every lane x in [0, maxX] appears;
//   - no unit lane edge is covered by more than one sown segment.
//
// Each failure wraps ErrIntegrity. ValidatePlan never repairs the plan.
// Complexity: O(len(Points) + maxX).
func ValidatePlan(p Plan, maxX int, exit lanegrid.Point) error {
	if len(p.Points) < 2 {
		return fmt.Errorf("%w: %d waypoints", ErrPathTooShort, len(p.Points))
	}
	if len(p.SowFlags) != len(p.Points)-1 {
		return fmt.Errorf("%w: %d flags for %d waypoints", ErrFlagLength, len(p.SowFlags), len(p.Points))
	}
	if last := p.Points[len(p.Points)-1]; last != exit {
		return fmt.Errorf("%w: ends at %v, want %v", ErrExitNotReached, last, exit)
	}

	seen := make([]bool, maxX+1)
	sown := make(SownSet)
	var (
		i        int
		from, to lanegrid.Point
		seg      Segment
	)
	for i, to = range p.Points {
		if to.X >= 0 && to.X <= maxX {
			seen[to.X] = true
		}
		if i == 0 {
			continue
		}
		from = p.Points[i-1]
		if from == to || (from.X != to.X && from.Y != to.Y) {
			return fmt.Errorf("%w: step %d %v -> %v", ErrDiagonalMove, i, from, to)
		}
		if !p.SowFlags[i-1] {
			continue
		}
		seg = NewSegment(from, to)
		if sown.Has(seg) {
			return fmt.Errorf("%w: %v", ErrDoubleSown, seg)
		}
		sown.Add(seg)
	}
	for x, ok := range seen {
		if !ok {
			return fmt.Errorf("%w: x=%d", ErrLaneNotVisited, x)
		}
	}

	return nil
}
