package sweep

import (
	"fmt"

	"github.com/katalvlaran/lanepath/lanegrid"
)

// Plan computes the start waypoint and inner-lane order for n inner
// sweeps on a grid with the given maximum lane indices.
//
// The swept inner lanes are 1..n. With n == 0 there is nothing to sweep
// and the rover starts on a headland: the exit column for side exits, or
// the column nearer to the exit for top/bottom exits.
//
// Returns ErrSweepCount if n < 0 or n > maxX-1.
// Complexity: O(n).
func Plan(n, maxX, maxY int, exit lanegrid.ExitPoint) (Sequence, error) {
	if n < 0 || n > maxX-1 {
		return Sequence{}, fmt.Errorf("%w: %d not in [0,%d]", ErrSweepCount, n, maxX-1)
	}
	seq := Sequence{
		StartX: StartLane(n, maxX, exit),
		StartY: StartRow(maxY, exit),
	}
	seq.Order = Order(seq.StartX, n, exit.X)

	return seq, nil
}

// StartLane picks the x index of the first waypoint.
// Complexity: O(1).
func StartLane(n, maxX int, exit lanegrid.ExitPoint) int {
	if n == 0 {
		switch exit.Primary() {
		case lanegrid.Left, lanegrid.Right:
			return exit.X
		default:
			if 2*exit.X <= maxX {
				return 0
			}
			return maxX
		}
	}

	switch exit.Primary() {
	case lanegrid.Left:
		return n
	case lanegrid.Right:
		return 1
	default:
		if abs(n-exit.X) > abs(1-exit.X) {
			return n
		}
		return 1
	}
}

// StartRow picks the y index of the first waypoint.
// Complexity: O(1).
func StartRow(maxY int, exit lanegrid.ExitPoint) int {
	switch exit.Primary() {
	case lanegrid.Bottom:
		return maxY
	case lanegrid.Top:
		return 0
	default:
		// Side exit: start on the extreme row farther from the exit.
		if 2*exit.Y <= maxY {
			return maxY
		}
		return 0
	}
}

// Order returns inner lanes 1..n starting at start, appending each time the
// nearest unused lane to the current one. On equal distance the lane
// farther from exitX goes first, leaving the nearer one for the tail.
//
// Used lanes always form one contiguous run with the current lane at one
// end, so the nearest unused lane is one of the two lanes bordering the
// run. A start outside 1..n yields a plain ascending or descending order.
// Complexity: O(n).
func Order(start, n, exitX int) []int {
	if n <= 0 {
		return nil
	}
	order := make([]int, 0, n)
	switch {
	case start < 1:
		for lane := 1; lane <= n; lane++ {
			order = append(order, lane)
		}
		return order
	case start > n:
		for lane := n; lane >= 1; lane-- {
			order = append(order, lane)
		}
		return order
	}

	order = append(order, start)
	lo, hi, cur := start, start, start
	for len(order) < n {
		left, right := lo-1, hi+1
		var next int
		switch {
		case left < 1:
			next = right
		case right > n:
			next = left
		case cur-left < right-cur:
			next = left
		case right-cur < cur-left:
			next = right
		case abs(right-exitX) > abs(left-exitX):
			next = right
		default:
			next = left
		}
		if next == left {
			lo = left
		} else {
			hi = right
		}
		order = append(order, next)
		cur = next
	}

	return order
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
