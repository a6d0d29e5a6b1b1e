package sweep

import "errors"

// ErrSweepCount indicates an inner sweep count outside [0, MaxX-1].
var ErrSweepCount = errors.New("sweep: inner sweep count out of range")

// Sequence is the outcome of sweep planning.
type Sequence struct {
	// StartX, StartY is the first waypoint of the path.
	StartX, StartY int
	// Order lists the inner lanes in sweep order; Order[0] == StartX when non-empty.
	Order []int
}
