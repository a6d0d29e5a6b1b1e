// Package lanegrid provides the lane grid model. Lanes are indexed from 0;
// the outermost lanes on every side are headlands.
package lanegrid

import (
	"fmt"
	"math"
)

// NewGrid derives a Grid from physical field and rover dimensions.
//
//	NumLanesX = floor(FieldWidth / RoverWidth)
//	NumLanesY = floor(FieldBreadth / RoverLength)
//
// Returns ErrConfiguration if any dimension is non-positive or non-finite,
// if NumLanesX < MinLanesX, or if NumLanesY < 1.
// Complexity: O(1).
func NewGrid(d Dimensions) (Grid, error) {
	for _, v := range []float64{d.FieldWidth, d.FieldBreadth, d.RoverWidth, d.RoverLength} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return Grid{}, fmt.Errorf("%w: dimensions must be positive and finite (%+v)", ErrConfiguration, d)
		}
	}
	nx := int(math.Floor(d.FieldWidth / d.RoverWidth))
	ny := int(math.Floor(d.FieldBreadth / d.RoverLength))

	g, err := FromLanes(nx, ny)
	if err != nil {
		return Grid{}, err
	}
	g.dims = d

	return g, nil
}

// FromLanes builds a Grid directly from lane counts, for callers that
// already work in lane space. Physical Center mapping then assumes a unit
// rover footprint.
// Complexity: O(1).
func FromLanes(numLanesX, numLanesY int) (Grid, error) {
	if numLanesX < MinLanesX {
		return Grid{}, fmt.Errorf("%w: need at least %d lanes across, got %d", ErrConfiguration, MinLanesX, numLanesX)
	}
	if numLanesY < 1 {
		return Grid{}, fmt.Errorf("%w: need at least 1 lane along, got %d", ErrConfiguration, numLanesY)
	}

	return Grid{
		NumLanesX:   numLanesX,
		NumLanesY:   numLanesY,
		MaxX:        numLanesX - 1,
		MaxY:        numLanesY - 1,
		InnerSweeps: max(0, numLanesX-2),
		dims: Dimensions{
			FieldWidth:   float64(numLanesX),
			FieldBreadth: float64(numLanesY),
			RoverWidth:   1,
			RoverLength:  1,
		},
	}, nil
}

// Dimensions returns the physical dimensions the grid was derived from.
func (g Grid) Dimensions() Dimensions {
	return g.dims
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X <= g.MaxX && p.Y >= 0 && p.Y <= g.MaxY
}

// OnBoundary reports whether p is a headland lane or headland row.
// Complexity: O(1).
func (g Grid) OnBoundary(p Point) bool {
	if !g.InBounds(p) {
		return false
	}

	return p.X == 0 || p.X == g.MaxX || p.Y == 0 || p.Y == g.MaxY
}

// IsInnerLane reports whether x is a non-headland lane index.
func (g Grid) IsInnerLane(x int) bool {
	return x > 0 && x < g.MaxX
}

// Center maps p to the physical center of its cell: the lane index scaled
// by the rover footprint plus a half-cell offset.
// Complexity: O(1).
func (g Grid) Center(p Point) (x, y float64) {
	x = (float64(p.X) + 0.5) * g.dims.RoverWidth
	y = (float64(p.Y) + 0.5) * g.dims.RoverLength

	return x, y
}
