// Package lanegrid defines core types and sentinel errors
// for the lanegrid subpackage of github.com/katalvlaran/lanepath.
package lanegrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for lanegrid operations.
var (
	// ErrConfiguration indicates the field and rover dimensions do not yield a usable lane grid.
	ErrConfiguration = errors.New("lanegrid: invalid grid configuration")
	// ErrInputRange indicates an exit coordinate outside the valid range for its edge.
	ErrInputRange = errors.New("lanegrid: exit coordinate out of range")
)

// MinLanesX is the smallest number of lanes across the field: two headlands plus one inner lane.
const MinLanesX = 3

// Point is a lane coordinate. X indexes lanes across the field, Y along it.
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Dimensions holds the physical sizes a Grid is derived from.
// All values share one unit (metres by convention) and must be positive.
type Dimensions struct {
	FieldWidth   float64 // extent across lanes (x)
	FieldBreadth float64 // extent along lanes (y)
	RoverWidth   float64 // footprint across lanes
	RoverLength  float64 // footprint along lanes
}

// Grid is the immutable lane grid derived from Dimensions.
type Grid struct {
	NumLanesX, NumLanesY int
	MaxX, MaxY           int
	// InnerSweeps is the number of non-headland lanes across the field.
	InnerSweeps int

	dims Dimensions
}

// Edge names one of the four boundary edges of the field.
type Edge int

const (
	// EdgeNone is the zero value; no boundary edge.
	EdgeNone Edge = iota
	// Top is the row y=MaxY.
	Top
	// Bottom is the row y=0.
	Bottom
	// Left is the lane x=0.
	Left
	// Right is the lane x=MaxX.
	Right
)

// String returns the lower-case edge name.
func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Vertical reports whether the edge is a headland lane (Left or Right).
func (e Edge) Vertical() bool { return e == Left || e == Right }

// Horizontal reports whether the edge is a headland row (Top or Bottom).
func (e Edge) Horizontal() bool { return e == Top || e == Bottom }

// Corner enumerates the four field corners.
type Corner int

const (
	// TopLeft is (0, MaxY).
	TopLeft Corner = iota + 1
	// TopRight is (MaxX, MaxY).
	TopRight
	// BottomLeft is (0, 0).
	BottomLeft
	// BottomRight is (MaxX, 0).
	BottomRight
)

// String returns the hyphenated corner name.
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return "invalid"
	}
}

// ExitPoint is a boundary lane together with the edges it lies on.
// A corner lies on exactly one horizontal and one vertical edge.
type ExitPoint struct {
	Point
	// HorizontalEdge is Top or Bottom when Y is a headland row, EdgeNone otherwise.
	HorizontalEdge Edge
	// VerticalEdge is Left or Right when X is a headland lane, EdgeNone otherwise.
	VerticalEdge Edge
	// Corner is true when both edges are set.
	Corner bool
}

// Primary returns the edge that drives planning decisions.
// Vertical edges win, so corners follow the side-exit rules.
func (e ExitPoint) Primary() Edge {
	if e.VerticalEdge != EdgeNone {
		return e.VerticalEdge
	}

	return e.HorizontalEdge
}

// On reports whether the exit lies on edge.
func (e ExitPoint) On(edge Edge) bool {
	return e.HorizontalEdge == edge || e.VerticalEdge == edge
}
