package lanegrid

import (
	"fmt"
	"strings"
)

// ResolveCorner maps a corner to its boundary lane.
// Returns ErrInputRange for an unknown corner value.
// Complexity: O(1).
func ResolveCorner(g Grid, c Corner) (ExitPoint, error) {
	var p Point
	switch c {
	case TopLeft:
		p = Point{X: 0, Y: g.MaxY}
	case TopRight:
		p = Point{X: g.MaxX, Y: g.MaxY}
	case BottomLeft:
		p = Point{X: 0, Y: 0}
	case BottomRight:
		p = Point{X: g.MaxX, Y: 0}
	default:
		return ExitPoint{}, fmt.Errorf("%w: unknown corner %d", ErrInputRange, int(c))
	}

	return Classify(g, p)
}

// ResolveCustom picks the lane at position coord along edge.
// Top and Bottom accept coord in [0, MaxX]; Left and Right accept [0, MaxY].
// Complexity: O(1).
func ResolveCustom(g Grid, edge Edge, coord int) (ExitPoint, error) {
	var p Point
	switch edge {
	case Top, Bottom:
		if coord < 0 || coord > g.MaxX {
			return ExitPoint{}, fmt.Errorf("%w: %s edge lane %d not in [0,%d]", ErrInputRange, edge, coord, g.MaxX)
		}
		p = Point{X: coord, Y: 0}
		if edge == Top {
			p.Y = g.MaxY
		}
	case Left, Right:
		if coord < 0 || coord > g.MaxY {
			return ExitPoint{}, fmt.Errorf("%w: %s edge lane %d not in [0,%d]", ErrInputRange, edge, coord, g.MaxY)
		}
		p = Point{X: 0, Y: coord}
		if edge == Right {
			p.X = g.MaxX
		}
	default:
		return ExitPoint{}, fmt.Errorf("%w: unknown edge %d", ErrInputRange, int(edge))
	}

	return Classify(g, p)
}

// Classify attaches boundary edges to p.
// Returns ErrInputRange if p is outside the grid or not on its boundary.
// Complexity: O(1).
func Classify(g Grid, p Point) (ExitPoint, error) {
	if !g.OnBoundary(p) {
		return ExitPoint{}, fmt.Errorf("%w: %v is not a boundary lane of a %dx%d grid", ErrInputRange, p, g.NumLanesX, g.NumLanesY)
	}
	e := ExitPoint{Point: p}
	switch {
	case p.Y == 0:
		e.HorizontalEdge = Bottom
	case p.Y == g.MaxY:
		e.HorizontalEdge = Top
	}
	switch {
	case p.X == 0:
		e.VerticalEdge = Left
	case p.X == g.MaxX:
		e.VerticalEdge = Right
	}
	e.Corner = e.HorizontalEdge != EdgeNone && e.VerticalEdge != EdgeNone

	return e, nil
}

// ParseCorner accepts "top-left", "tl", "topleft" and the like (case-insensitive).
func ParseCorner(s string) (Corner, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "-")) {
	case "top-left", "topleft", "tl":
		return TopLeft, nil
	case "top-right", "topright", "tr":
		return TopRight, nil
	case "bottom-left", "bottomleft", "bl":
		return BottomLeft, nil
	case "bottom-right", "bottomright", "br":
		return BottomRight, nil
	}

	return 0, fmt.Errorf("%w: unknown corner %q", ErrInputRange, s)
}

// ParseEdge accepts "top", "bottom", "left", "right" or their initials.
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "t":
		return Top, nil
	case "bottom", "b":
		return Bottom, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}

	return EdgeNone, fmt.Errorf("%w: unknown edge %q", ErrInputRange, s)
}
