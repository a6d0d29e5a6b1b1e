package classify

import (
	"fmt"

	"github.com/katalvlaran/lanepath/lanegrid"
	"github.com/katalvlaran/lanepath/planner"
)

// Kind is the movement category of a segment.
type Kind int

const (
	// Transition is an unsown move across lanes.
	Transition Kind = iota
	// Positioning is an unsown end-to-end move along a lane.
	Positioning
	// Gap is the unsown end of a split sweep, next to its sown middle.
	Gap
	// ExitApproach is the final unsown move into the exit.
	ExitApproach
	// VRow is a sown inner lane.
	VRow
	// HRow is a sown headland row.
	HRow
	// BoundaryV is a sown headland lane.
	BoundaryV
)

// Label is a Kind plus its ordinal (VRow, HRow) or lane index (BoundaryV).
type Label struct {
	Kind  Kind
	Index int
}

// String renders labels as VRow3, HRow1, Boundary_V0, Transition, ...
func (l Label) String() string {
	switch l.Kind {
	case VRow:
		return fmt.Sprintf("VRow%d", l.Index)
	case HRow:
		return fmt.Sprintf("HRow%d", l.Index)
	case BoundaryV:
		return fmt.Sprintf("Boundary_V%d", l.Index)
	case Positioning:
		return "Positioning"
	case Gap:
		return "Gap"
	case ExitApproach:
		return "ExitApproach"
	default:
		return "Transition"
	}
}

// Sown reports whether the label marks productive coverage.
func (l Label) Sown() bool {
	return l.Kind == VRow || l.Kind == HRow || l.Kind == BoundaryV
}

// Step is one labelled segment of a plan.
type Step struct {
	From, To lanegrid.Point
	Sown     bool
	Label    Label
}

// Steps labels every segment of p on grid g. Flags missing from a short
// SowFlags slice are treated as unsown.
// Complexity: O(len(p.Points)).
func Steps(g lanegrid.Grid, p planner.Plan) []Step {
	if len(p.Points) < 2 {
		return nil
	}
	var (
		steps = make([]Step, 0, len(p.Points)-1)
		vrows = map[int]int{}
		hrows = map[int]int{}
		last  = len(p.Points) - 2
	)
	for i := 0; i <= last; i++ {
		from, to := p.Points[i], p.Points[i+1]
		sown := i < len(p.SowFlags) && p.SowFlags[i]
		seg := planner.NewSegment(from, to)

		var lbl Label
		switch {
		case sown && seg.Vertical() && g.IsInnerLane(seg.A.X):
			if _, ok := vrows[seg.A.X]; !ok {
				vrows[seg.A.X] = len(vrows) + 1
			}
			lbl = Label{Kind: VRow, Index: vrows[seg.A.X]}
		case sown && seg.Vertical():
			lbl = Label{Kind: BoundaryV, Index: seg.A.X}
		case sown:
			if _, ok := hrows[seg.A.Y]; !ok {
				hrows[seg.A.Y] = len(hrows) + 1
			}
			lbl = Label{Kind: HRow, Index: hrows[seg.A.Y]}
		case i == last:
			lbl = Label{Kind: ExitApproach}
		case splitsSownMove(p, i):
			lbl = Label{Kind: Gap}
		case seg.Horizontal():
			lbl = Label{Kind: Transition}
		default:
			lbl = Label{Kind: Positioning}
		}
		steps = append(steps, Step{From: from, To: to, Sown: sown, Label: lbl})
	}

	return steps
}

// splitsSownMove reports whether step i is the entry or exit gap of a
// split move: a neighbouring step continues it in the same direction and
// is sown.
func splitsSownMove(p planner.Plan, i int) bool {
	continues := func(j int) bool {
		if j < 0 || j+1 >= len(p.Points) || j >= len(p.SowFlags) || !p.SowFlags[j] {
			return false
		}
		return direction(p.Points[j], p.Points[j+1]) == direction(p.Points[i], p.Points[i+1])
	}

	return continues(i-1) || continues(i+1)
}

// direction is the unit step from a toward b along its axis.
func direction(a, b lanegrid.Point) lanegrid.Point {
	return lanegrid.Point{X: sign(b.X - a.X), Y: sign(b.Y - a.Y)}
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

// Labels returns just the labels of Steps.
func Labels(g lanegrid.Grid, p planner.Plan) []Label {
	steps := Steps(g, p)
	out := make([]Label, len(steps))
	for i, s := range steps {
		out[i] = s.Label
	}

	return out
}

// Counts tallies steps by rendered label.
func Counts(steps []Step) map[string]int {
	out := make(map[string]int, len(steps))
	for _, s := range steps {
		out[s.Label.String()]++
	}

	return out
}
