package report

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lanepath/classify"
	"github.com/katalvlaran/lanepath/lanegrid"
	"github.com/katalvlaran/lanepath/planner"
)

// ErrDocument indicates a YAML document that cannot be decoded or is inconsistent.
var ErrDocument = errors.New("report: invalid document")

// Document is the serialised form of a plan.
type Document struct {
	RunID   string     `yaml:"run_id,omitempty"`
	GapSize int        `yaml:"gap_size"`
	Grid    GridInfo   `yaml:"grid"`
	Exit    ExitInfo   `yaml:"exit"`
	Totals  Totals     `yaml:"totals"`
	Steps   []StepInfo `yaml:"steps"`
}

// GridInfo describes the lane grid.
type GridInfo struct {
	LanesX      int     `yaml:"lanes_x"`
	LanesY      int     `yaml:"lanes_y"`
	RoverWidth  float64 `yaml:"rover_width"`
	RoverLength float64 `yaml:"rover_length"`
}

// ExitInfo describes the exit lane.
type ExitInfo struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Edge   string `yaml:"edge"`
	Corner bool   `yaml:"corner"`
}

// Totals summarises the plan.
type Totals struct {
	Waypoints     int  `yaml:"waypoints"`
	SownLength    int  `yaml:"sown_length"`
	TransitLength int  `yaml:"transit_length"`
	AllLanes      bool `yaml:"all_lanes_visited"`
}

// StepInfo is one labelled segment in lane and physical coordinates.
type StepInfo struct {
	From       [2]int     `yaml:"from,flow"`
	To         [2]int     `yaml:"to,flow"`
	Sown       bool       `yaml:"sown"`
	Label      string     `yaml:"label"`
	FromCenter [2]float64 `yaml:"from_center,flow"`
	ToCenter   [2]float64 `yaml:"to_center,flow"`
}

// NewDocument builds a Document for plan p on grid g ending at exit.
// Complexity: O(len(p.Points)).
func NewDocument(g lanegrid.Grid, exit lanegrid.ExitPoint, p planner.Plan) Document {
	dims := g.Dimensions()
	sown, transit := p.Lengths()
	doc := Document{
		Grid: GridInfo{LanesX: g.NumLanesX, LanesY: g.NumLanesY, RoverWidth: dims.RoverWidth, RoverLength: dims.RoverLength},
		Exit: ExitInfo{X: exit.X, Y: exit.Y, Edge: exit.Primary().String(), Corner: exit.Corner},
		Totals: Totals{
			Waypoints:     len(p.Points),
			SownLength:    sown,
			TransitLength: transit,
			AllLanes:      planner.ValidatePlan(p, g.MaxX, exit.Point) == nil,
		},
	}
	for _, s := range classify.Steps(g, p) {
		fx, fy := g.Center(s.From)
		tx, ty := g.Center(s.To)
		doc.Steps = append(doc.Steps, StepInfo{
			From:       [2]int{s.From.X, s.From.Y},
			To:         [2]int{s.To.X, s.To.Y},
			Sown:       s.Sown,
			Label:      s.Label.String(),
			FromCenter: [2]float64{fx, fy},
			ToCenter:   [2]float64{tx, ty},
		})
	}

	return doc
}

// Plan rebuilds the waypoint list and flags from the document steps.
// Returns ErrDocument if consecutive steps do not join up.
func (d Document) Plan() (planner.Plan, error) {
	if len(d.Steps) == 0 {
		return planner.Plan{}, nil
	}
	p := planner.Plan{
		Points:   make([]lanegrid.Point, 0, len(d.Steps)+1),
		SowFlags: make([]bool, 0, len(d.Steps)),
	}
	p.Points = append(p.Points, lanegrid.Point{X: d.Steps[0].From[0], Y: d.Steps[0].From[1]})
	for i, s := range d.Steps {
		if i > 0 && s.From != d.Steps[i-1].To {
			return planner.Plan{}, fmt.Errorf("%w: step %d starts at %v, previous ended at %v", ErrDocument, i, s.From, d.Steps[i-1].To)
		}
		p.Points = append(p.Points, lanegrid.Point{X: s.To[0], Y: s.To[1]})
		p.SowFlags = append(p.SowFlags, s.Sown)
	}

	return p, nil
}

// WriteYAML encodes d with two-space indentation.
func WriteYAML(w io.Writer, d Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}

	return enc.Close()
}

// ReadYAML decodes a Document written by WriteYAML.
func ReadYAML(r io.Reader) (Document, error) {
	var d Document
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrDocument, err)
	}

	return d, nil
}
