package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lanepath/lanegrid"
	"github.com/katalvlaran/lanepath/planner"
)

// TestSteps_CornerExit labels the 4×4 bottom-left plan.
func TestSteps_CornerExit(t *testing.T) {
	g, err := lanegrid.FromLanes(4, 4)
	require.NoError(t, err)
	p, err := planner.Generate(2, 3, 3, lanegrid.Point{X: 0, Y: 0}, true)
	require.NoError(t, err)

	var got []string
	for _, l := range Labels(g, p) {
		got = append(got, l.String())
	}
	assert.Equal(t, []string{
		"VRow1", "Transition", "VRow2", "Transition",
		"HRow1", "Boundary_V3", "HRow2", "Boundary_V0", "ExitApproach",
	}, got)
}

// TestSteps_GapsAndFlags checks gap labels and that labels mirror flags.
func TestSteps_GapsAndFlags(t *testing.T) {
	g, err := lanegrid.FromLanes(5, 4)
	require.NoError(t, err)
	p, err := planner.Generate(3, 4, 3, lanegrid.Point{X: 2, Y: 3}, false)
	require.NoError(t, err)

	steps := Steps(g, p)
	require.Len(t, steps, len(p.SowFlags))
	for i, s := range steps {
		assert.Equal(t, p.SowFlags[i], s.Sown, "step %d", i)
		assert.Equal(t, s.Sown, s.Label.Sown(), "step %d label %s", i, s.Label)
	}
	assert.Equal(t, "Gap", steps[4].Label.String())
	assert.Equal(t, "VRow3", steps[5].Label.String())
	assert.Equal(t, "Gap", steps[6].Label.String())

	c := Counts(steps)
	assert.Equal(t, 1, c["ExitApproach"])
	assert.Equal(t, 1, c["HRow1"])
	assert.Equal(t, 1, c["HRow2"])
}

// TestSteps_HorizontalGaps labels the unsown ends of gapped headland rows
// as gaps, while turns between lanes stay transitions.
func TestSteps_HorizontalGaps(t *testing.T) {
	g, err := lanegrid.FromLanes(4, 4)
	require.NoError(t, err)
	p, err := planner.Generate(2, 3, 3, lanegrid.Point{X: 0, Y: 0}, true, planner.WithGapEverySweep(true))
	require.NoError(t, err)

	steps := Steps(g, p)
	var rowGaps, transitions int
	for i, s := range steps {
		if s.From.Y != s.To.Y || s.Sown || i == len(steps)-1 {
			continue
		}
		switch s.Label.Kind {
		case Gap:
			rowGaps++
		case Transition:
			transitions++
		}
		if s.From == (lanegrid.Point{X: 0, Y: 3}) && s.To == (lanegrid.Point{X: 1, Y: 3}) {
			assert.Equal(t, Gap, s.Label.Kind, "entry gap of the top headland row")
		}
	}
	assert.Positive(t, rowGaps)
	assert.Positive(t, transitions)
	assert.Equal(t, Gap, steps[0].Label.Kind, "entry gap of the first gapped sweep")
}

// TestSteps_ShortFlags treats missing flags as unsown and never panics.
func TestSteps_ShortFlags(t *testing.T) {
	g, err := lanegrid.FromLanes(3, 3)
	require.NoError(t, err)
	p := planner.Plan{Points: []lanegrid.Point{{X: 1, Y: 0}, {X: 1, Y: 2}, {X: 0, Y: 2}}}

	steps := Steps(g, p)
	require.Len(t, steps, 2)
	assert.Equal(t, Positioning, steps[0].Label.Kind)
	assert.Equal(t, ExitApproach, steps[1].Label.Kind)
	assert.Nil(t, Steps(g, planner.Plan{}))
}
