// File: lanegrid/example_test.go
package lanegrid_test

import (
	"fmt"

	"github.com/katalvlaran/lanepath/lanegrid"
)

// ExampleNewGrid derives a lane grid for a 12 m × 20 m field worked by a
// rover with a 2 m × 4 m footprint, then resolves a top-edge exit.
func ExampleNewGrid() {
	g, err := lanegrid.NewGrid(lanegrid.Dimensions{
		FieldWidth: 12, FieldBreadth: 20, RoverWidth: 2, RoverLength: 4,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("lanes: %dx%d, inner sweeps: %d\n", g.NumLanesX, g.NumLanesY, g.InnerSweeps)

	e, _ := lanegrid.ResolveCustom(g, lanegrid.Top, 2)
	x, y := g.Center(e.Point)
	fmt.Printf("exit %v on %s at (%.1f, %.1f)\n", e.Point, e.Primary(), x, y)

	// Output:
	// lanes: 6x5, inner sweeps: 4
	// exit (2,4) on top at (5.0, 18.0)
}
