// Package lanegrid turns a rectangular field into a discrete grid of
// equal-width parallel lanes and resolves where on its boundary a rover
// is allowed to leave the field.
//
// What:
//
//   - Grid derives lane counts and maximum lane indices from the physical
//     field and rover footprint dimensions.
//   - Lanes on x=0, x=MaxX, y=0 and y=MaxY are headlands; all others are inner.
//   - ResolveCorner and ResolveCustom map a user-facing exit choice onto a
//     canonical boundary lane and classify which boundary edges it lies on.
//   - Center maps a lane coordinate back to physical units for consumers
//     that plot or log the planned path.
//
// Why:
//
//   - Planning operates purely in lane-index space; everything physical is
//     confined to this package.
//
// Complexity:
//
//   - NewGrid, ResolveCorner, ResolveCustom, Classify: O(1).
//
// Errors:
//
//   - ErrConfiguration: the field holds fewer than 3 lanes across or no lane along.
//   - ErrInputRange: an exit coordinate lies outside its edge or off the boundary.
package lanegrid
