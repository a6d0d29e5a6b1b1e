// Package classify labels the segments of a plan for people and telemetry.
//
// Labels never feed back into planning; they are derived from a finished
// planner.Plan only.
//
//   - VRow{k}: the k-th distinct inner lane sown vertically, in path order.
//   - HRow1 / HRow2: the first and last distinct headland rows sown.
//   - Boundary_V{x}: a sown stretch of headland lane x.
//   - Transition: an unsown move across lanes.
//   - Positioning: an unsown move along a lane, end to end.
//   - Gap: an unsown end of a split sweep, next to its sown middle.
//   - ExitApproach: the final unsown move into the exit.
package classify
