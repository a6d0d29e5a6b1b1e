// Package sweep decides where a rover starts and in which order it sweeps
// the inner lanes of a lane grid, so that coverage finishes close to the
// chosen exit with little backtracking.
//
// Policy:
//
//   - Start lane: exit on the left boundary → rightmost inner lane; right
//     boundary → leftmost; top/bottom → whichever extreme inner lane is
//     farther in x from the exit.
//   - Start row: exit on the bottom → y=MaxY; top → y=0; side exit → the
//     extreme row farther from the exit's y.
//   - Order: greedy nearest unused inner lane from the start, ties broken
//     toward the lane farther from the exit so the tail ends near it.
//
// The policy is a reproducible heuristic, not a shortest-path guarantee.
//
// Complexity: Order is O(n²) for n inner lanes; n is small in practice.
package sweep
