// Package planner generates full-coverage lane-traversal paths.
//
// Given a lane grid and a boundary exit, Generate returns an ordered list of
// axis-aligned waypoints together with one sow flag per consecutive pair.
// A sown segment is productive coverage; an unsown one is transit.
//
// Generation runs as a small state machine:
//
//	INIT → INNER_SWEEPS → BOUNDARY_COVERAGE → EXIT_APPROACH → DONE
//
// Phases:
//   - INIT places the start chosen by package sweep.
//   - INNER_SWEEPS sweeps each inner lane end to end, turning along the
//     headland rows between lanes.
//   - BOUNDARY_COVERAGE turns onto a headland corner picked from a case
//     table (exit edge × position relative to the exit), sweeps all four
//     headlands and heads back toward the exit.
//   - EXIT_APPROACH commits the final transit move into the exit.
//   - DONE verifies the postconditions (exit reached, one flag per segment,
//     every lane visited) and reports ErrIntegrity on failure.
//
// Sowing is deduplicated over unit lane edges: each Generate call owns a
// fresh SownSet, and a request to sow a segment that overlaps sown ground
// in either direction is downgraded to transit. Gap insertion splits a sweep into an unsown
// entry gap, a sown middle and an unsown exit gap so turns stay distinct
// from productive coverage.
//
// Hooks (OnCommit, OnPhase, OnComplete) expose the run to observers;
// WithLogger wires them to a log/slog logger.
//
// Complexity: O(MaxX + MaxY) waypoints, O(MaxX²) for sweep ordering.
package planner
