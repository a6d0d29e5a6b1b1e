// Package lanepath plans full-coverage routes over a rectangular field split
// into parallel lanes.
//
// A planned route visits every lane, marks each segment as sown or transit
// so that no segment is sown twice, and ends exactly on a chosen exit lane
// on the field boundary.
//
// The work is split into small packages:
//
//	lanegrid/ — lane grid from physical dimensions, exit resolution
//	sweep/    — start lane, start row and inner-lane order
//	planner/  — segment committer, path state machine, validation, hooks
//	classify/ — reporting labels (VRow1, HRow2, Boundary_V0, Transition…)
//	report/   — YAML export and a styled terminal summary
//	store/    — SQLite plan history keyed by UUIDv7 run IDs
//	config/   — Viper configuration (file, LANEPATH_* env, flags)
//
// The lanepath command in cmd/lanepath ties them together:
//
//	lanepath plan --field-width 12 --field-breadth 8 --corner tl --save
//	lanepath history
//	lanepath show <run-id>
package lanepath

// Version is the release reported by the lanepath command.
const Version = "0.3.0"
