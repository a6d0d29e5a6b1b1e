// Package report turns a finished plan into artifacts for people and other
// tools: a YAML document with lane and physical coordinates, and a styled
// terminal summary.
//
// The package only reads planner.Plan; it never influences planning.
package report
