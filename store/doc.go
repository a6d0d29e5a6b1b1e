// Package store keeps a local history of generated plans in SQLite.
//
// Each run gets a UUIDv7 identifier so that listing by ID is also listing by
// creation time. A run row holds the grid, exit and totals; its segments are
// stored one row per step with the sow flag and reporting label, so a saved
// plan can be rebuilt exactly with LoadRun.
//
// The database is opened through database/sql with the pure-Go
// modernc.org/sqlite driver; no cgo is needed.
package store
