package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/lanepath/classify"
	"github.com/katalvlaran/lanepath/lanegrid"
	"github.com/katalvlaran/lanepath/planner"
)

//go:embed schema.sql
var schemaSQL string

// timeLayout is fixed width so created_at sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

var (
	// ErrRunNotFound is returned by LoadRun for an unknown run ID.
	ErrRunNotFound = errors.New("store: run not found")
	// ErrInvalidRun indicates a run that cannot be saved (empty plan, bad ID).
	ErrInvalidRun = errors.New("store: invalid run")
)

// Run is one saved plan together with the inputs that produced it.
type Run struct {
	ID        string
	CreatedAt time.Time
	LanesX    int
	LanesY    int
	Exit      lanegrid.ExitPoint
	GapSize   int
	Plan      planner.Plan
	Labels    []string
}

// Summary is the row shown by ListRuns.
type Summary struct {
	ID            string
	CreatedAt     time.Time
	LanesX        int
	LanesY        int
	Exit          lanegrid.Point
	ExitEdge      string
	Waypoints     int
	SownLength    int
	TransitLength int
}

// Store is a SQLite-backed plan history. It is safe for concurrent use
// because *sql.DB is.
type Store struct {
	db *sql.DB
}

// Open creates the parent directory if needed, opens the database at path
// and applies the schema. Use ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create store dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// NewRun fills a Run from a grid, exit and finished plan. Labels come from
// classify.Steps so the stored history matches the reports.
func NewRun(g lanegrid.Grid, exit lanegrid.ExitPoint, gap int, p planner.Plan) Run {
	labels := classify.Labels(g, p)
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.String()
	}

	return Run{
		LanesX:  g.NumLanesX,
		LanesY:  g.NumLanesY,
		Exit:    exit,
		GapSize: gap,
		Plan:    p,
		Labels:  names,
	}
}

// SaveRun stores r in one transaction and returns its run ID. A fresh
// UUIDv7 is assigned when r.ID is empty; CreatedAt defaults to now.
func (s *Store) SaveRun(ctx context.Context, r Run) (string, error) {
	if len(r.Plan.Points) < 2 {
		return "", fmt.Errorf("%w: plan has %d waypoints", ErrInvalidRun, len(r.Plan.Points))
	}
	if len(r.Labels) != 0 && len(r.Labels) != len(r.Plan.Points)-1 {
		return "", fmt.Errorf("%w: %d labels for %d segments", ErrInvalidRun, len(r.Labels), len(r.Plan.Points)-1)
	}
	if r.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generate run id: %w", err)
		}
		r.ID = id.String()
	} else if _, err := uuid.Parse(r.ID); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRun, err)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	sown, transit := r.Plan.Lengths()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO runs
		(run_id, created_at, lanes_x, lanes_y, exit_x, exit_y, exit_edge, exit_corner,
		 gap_size, waypoints, sown_length, transit_length)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.UTC().Format(timeLayout), r.LanesX, r.LanesY,
		r.Exit.X, r.Exit.Y, r.Exit.Primary().String(), boolInt(r.Exit.Corner),
		r.GapSize, len(r.Plan.Points), sown, transit)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO segments
		(run_id, seq, from_x, from_y, to_x, to_y, sown, label)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare segments: %w", err)
	}
	defer stmt.Close()

	for i := 0; i+1 < len(r.Plan.Points); i++ {
		a, b := r.Plan.Points[i], r.Plan.Points[i+1]
		sownFlag := i < len(r.Plan.SowFlags) && r.Plan.SowFlags[i]
		label := ""
		if i < len(r.Labels) {
			label = r.Labels[i]
		}
		if _, err := stmt.ExecContext(ctx, r.ID, i, a.X, a.Y, b.X, b.Y, boolInt(sownFlag), label); err != nil {
			return "", fmt.Errorf("insert segment %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	return r.ID, nil
}

// ListRuns returns up to limit runs, newest first. limit <= 0 means all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Summary, error) {
	q := `SELECT run_id, created_at, lanes_x, lanes_y, exit_x, exit_y, exit_edge,
		waypoints, sown_length, transit_length
		FROM runs ORDER BY created_at DESC, run_id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			sum     Summary
			created string
		)
		if err := rows.Scan(&sum.ID, &created, &sum.LanesX, &sum.LanesY, &sum.Exit.X, &sum.Exit.Y,
			&sum.ExitEdge, &sum.Waypoints, &sum.SownLength, &sum.TransitLength); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if sum.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, sum)
	}

	return out, rows.Err()
}

// LoadRun rebuilds a saved run. The exit is reclassified against the stored
// grid so Primary and Corner match what Generate saw.
func (s *Store) LoadRun(ctx context.Context, id string) (Run, error) {
	var (
		r       Run
		created string
		exit    lanegrid.Point
	)
	err := s.db.QueryRowContext(ctx, `SELECT run_id, created_at, lanes_x, lanes_y, exit_x, exit_y, gap_size
		FROM runs WHERE run_id = ?`, id).
		Scan(&r.ID, &created, &r.LanesX, &r.LanesY, &exit.X, &exit.Y, &r.GapSize)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("load run: %w", err)
	}
	if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return Run{}, fmt.Errorf("parse created_at: %w", err)
	}

	g, err := lanegrid.FromLanes(r.LanesX, r.LanesY)
	if err != nil {
		return Run{}, fmt.Errorf("load run %s: %w", id, err)
	}
	if r.Exit, err = lanegrid.Classify(g, exit); err != nil {
		return Run{}, fmt.Errorf("load run %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT from_x, from_y, to_x, to_y, sown, label
		FROM segments WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return Run{}, fmt.Errorf("load segments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			a, b  lanegrid.Point
			sown  int
			label string
		)
		if err := rows.Scan(&a.X, &a.Y, &b.X, &b.Y, &sown, &label); err != nil {
			return Run{}, fmt.Errorf("scan segment: %w", err)
		}
		if len(r.Plan.Points) == 0 {
			r.Plan.Points = append(r.Plan.Points, a)
		}
		r.Plan.Points = append(r.Plan.Points, b)
		r.Plan.SowFlags = append(r.Plan.SowFlags, sown != 0)
		r.Labels = append(r.Labels, label)
	}

	return r, rows.Err()
}

// DeleteRun removes a run and its segments.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM segments WHERE run_id = ?`, id); err != nil {
		return fmt.Errorf("delete segments: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE run_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	return tx.Commit()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
