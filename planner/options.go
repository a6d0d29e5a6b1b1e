package planner

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lanepath/lanegrid"
)

// DefaultGapSize is the gap length, in lane units, used around turns.
const DefaultGapSize = 1

// Option configures Generate via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Generate is invoked.
type Option func(*Options)

// Options holds tunables and observer hooks for one Generate call.
type Options struct {
	// GapSize is the length of the unsown entry and exit gaps of a
	// gap-inserted sweep. Zero disables gap insertion.
	GapSize int

	// GapEverySweep gap-inserts every inner and headland sweep instead of
	// only the final inner sweep toward a top/bottom exit and the headland
	// sweep that closes on the exit.
	GapEverySweep bool

	// OnCommit is called for every appended segment with its final sow flag.
	OnCommit func(from, to lanegrid.Point, sown bool)

	// OnPhase is called on every state transition.
	OnPhase func(from, to Phase)

	// OnComplete is called once with the verified plan.
	OnComplete func(p Plan)

	err error
}

// DefaultOptions returns Options with:
//   - GapSize = DefaultGapSize
//   - GapEverySweep = false
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		GapSize:    DefaultGapSize,
		OnCommit:   func(lanegrid.Point, lanegrid.Point, bool) {},
		OnPhase:    func(Phase, Phase) {},
		OnComplete: func(Plan) {},
	}
}

// WithGapSize sets the gap length in lane units.
//
//	n > 0: gaps of n lanes
//	n == 0: no gap insertion
//	n < 0: invalid option → ErrOptionViolation
func WithGapSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: GapSize cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.GapSize = n
	}
}

// WithGapEverySweep toggles gap insertion on every sweep.
func WithGapEverySweep(on bool) Option {
	return func(o *Options) {
		o.GapEverySweep = on
	}
}

// WithOnCommit registers a callback run after each segment is committed.
func WithOnCommit(fn func(from, to lanegrid.Point, sown bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCommit = fn
		}
	}
}

// WithOnPhase registers a callback run on each phase transition.
func WithOnPhase(fn func(from, to Phase)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// WithOnComplete registers a callback run with the finished plan.
func WithOnComplete(fn func(p Plan)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComplete = fn
		}
	}
}

// WithLogger chains logging onto the hooks already installed: commits at
// Debug, phase transitions and completion at Info. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			return
		}
		prevCommit, prevPhase, prevDone := o.OnCommit, o.OnPhase, o.OnComplete
		o.OnCommit = func(from, to lanegrid.Point, sown bool) {
			prevCommit(from, to, sown)
			l.Debug("waypoint committed",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
				slog.Bool("sown", sown),
			)
		}
		o.OnPhase = func(from, to Phase) {
			prevPhase(from, to)
			l.Info("phase transition",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		}
		o.OnComplete = func(p Plan) {
			prevDone(p)
			sown, transit := p.Lengths()
			l.Info("path generated",
				slog.Int("waypoints", len(p.Points)),
				slog.Int("sown_length", sown),
				slog.Int("transit_length", transit),
			)
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
