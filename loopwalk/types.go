package loopwalk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for loop discovery.
var (
	// ErrGraphNil is returned when a nil map is passed.
	ErrGraphNil = errors.New("loopwalk: map is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loopwalk: invalid option supplied")

	// ErrRoundLimit is returned when the loop neither closed nor went dry
	// within the allowed number of rounds.
	ErrRoundLimit = errors.New("loopwalk: round limit reached")
)

// Option configures FindLoop via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for FindLoop.
type Options struct {
	// Ctx allows cancellation; it is checked once per round.
	Ctx context.Context

	// OnRound is called after every advance with the round number and the
	// number of live trails.
	OnRound func(round, live int)

	// MaxRounds caps the number of rounds. Zero selects the tile count of
	// the map, which no well-formed loop can exceed.
	MaxRounds int

	// Logger receives debug records per round and at termination.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with a background context, no-op hook,
// the tile-count round cap and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnRound:   func(int, int) {},
		MaxRounds: 0,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnRound registers a callback run after every round.
func WithOnRound(fn func(round, live int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithMaxRounds caps the traversal at n rounds.
//
//	n > 0:  at most n rounds
//	n == 0: tile-count cap
//	n < 0:  ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// WithLogger routes traversal logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of FindLoop.
type Result struct {
	// Start is the start tile the traversal was seeded at.
	Start pipegrid.Tile
	// Closed reports whether a trail returned to the start.
	Closed bool
	// LoopLength is the number of tiles on the loop, 0 when not closed.
	LoopLength int
	// Farthest is LoopLength / 2: the distance to the farthest loop tile.
	Farthest int
	// Rounds is the number of rounds advanced.
	Rounds int
	// Trail is the trail that closed the loop. Zero when not closed.
	Trail Trail
}
