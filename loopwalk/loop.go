package loopwalk

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// FindLoop walks g from its start tile until a trail closes the loop or the
// walker goes dry, applying any number of functional Options.
// Returns ErrGraphNil for a nil map, ErrOptionViolation for bad options,
// pipegrid.ErrMissingStart when there is no start tile, ErrRoundLimit when
// the cap is hit, or the context error on cancellation.
//
// A dry walker is not an error: the Result has Closed == false and a zero
// LoopLength.
func FindLoop(g *pipegrid.GridMap, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Locate the start tile
	start, err := g.Start()
	if err != nil {
		return nil, err
	}
	// Zero cap: no loop can be longer than the map has tiles
	limit := o.MaxRounds
	if limit == 0 {
		limit = g.Len()
	}
	log := o.Logger.With(slog.Int("start_row", start.Location.Row), slog.Int("start_col", start.Location.Col))

	// Seed a single trail at the start and advance round by round
	res := &Result{Start: start}
	w := NewWalker(g, start.Location)
	for !w.IsDry() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		if w.Round() >= limit {
			return nil, fmt.Errorf("%w: %d rounds, %d trails still live", ErrRoundLimit, w.Round(), len(w.trails))
		}

		w = w.Advance()
		res.Rounds = w.Round()
		o.OnRound(w.Round(), len(w.trails))
		log.Debug("round advanced", slog.Int("round", w.Round()), slog.Int("live", len(w.trails)))

		// Any trail back at the start closes the loop
		if t, ok := w.Reached(start.Location); ok {
			res.Closed = true
			res.Trail = t
			res.LoopLength = t.Steps()
			break
		}
	}
	// Both directions meet halfway around the loop
	res.Farthest = res.LoopLength / 2

	if res.Closed {
		log.Debug("loop closed", slog.Int("length", res.LoopLength), slog.Int("farthest", res.Farthest))
	} else {
		log.Debug("walker went dry", slog.Int("rounds", res.Rounds))
	}
	return res, nil
}

// Farthest returns the distance from the start to the farthest tile of the
// loop, or 0 when the walker goes dry.
func Farthest(g *pipegrid.GridMap, opts ...Option) (int, error) {
	res, err := FindLoop(g, opts...)
	if err != nil {
		return 0, err
	}
	return res.Farthest, nil
}

// Process parses text and returns Farthest for the resulting map.
func Process(text string, opts ...Option) (int, error) {
	return Farthest(pipegrid.Parse(text), opts...)
}
