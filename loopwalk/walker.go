package loopwalk

import "github.com/katalvlaran/pipeloop/pipegrid"

// Walker holds every live trail of one round over a shared, read-only map.
type Walker struct {
	grid   *pipegrid.GridMap
	trails []Trail
	round  int
}

// NewWalker returns a walker holding a single trail seeded at start.
func NewWalker(g *pipegrid.GridMap, start pipegrid.Location) *Walker {
	return &Walker{grid: g, trails: []Trail{NewTrail(start)}}
}

// Trails returns a copy of the live trails.
func (w *Walker) Trails() []Trail {
	out := make([]Trail, len(w.trails))
	copy(out, w.trails)
	return out
}

// Round returns how many rounds produced this walker.
func (w *Walker) Round() int {
	return w.round
}

// IsDry reports whether no trail is left.
func (w *Walker) IsDry() bool {
	return len(w.trails) == 0
}

// Reached returns the first trail whose frontier is at loc.
func (w *Walker) Reached(loc pipegrid.Location) (Trail, bool) {
	for _, t := range w.trails {
		if t.Reached(loc) {
			return t, true
		}
	}
	return Trail{}, false
}

// Advance moves every trail one step and returns the next round's walker.
// The new walker holds only the emitted trails; w is left untouched.
func (w *Walker) Advance() *Walker {
	next := &Walker{grid: w.grid, round: w.round + 1}
	for _, t := range w.trails {
		next.trails = append(next.trails, t.advance(w.grid)...)
	}
	return next
}
