package loopwalk

import "github.com/katalvlaran/pipeloop/pipegrid"

// visit is a node of a persistent history list. Sibling trails born in the
// same round share their whole history.
type visit struct {
	loc  pipegrid.Location
	prev *visit
}

// Trail is a candidate path from the start to its current frontier tile.
// Trails are values; advancing one never changes it.
type Trail struct {
	current pipegrid.Location
	last    *visit // most recently left tile, nil at the start
	steps   int
}

// NewTrail seeds a trail at loc with an empty history.
func NewTrail(loc pipegrid.Location) Trail {
	return Trail{current: loc}
}

// Current returns the frontier location.
func (t Trail) Current() pipegrid.Location {
	return t.current
}

// Previous returns the tile left in the last step, if any.
func (t Trail) Previous() (pipegrid.Location, bool) {
	if t.last == nil {
		return pipegrid.Location{}, false
	}
	return t.last.loc, true
}

// Steps returns the history length. It grows by exactly one per advance.
func (t Trail) Steps() int {
	return t.steps
}

// Reached reports whether the frontier is at loc.
func (t Trail) Reached(loc pipegrid.Location) bool {
	return t.current == loc
}

// Path returns the history followed by the current location, oldest first.
// Complexity: O(Steps).
func (t Trail) Path() []pipegrid.Location {
	path := make([]pipegrid.Location, t.steps+1)
	path[t.steps] = t.current
	i := t.steps - 1
	for v := t.last; v != nil && i >= 0; v = v.prev {
		path[i] = v.loc
		i--
	}
	return path
}

// advance returns one trail per connection of the current tile, skipping
// the tile just left.
func (t Trail) advance(g *pipegrid.GridMap) []Trail {
	tile, ok := g.TileAt(t.current)
	if !ok {
		return nil
	}
	prev, hasPrev := t.Previous()
	here := &visit{loc: t.current, prev: t.last}

	var out []Trail
	for _, n := range g.Connections(tile) {
		if hasPrev && n.Location == prev {
			continue
		}
		out = append(out, Trail{current: n.Location, last: here, steps: t.steps + 1})
	}
	return out
}
