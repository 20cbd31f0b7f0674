package pipegrid

// Relation returns the direction in which b lies relative to a.
// Rows are compared first, then columns. ok is false for identical,
// diagonal or non-adjacent locations.
func Relation(a, b Location) (d Direction, ok bool) {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	switch {
	case dr != 0 && dc != 0:
		return 0, false
	case dr == -1:
		return North, true
	case dr == 1:
		return South, true
	case dr != 0:
		return 0, false
	case dc == -1:
		return West, true
	case dc == 1:
		return East, true
	}
	return 0, false
}

// Connects reports whether a and b are cardinal neighbors that open toward
// each other: a must open toward b and b must open back toward a.
// The predicate is symmetric. Diagonal pairs never connect.
func Connects(a, b Tile) bool {
	d, ok := Relation(a.Location, b.Location)
	if !ok {
		return false
	}
	return a.Opens(d) && b.Opens(d.Opposite())
}
