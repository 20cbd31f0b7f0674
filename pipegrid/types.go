package pipegrid

import (
	"errors"
)

// Sentinel errors for pipegrid operations.
var (
	// ErrMissingStart indicates the map carries no start tile.
	ErrMissingStart = errors.New("pipegrid: start tile 'S' not found")
	// ErrRead indicates the map source could not be read.
	ErrRead = errors.New("pipegrid: cannot read map input")
)

// Direction is one of the four cardinal directions.
type Direction int

const (
	// North decreases the row.
	North Direction = iota
	// South increases the row.
	South
	// West decreases the column.
	West
	// East increases the column.
	East
)

// Directions lists every cardinal direction in neighbor enumeration order.
var Directions = [4]Direction{North, South, West, East}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	default:
		return West
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}
	return "unknown"
}

// Location is a (Row, Col) grid coordinate. Valid locations are never negative.
type Location struct {
	Row, Col int
}

// Move returns the location one step toward d.
// ok is false when the step would leave the non-negative quadrant;
// there is no wraparound.
func (l Location) Move(d Direction) (next Location, ok bool) {
	next = l
	switch d {
	case North:
		next.Row--
	case South:
		next.Row++
	case West:
		next.Col--
	case East:
		next.Col++
	}
	if next.Row < 0 || next.Col < 0 {
		return Location{}, false
	}
	return next, true
}

// Symbol is the connector rune printed in a map cell.
type Symbol rune

// Connector symbols. Any rune not listed here behaves like Ground.
const (
	Vertical   Symbol = '|'
	Horizontal Symbol = '-'
	NorthEast  Symbol = 'L'
	NorthWest  Symbol = 'J'
	SouthWest  Symbol = '7'
	SouthEast  Symbol = 'F'
	Start      Symbol = 'S'
	Ground     Symbol = '.'
)

// Opens returns the connector set of s. Ground and unknown runes open nothing.
func (s Symbol) Opens() []Direction {
	switch s {
	case Vertical:
		return []Direction{North, South}
	case Horizontal:
		return []Direction{East, West}
	case NorthEast:
		return []Direction{North, East}
	case NorthWest:
		return []Direction{North, West}
	case SouthWest:
		return []Direction{South, West}
	case SouthEast:
		return []Direction{South, East}
	case Start:
		return []Direction{North, South, West, East}
	}
	return nil
}

// Tile is a single map cell. Tiles are compared by value.
type Tile struct {
	Symbol   Symbol
	Location Location
}

// Opens reports whether the tile's connector set contains d.
func (t Tile) Opens(d Direction) bool {
	for _, o := range t.Symbol.Opens() {
		if o == d {
			return true
		}
	}
	return false
}

// GridMap is a row-major arrangement of tiles. It is immutable once built:
// tiles[r][c].Location is always {r, c}.
type GridMap struct {
	tiles [][]Tile
	count int
}
