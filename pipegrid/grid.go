package pipegrid

import (
	"fmt"
	"io"
	"strings"
)

// Parse builds a GridMap from text. Each line is trimmed and blank lines are
// skipped; every remaining rune becomes a Tile at its (row, col) position.
// Rows are not required to share a length.
// Complexity: O(W×H) time and memory.
func Parse(text string) *GridMap {
	return build(strings.Split(text, "\n"))
}

// ParseReader is Parse over a stream. The whole stream is read first, so
// line length is unbounded. Read failures wrap ErrRead.
func ParseReader(r io.Reader) (*GridMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return Parse(string(data)), nil
}

// build assigns tiles to the non-blank trimmed lines.
func build(lines []string) *GridMap {
	g := &GridMap{}
	for _, line := range lines {
		// Padding and blank lines carry no tiles
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Row index counts kept lines only
		row := len(g.tiles)
		runes := []rune(line)
		tiles := make([]Tile, len(runes))
		for col, r := range runes {
			tiles[col] = Tile{Symbol: Symbol(r), Location: Location{Row: row, Col: col}}
		}
		g.tiles = append(g.tiles, tiles)
		g.count += len(tiles)
	}
	return g
}

// Rows returns the number of rows.
func (g *GridMap) Rows() int {
	return len(g.tiles)
}

// Width returns the length of row r, or 0 when r is out of range.
func (g *GridMap) Width(r int) int {
	if r < 0 || r >= len(g.tiles) {
		return 0
	}
	return len(g.tiles[r])
}

// Len returns the total number of tiles.
func (g *GridMap) Len() int {
	return g.count
}

// Tiles returns every tile in row-major order. The slice is a fresh copy.
func (g *GridMap) Tiles() []Tile {
	out := make([]Tile, 0, g.count)
	for _, row := range g.tiles {
		out = append(out, row...)
	}
	return out
}

// TileAt returns the tile stored at loc, or false when loc lies outside the map.
// Complexity: O(1).
func (g *GridMap) TileAt(loc Location) (Tile, bool) {
	if loc.Row < 0 || loc.Row >= len(g.tiles) {
		return Tile{}, false
	}
	row := g.tiles[loc.Row]
	if loc.Col < 0 || loc.Col >= len(row) {
		return Tile{}, false
	}
	return row[loc.Col], true
}

// Find returns the first tile carrying sym in row-major scan order.
func (g *GridMap) Find(sym Symbol) (Tile, bool) {
	for _, row := range g.tiles {
		for _, t := range row {
			if t.Symbol == sym {
				return t, true
			}
		}
	}
	return Tile{}, false
}

// Start returns the start tile or ErrMissingStart.
func (g *GridMap) Start() (Tile, error) {
	t, ok := g.Find(Start)
	if !ok {
		return Tile{}, ErrMissingStart
	}
	return t, nil
}

// Connections returns the neighbors of t that mutually connect with it,
// in Directions order. Ground tiles have none.
// Complexity: O(1).
func (g *GridMap) Connections(t Tile) []Tile {
	var out []Tile
	for _, d := range Directions {
		// Skip steps off the top or left edge, then off the far edges
		loc, ok := t.Location.Move(d)
		if !ok {
			continue
		}
		n, ok := g.TileAt(loc)
		if !ok {
			continue
		}
		// Keep only mutual links
		if Connects(t, n) {
			out = append(out, n)
		}
	}
	return out
}

// String renders the map one row per line.
func (g *GridMap) String() string {
	var sb strings.Builder
	for i, row := range g.tiles {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			sb.WriteRune(rune(t.Symbol))
		}
	}
	return sb.String()
}
