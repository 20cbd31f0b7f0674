// Package pipegrid models an ASCII map of pipe connector tiles as an
// immutable grid whose edges come from per-tile directional rules.
//
// What:
//
//   - Location is a (row, col) coordinate with bounded cardinal movement.
//   - Tile pairs a connector Symbol with its Location.
//   - GridMap is built once from text and offers bounded lookup, symbol
//     search and neighbor enumeration.
//   - Connects decides whether two cardinally adjacent tiles open toward
//     each other.
//
// Connector table:
//
//	|  north, south        L  north, east
//	-  east, west          J  north, west
//	7  south, west         F  south, east
//	S  all four directions (true shape unknown)
//	.  nothing (any other rune is ground as well)
//
// Determinism:
//
//	Connections always enumerates neighbors in the order North, South,
//	West, East, so traversals built on it are reproducible.
//
// Complexity:
//
//   - Parse:       O(W×H) time and memory.
//   - TileAt:      O(1).
//   - Find/Start:  O(W×H) worst case.
//   - Connections: O(1) (at most four lookups).
//
// Errors:
//
//   - ErrMissingStart: the map has no 'S' tile.
//   - ErrRead: the input stream could not be read.
package pipegrid
