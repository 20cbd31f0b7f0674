// Package loopwalk discovers the closed loop of pipes passing through the
// start tile of a pipegrid.GridMap and reports its farthest point.
//
// What
//
//   - Trail is an immutable candidate path: its frontier tile, its
//     predecessor and a persistent, shared history.
//   - Walker is the full set of live Trails in one round. Advance returns a
//     fresh Walker holding the next round's Trails; the previous one is
//     never mutated.
//   - FindLoop drives a Walker from the start tile until a Trail returns to
//     the start (the loop closed) or the Walker goes dry.
//
// How
//
//	The start tile opens all four directions, so the first round launches a
//	branch toward every neighbor that opens back. Ordinary tiles have two
//	connections, one of which is the tile just left, so each branch follows
//	the pipe without choice. On a well-formed map the two branches around the
//	loop keep advancing in lockstep and get back to the start after exactly
//	the loop length; the farthest point is half of that.
//
//	An immediate reversal onto the preceding tile is forbidden. Longer
//	revisits are not prevented.
//
// Dry walkers
//
//	When every branch dead-ends before closing, FindLoop reports a zero loop
//	length and no error. This cannot be told apart from a map that has no
//	loop through the start; Result.Closed is false in both cases.
//
// Complexity (L = loop length, N = tile count)
//
//   - Time:   O(L) rounds with at most four live trails each.
//   - Memory: O(L) for the shared history of surviving trails.
//   - Rounds are capped at N unless WithMaxRounds says otherwise.
package loopwalk
