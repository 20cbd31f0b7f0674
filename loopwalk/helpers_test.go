package loopwalk_test

import "strings"

const complexLoop = `
    7-F7-
    .FJ|7
    SJLL7
    |F--J
    LJ.LJ
    `

const squareLoop = `
    .....
    .S-7.
    .|.|.
    .L-J.
    .....
    `

// ringCells returns the row-major symbols of a w×h rectangular pipe ring
// framed by one cell of ground, plus the ring coordinates in clockwise order.
func ringCells(w, h int) ([][]byte, [][2]int) {
	rows := make([][]byte, h+2)
	for r := range rows {
		rows[r] = []byte(strings.Repeat(".", w+2))
	}
	top, left, bottom, right := 1, 1, h, w
	for c := left; c <= right; c++ {
		rows[top][c] = '-'
		rows[bottom][c] = '-'
	}
	for r := top; r <= bottom; r++ {
		rows[r][left] = '|'
		rows[r][right] = '|'
	}
	rows[top][left] = 'F'
	rows[top][right] = '7'
	rows[bottom][left] = 'L'
	rows[bottom][right] = 'J'

	var ring [][2]int
	for c := left; c <= right; c++ {
		ring = append(ring, [2]int{top, c})
	}
	for r := top + 1; r <= bottom; r++ {
		ring = append(ring, [2]int{r, right})
	}
	for c := right - 1; c >= left; c-- {
		ring = append(ring, [2]int{bottom, c})
	}
	for r := bottom - 1; r > top; r-- {
		ring = append(ring, [2]int{r, left})
	}
	return rows, ring
}

// ringWithStart renders a ring with the start placed at ring[pos].
func ringWithStart(w, h, pos int) (string, int) {
	rows, ring := ringCells(w, h)
	at := ring[pos%len(ring)]
	rows[at[0]][at[1]] = 'S'
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = string(r)
	}
	return strings.Join(lines, "\n"), len(ring)
}
