package pipegrid_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ExampleGridMap_Connections shows the start tile of a square loop linking
// to the two pipes that open back toward it.
func ExampleGridMap_Connections() {
	g := pipegrid.Parse(`
		.....
		.S-7.
		.|.|.
		.L-J.
		.....
	`)
	start, err := g.Start()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("start at (%d,%d)\n", start.Location.Row, start.Location.Col)
	for _, n := range g.Connections(start) {
		d, _ := pipegrid.Relation(start.Location, n.Location)
		fmt.Printf("%s: %c at (%d,%d)\n", d, n.Symbol, n.Location.Row, n.Location.Col)
	}
	// Output:
	// start at (1,1)
	// south: | at (2,1)
	// east: - at (1,2)
}

// ExampleConnects contrasts a mutual link with a one-sided one.
func ExampleConnects() {
	f := pipegrid.Tile{Symbol: pipegrid.SouthEast, Location: pipegrid.Location{Row: 0, Col: 0}}
	seven := pipegrid.Tile{Symbol: pipegrid.SouthWest, Location: pipegrid.Location{Row: 0, Col: 1}}
	bar := pipegrid.Tile{Symbol: pipegrid.Vertical, Location: pipegrid.Location{Row: 0, Col: 1}}

	fmt.Println(pipegrid.Connects(f, seven))
	fmt.Println(pipegrid.Connects(f, bar))
	// Output:
	// true
	// false
}
