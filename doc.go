// Package pipeloop finds the closed loop of pipes that runs through the
// start tile of an ASCII pipe map and reports how far away its farthest
// tile is.
//
// Under the hood, everything is organized under a few subpackages:
//
//	pipegrid/     Location, Tile and the immutable GridMap with its connectivity rules
//	loopwalk/     Trail and Walker traversal engine, FindLoop driver
//	config/       TOML configuration for the command
//	cmd/pipeloop/ command line entry point printing "Part 1: N"
//
// Quick ASCII example:
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
// is a loop of eight tiles; the farthest one sits four steps from S.
package pipeloop
