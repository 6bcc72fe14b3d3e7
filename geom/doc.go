// Package geom provides the integer-exact geometry primitives used to
// place and orient belt-network entities on a tile grid: positions,
// cardinal directions, quarter-turn rotation, and the left/right/none
// side label used by splitters and mergers.
//
// Everything here is integer arithmetic. No floating point is used or
// accepted — unnormalized input positions are converted to integers
// before they ever reach this package.
package geom
