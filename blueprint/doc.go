// Package blueprint decodes a Factorio blueprint string into the Entity
// slice the front-end compiles into a flow graph.
//
// A blueprint string is a version byte, followed by a standard-base64,
// zlib-deflated JSON document. Decode reverses that pipeline, maps each
// JSON entity to one of entities.Entity's concrete variants by name, snaps
// splitters (which Factorio stores offset by half a tile from their logical
// origin) back onto the integer grid, and un-inverts the JSON y-axis so
// that geom.North points the way the rest of this module expects.
//
// Entities this package does not recognize are skipped rather than
// rejected: a real blueprint routinely contains power poles, rails,
// decoratives and other entities with no bearing on belt balance.
package blueprint
