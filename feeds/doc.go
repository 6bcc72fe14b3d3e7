// Package feeds derives the "feeds-into" adjacency relation over entity
// grid positions: which position's output reaches which other position's
// input, honoring belt tiers, underground reach, and splitter phantom
// tiles.
//
// Relation mirrors the map-of-sets adjacency convention the rest of the
// corpus uses for graph adjacency (compare core.Graph's
// map[string]map[string][]*Edge), specialized to geom.Position keys and
// sets of destination positions instead of weighted edges.
package feeds
