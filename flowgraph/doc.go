// Package flowgraph implements the IR flow graph: a directed multigraph
// of belt-network entities translated into Input, Output, Connector,
// Splitter and Merger nodes connected by capacity-labeled edges.
//
// The graph is arena-backed: nodes and edges live in flat slices and are
// addressed by stable NodeIndex/EdgeIndex values that never change as
// the graph is mutated during simplification (simplify.Simplify) or
// reversed (reverse.Reverse). Removing a node or edge tombstones its
// slot rather than compacting the arena, so any index captured before a
// mutation either still resolves to the same logical element or is
// reported dead — it is never silently reassigned to something else.
package flowgraph
