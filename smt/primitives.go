package smt

import "github.com/katalvlaran/beltbalance/flowgraph"

// Primitives is everything a property predicate needs to build its
// query: the per-edge and per-node throughput variables, the
// conjoined model constraint (capacity bounds, Kirchhoff conservation,
// splitter/merger rules), and, when ModelFlags.Blocked was set, the
// parallel blocked-state variables and propagation rules.
type Primitives struct {
	Graph *flowgraph.FlowGraph

	// EdgeMap holds every edge's throughput variable.
	EdgeMap map[flowgraph.EdgeIndex]Term
	// InputMap holds every Input node's throughput variable (integer,
	// matching the whole-item nature of a belt's input rate).
	InputMap map[flowgraph.NodeIndex]Term
	// OutputMap holds every Output node's throughput variable.
	OutputMap map[flowgraph.NodeIndex]Term

	// BlockedEdgeMap, BlockedInputMap and BlockedOutputMap are
	// populated only when ModelFlags.Blocked was set.
	BlockedEdgeMap   map[flowgraph.EdgeIndex]Term
	BlockedInputMap  map[flowgraph.NodeIndex]Term
	BlockedOutputMap map[flowgraph.NodeIndex]Term

	// ModelConstraint conjoins every capacity bound, Kirchhoff
	// equation, and (unless Relaxed) splitter bottleneck condition.
	ModelConstraint Term
	// BlockingConstraint holds the per-node blocked-propagation rules,
	// empty unless ModelFlags.Blocked was set.
	BlockingConstraint []Term
}
