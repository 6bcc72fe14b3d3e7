package flowgraph

import "github.com/katalvlaran/beltbalance/geom"

// NodeIndex addresses a node slot in a FlowGraph's arena. It remains
// valid (though possibly tombstoned) for the graph's lifetime.
type NodeIndex int

// EdgeIndex addresses an edge slot in a FlowGraph's arena.
type EdgeIndex int

type edgeRecord struct {
	From, To NodeIndex
	Label    Edge
}

// FlowGraph is a directed multigraph of Node values connected by Edge
// labels, stored in an arena: nodes and edges live in flat slices and
// are addressed by stable indices. Deletion tombstones a slot (marks it
// dead in the companion alive slice) instead of compacting the arena,
// so no live index is ever silently reassigned to a different element.
type FlowGraph struct {
	nodes     []Node
	nodeAlive []bool

	edges     []edgeRecord
	edgeAlive []bool

	outEdges [][]EdgeIndex
	inEdges  [][]EdgeIndex
}

// New returns an empty FlowGraph.
func New() *FlowGraph {
	return &FlowGraph{}
}

// AddNode appends n to the arena and returns its stable index.
func (g *FlowGraph) AddNode(n Node) NodeIndex {
	idx := NodeIndex(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.nodeAlive = append(g.nodeAlive, true)
	g.outEdges = append(g.outEdges, nil)
	g.inEdges = append(g.inEdges, nil)
	return idx
}

// AddEdge appends a directed edge from -> to carrying label, and
// returns its stable index.
func (g *FlowGraph) AddEdge(from, to NodeIndex, label Edge) EdgeIndex {
	idx := EdgeIndex(len(g.edges))
	g.edges = append(g.edges, edgeRecord{From: from, To: to, Label: label})
	g.edgeAlive = append(g.edgeAlive, true)
	g.outEdges[from] = append(g.outEdges[from], idx)
	g.inEdges[to] = append(g.inEdges[to], idx)
	return idx
}

// RemoveEdge tombstones e. It is a no-op if e is already dead.
func (g *FlowGraph) RemoveEdge(e EdgeIndex) {
	if !g.edgeAlive[e] {
		return
	}
	g.edgeAlive[e] = false
	rec := g.edges[e]
	g.outEdges[rec.From] = removeIdx(g.outEdges[rec.From], e)
	g.inEdges[rec.To] = removeIdx(g.inEdges[rec.To], e)
}

// RemoveNode tombstones n and cascades to tombstone every edge touching
// it. It is a no-op if n is already dead.
func (g *FlowGraph) RemoveNode(n NodeIndex) {
	if !g.nodeAlive[n] {
		return
	}
	for _, e := range append([]EdgeIndex(nil), g.outEdges[n]...) {
		g.RemoveEdge(e)
	}
	for _, e := range append([]EdgeIndex(nil), g.inEdges[n]...) {
		g.RemoveEdge(e)
	}
	g.nodeAlive[n] = false
}

func removeIdx(s []EdgeIndex, target EdgeIndex) []EdgeIndex {
	for i, v := range s {
		if v == target {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// NodeAlive reports whether n has not been removed.
func (g *FlowGraph) NodeAlive(n NodeIndex) bool { return g.nodeAlive[n] }

// EdgeAlive reports whether e has not been removed.
func (g *FlowGraph) EdgeAlive(e EdgeIndex) bool { return g.edgeAlive[e] }

// Node returns the node stored at n.
func (g *FlowGraph) Node(n NodeIndex) Node { return g.nodes[n] }

// SetNode overwrites the node stored at n in place, used by the
// simplifier to demote a degenerate Splitter/Merger to a Connector
// without disturbing n's incident edges or any index that refers to it.
func (g *FlowGraph) SetNode(n NodeIndex, node Node) { g.nodes[n] = node }

// Edge returns the label stored at e; see Endpoints for its endpoints.
func (g *FlowGraph) Edge(e EdgeIndex) Edge { return g.edges[e].Label }

// Endpoints returns the (from, to) node indices of e.
func (g *FlowGraph) Endpoints(e EdgeIndex) (from, to NodeIndex) {
	rec := g.edges[e]
	return rec.From, rec.To
}

// SetEdgeCapacity overwrites e's capacity label in place.
func (g *FlowGraph) SetEdgeCapacity(e EdgeIndex, label Edge) {
	g.edges[e].Label = label
}

// NodeIndices returns the indices of every live node.
func (g *FlowGraph) NodeIndices() []NodeIndex {
	out := make([]NodeIndex, 0, len(g.nodes))
	for i, alive := range g.nodeAlive {
		if alive {
			out = append(out, NodeIndex(i))
		}
	}
	return out
}

// EdgeIndices returns the indices of every live edge.
func (g *FlowGraph) EdgeIndices() []EdgeIndex {
	out := make([]EdgeIndex, 0, len(g.edges))
	for i, alive := range g.edgeAlive {
		if alive {
			out = append(out, EdgeIndex(i))
		}
	}
	return out
}

// NodeCount returns the number of live nodes.
func (g *FlowGraph) NodeCount() int {
	n := 0
	for _, alive := range g.nodeAlive {
		if alive {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of live edges.
func (g *FlowGraph) EdgeCount() int {
	n := 0
	for _, alive := range g.edgeAlive {
		if alive {
			n++
		}
	}
	return n
}

// OutEdges returns the live outgoing edge indices of n.
func (g *FlowGraph) OutEdges(n NodeIndex) []EdgeIndex {
	return g.liveSubset(g.outEdges[n])
}

// InEdges returns the live incoming edge indices of n.
func (g *FlowGraph) InEdges(n NodeIndex) []EdgeIndex {
	return g.liveSubset(g.inEdges[n])
}

func (g *FlowGraph) liveSubset(idxs []EdgeIndex) []EdgeIndex {
	out := make([]EdgeIndex, 0, len(idxs))
	for _, e := range idxs {
		if g.edgeAlive[e] {
			out = append(out, e)
		}
	}
	return out
}

// OutDegree returns the number of live outgoing edges of n.
func (g *FlowGraph) OutDegree(n NodeIndex) int { return len(g.OutEdges(n)) }

// InDegree returns the number of live incoming edges of n.
func (g *FlowGraph) InDegree(n NodeIndex) int { return len(g.InEdges(n)) }

// OutNodes returns the successor node of each live outgoing edge of n,
// in edge order; a node reached by several edges appears once per edge.
func (g *FlowGraph) OutNodes(n NodeIndex) []NodeIndex {
	var out []NodeIndex
	for _, e := range g.OutEdges(n) {
		out = append(out, g.edges[e].To)
	}
	return out
}

// InNodes returns the predecessor node of each live incoming edge of n,
// in edge order; a node reached by several edges appears once per edge.
func (g *FlowGraph) InNodes(n NodeIndex) []NodeIndex {
	var out []NodeIndex
	for _, e := range g.InEdges(n) {
		out = append(out, g.edges[e].From)
	}
	return out
}

// GetOutEdge returns the first live outgoing edge of n labeled with side,
// and false if there is none. Used to resolve a Splitter's priority output or a
// Merger's priority input by side rather than by arbitrary order.
func (g *FlowGraph) GetOutEdge(n NodeIndex, side geom.Side) (EdgeIndex, bool) {
	for _, e := range g.OutEdges(n) {
		if g.edges[e].Label.Side == side {
			return e, true
		}
	}
	return 0, false
}

// GetInEdge returns the first live incoming edge of n labeled with side,
// and false if there is none.
func (g *FlowGraph) GetInEdge(n NodeIndex, side geom.Side) (EdgeIndex, bool) {
	for _, e := range g.InEdges(n) {
		if g.edges[e].Label.Side == side {
			return e, true
		}
	}
	return 0, false
}
