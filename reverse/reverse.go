package reverse

import "github.com/katalvlaran/beltbalance/flowgraph"

// Reverse returns a new FlowGraph with every edge direction flipped,
// every edge's side negated, and every node's role dualized: Connector
// is self-dual, Input and Output swap, and Splitter and Merger swap
// with their priority side negated. g itself is left untouched.
func Reverse(g *flowgraph.FlowGraph) *flowgraph.FlowGraph {
	rev := flowgraph.New()

	remap := make(map[flowgraph.NodeIndex]flowgraph.NodeIndex, len(g.NodeIndices()))
	for _, n := range g.NodeIndices() {
		remap[n] = rev.AddNode(reverseNode(g.Node(n)))
	}

	for _, e := range g.EdgeIndices() {
		from, to := g.Endpoints(e)
		label := g.Edge(e)
		rev.AddEdge(remap[to], remap[from], flowgraph.Edge{
			Side:     label.Side.Neg(),
			Capacity: label.Capacity,
		})
	}

	return rev
}

func reverseNode(n flowgraph.Node) flowgraph.Node {
	switch v := n.(type) {
	case flowgraph.Connector:
		return flowgraph.Connector{ID: v.ID}
	case flowgraph.Input:
		return flowgraph.Output{ID: v.ID}
	case flowgraph.Output:
		return flowgraph.Input{ID: v.ID}
	case flowgraph.Merger:
		return flowgraph.Splitter{ID: v.ID, OutputPriority: v.InputPriority.Neg()}
	case flowgraph.Splitter:
		return flowgraph.Merger{ID: v.ID, InputPriority: v.OutputPriority.Neg()}
	default:
		panic("reverse: unknown node type")
	}
}
