package simplify

import (
	"github.com/katalvlaran/beltbalance/entities"
	"github.com/katalvlaran/beltbalance/flowgraph"
)

// CoalesceStrength controls how aggressively connectors are merged into
// their neighbors.
type CoalesceStrength int

const (
	// Lossless only coalesces a connector into its neighbor edge when
	// the connector's own entity ID matches the source or target
	// entity ID, preserving the blueprint's original segmentation.
	Lossless CoalesceStrength = iota
	// Aggressive coalesces any eligible connector regardless of entity
	// ID, minimizing node and edge count at the cost of traceability.
	Aggressive
)

// Simplify rewrites g in place to a fixed point: entities named in
// exclude are stripped even if they are Input/Output nodes, then
// coalescing and capacity shrinking alternate until neither changes the
// graph.
func Simplify(g *flowgraph.FlowGraph, exclude []entities.EntityId, strength CoalesceStrength) {
	removeFalseIO(g, exclude)
	for {
		if coalesceNodes(g, strength) {
			continue
		}
		if shrinkCapacities(g) {
			continue
		}
		return
	}
}

// removeFalseIO deletes every Input/Output node whose entity ID appears
// in exclude, rescanning after each removal until none remain. Neighbors
// left dangling by a removal are not touched here; coalesceNodes prunes
// them later.
func removeFalseIO(g *flowgraph.FlowGraph, exclude []entities.EntityId) {
	excluded := make(map[entities.EntityId]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}
	if len(excluded) == 0 {
		return
	}
outer:
	for {
		for _, n := range g.NodeIndices() {
			node := g.Node(n)
			switch node.Kind() {
			case flowgraph.KindInput, flowgraph.KindOutput:
				if _, ok := excluded[node.EntityID()]; ok {
					g.RemoveNode(n)
					continue outer
				}
			}
		}
		return
	}
}

// coalesceNodes performs one rewrite step and reports whether it
// mutated the graph. Callers re-invoke it until it returns false.
func coalesceNodes(g *flowgraph.FlowGraph, strength CoalesceStrength) bool {
	for _, n := range g.NodeIndices() {
		node := g.Node(n)
		inDeg := g.InDegree(n)
		outDeg := g.OutDegree(n)

		if node.Kind() == flowgraph.KindInput || node.Kind() == flowgraph.KindOutput {
			if inDeg == 0 && outDeg == 0 {
				g.RemoveNode(n)
				return true
			}
			continue
		}

		if inDeg == 0 || outDeg == 0 {
			g.RemoveNode(n)
			return true
		}

		sourceNode := g.InNodes(n)[0]
		targetNode := g.OutNodes(n)[0]

		switch node.Kind() {
		case flowgraph.KindConnector:
			srcKind := g.Node(sourceNode).Kind()
			dstKind := g.Node(targetNode).Kind()
			if isSplitterOrMerger(srcKind) && isSplitterOrMerger(dstKind) {
				// A connector strictly between a splitter and a merger
				// carries side information that coalescing would
				// destroy; it must stay.
				continue
			}
			if strength == Lossless {
				sourceID := g.Node(sourceNode).EntityID()
				targetID := g.Node(targetNode).EntityID()
				id := node.EntityID()
				if sourceID != id && id != targetID {
					continue
				}
			}
		case flowgraph.KindMerger, flowgraph.KindSplitter:
			if inDeg+outDeg == 3 {
				continue
			}
			g.SetNode(n, flowgraph.Connector{ID: node.EntityID()})
			return true
		default:
			continue
		}

		inEdge := g.InEdges(n)[0]
		outEdge := g.OutEdges(n)[0]
		inLabel := g.Edge(inEdge)
		outLabel := g.Edge(outEdge)
		if !inLabel.CanJoin(outLabel) {
			continue
		}
		newLabel := inLabel.Join(outLabel)
		g.AddEdge(sourceNode, targetNode, newLabel)
		g.RemoveNode(n)
		return true
	}
	return false
}

func isSplitterOrMerger(k flowgraph.NodeKind) bool {
	return k == flowgraph.KindSplitter || k == flowgraph.KindMerger
}
