package simplify

import (
	"math/big"

	"github.com/katalvlaran/beltbalance/flowgraph"
)

// shrinkCapacities performs one capacity-tightening rewrite step and
// reports whether it mutated the graph.
func shrinkCapacities(g *flowgraph.FlowGraph) bool {
	for _, n := range g.NodeIndices() {
		node := g.Node(n)
		var changed bool
		switch v := node.(type) {
		case flowgraph.Connector:
			inIdx := g.InEdges(n)[0]
			outIdx := g.OutEdges(n)[0]
			changed = shrinkConnector(g, inIdx, outIdx)
		case flowgraph.Splitter:
			inIdx := g.InEdges(n)[0]
			if v.OutputPriority.IsNone() {
				outIdxs := g.OutEdges(n)
				changed = shrinkSplitterNoPrio(g, inIdx, outIdxs[0], outIdxs[1])
			} else {
				prioIdx, _ := g.GetOutEdge(n, v.OutputPriority)
				otherIdx, _ := g.GetOutEdge(n, v.OutputPriority.Neg())
				changed = shrinkSplitterPrio(g, inIdx, prioIdx, otherIdx)
			}
		case flowgraph.Merger:
			outIdx := g.OutEdges(n)[0]
			inIdxs := g.InEdges(n)
			changed = shrinkMerger(g, outIdx, inIdxs[0], inIdxs[1])
		}
		if changed {
			return true
		}
	}
	return false
}

func shrinkConnector(g *flowgraph.FlowGraph, inIdx, outIdx flowgraph.EdgeIndex) bool {
	inLabel := g.Edge(inIdx)
	outLabel := g.Edge(outIdx)
	if inLabel.Capacity.Cmp(outLabel.Capacity) == 0 {
		return false
	}
	min := ratMin(inLabel.Capacity, outLabel.Capacity)
	setCapacity(g, inIdx, min)
	setCapacity(g, outIdx, min)
	return true
}

// shrinkSplitterPrio applies the priority-output shrinking rule: the
// priority branch gets as much as it can take before the non-priority
// branch is touched at all.
func shrinkSplitterPrio(g *flowgraph.FlowGraph, inIdx, prioIdx, otherIdx flowgraph.EdgeIndex) bool {
	prioCap := g.Edge(prioIdx).Capacity
	otherCap := g.Edge(otherIdx).Capacity
	inCap := g.Edge(inIdx).Capacity
	outCap := new(big.Rat).Add(prioCap, otherCap)

	var newIn, newPrio, newOther *big.Rat
	switch {
	case outCap.Cmp(inCap) == 0:
		newIn, newPrio, newOther = inCap, prioCap, otherCap
	case outCap.Cmp(inCap) < 0:
		newIn, newPrio, newOther = outCap, prioCap, otherCap
	case prioCap.Cmp(inCap) >= 0:
		newIn, newPrio, newOther = inCap, inCap, new(big.Rat)
	default:
		newIn, newPrio, newOther = inCap, prioCap, new(big.Rat).Sub(inCap, prioCap)
	}

	changed := inCap.Cmp(newIn) != 0 || prioCap.Cmp(newPrio) != 0 || otherCap.Cmp(newOther) != 0
	setCapacity(g, inIdx, newIn)
	setCapacity(g, prioIdx, newPrio)
	setCapacity(g, otherIdx, newOther)
	return changed
}

// shrinkSplitterNoPrio applies the unprioritized splitter rule: when
// the two outputs together exceed what the input can supply, the
// shortfall is absorbed first by whichever branch is over half the
// input capacity.
func shrinkSplitterNoPrio(g *flowgraph.FlowGraph, inIdx, aIdx, bIdx flowgraph.EdgeIndex) bool {
	aCap := g.Edge(aIdx).Capacity
	bCap := g.Edge(bIdx).Capacity
	inCap := g.Edge(inIdx).Capacity
	outCap := new(big.Rat).Add(aCap, bCap)

	var newIn, newA, newB *big.Rat
	switch {
	case outCap.Cmp(inCap) == 0:
		newIn, newA, newB = inCap, aCap, bCap
	case outCap.Cmp(inCap) < 0:
		newIn, newA, newB = outCap, aCap, bCap
	default:
		halfIn := new(big.Rat).Quo(inCap, big.NewRat(2, 1))
		aBig := aCap.Cmp(halfIn) > 0
		bBig := bCap.Cmp(halfIn) > 0
		switch {
		case aBig && bBig:
			newIn, newA, newB = inCap, halfIn, halfIn
		case aBig:
			newIn, newA, newB = inCap, new(big.Rat).Sub(inCap, bCap), bCap
		case bBig:
			newIn, newA, newB = inCap, aCap, new(big.Rat).Sub(inCap, aCap)
		default:
			// outCap > inCap yet neither branch exceeds half of it is
			// unreachable: a+b > in and a,b <= in/2 implies a+b <= in.
			newIn, newA, newB = inCap, aCap, bCap
		}
	}

	changed := inCap.Cmp(newIn) != 0 || aCap.Cmp(newA) != 0 || bCap.Cmp(newB) != 0
	setCapacity(g, inIdx, newIn)
	setCapacity(g, aIdx, newA)
	setCapacity(g, bIdx, newB)
	return changed
}

// shrinkMerger applies the merger rule: the output is clamped to the
// combined input capacity when that is smaller, and otherwise each input
// branch is clamped to the output's capacity (no single branch may
// exceed what downstream can drain). The two inputs together may still
// exceed the output.
func shrinkMerger(g *flowgraph.FlowGraph, outIdx, aIdx, bIdx flowgraph.EdgeIndex) bool {
	outCap := g.Edge(outIdx).Capacity
	aCap := g.Edge(aIdx).Capacity
	bCap := g.Edge(bIdx).Capacity
	inCap := new(big.Rat).Add(aCap, bCap)

	var newOut, newA, newB *big.Rat
	switch {
	case inCap.Cmp(outCap) == 0:
		newOut, newA, newB = outCap, aCap, bCap
	case inCap.Cmp(outCap) < 0:
		newOut, newA, newB = inCap, aCap, bCap
	default:
		newOut, newA, newB = outCap, ratMin(aCap, outCap), ratMin(bCap, outCap)
	}

	changed := newOut.Cmp(outCap) != 0 || newA.Cmp(aCap) != 0 || newB.Cmp(bCap) != 0
	setCapacity(g, outIdx, newOut)
	setCapacity(g, aIdx, newA)
	setCapacity(g, bIdx, newB)
	return changed
}

func setCapacity(g *flowgraph.FlowGraph, idx flowgraph.EdgeIndex, cap *big.Rat) {
	label := g.Edge(idx)
	g.SetEdgeCapacity(idx, flowgraph.Edge{Side: label.Side, Capacity: cap})
}

func ratMin(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
