package smt

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/beltbalance/flowgraph"
)

// Lower translates g into a Primitives bundle over b: one real variable
// per edge bounded by [0, capacity], a conservation equation at every
// Connector/Merger/Splitter, an input/output variable at every
// Input/Output, the splitter bottleneck rule (unless flags.Relaxed),
// and, when flags.Blocked, a parallel boolean blocking encoding.
func Lower(g *flowgraph.FlowGraph, b Backend, flags ModelFlags) *Primitives {
	p := &Primitives{
		Graph:     g,
		EdgeMap:   make(map[flowgraph.EdgeIndex]Term),
		InputMap:  make(map[flowgraph.NodeIndex]Term),
		OutputMap: make(map[flowgraph.NodeIndex]Term),
	}
	if flags.Has(Blocked) {
		p.BlockedEdgeMap = make(map[flowgraph.EdgeIndex]Term)
		p.BlockedInputMap = make(map[flowgraph.NodeIndex]Term)
		p.BlockedOutputMap = make(map[flowgraph.NodeIndex]Term)
	}

	zero := b.RealVal(0, 1)
	var constraints []Term
	var blocking []Term

	for _, e := range g.EdgeIndices() {
		label := g.Edge(e)
		v := b.RealConst(fmt.Sprintf("edge_%d", e))
		p.EdgeMap[e] = v
		constraints = append(constraints, b.Le(v, RatTerm(b, label.Capacity)), b.Ge(v, zero))

		if flags.Has(Blocked) {
			blockedVar := b.BoolConst(fmt.Sprintf("blocked_%d", e))
			p.BlockedEdgeMap[e] = blockedVar
			constraints = append(constraints, b.Implies(blockedVar, b.Eq(v, zero)))
		}
	}

	for _, n := range g.NodeIndices() {
		switch node := g.Node(n).(type) {
		case flowgraph.Connector:
			constraints = append(constraints, kirchhoff(g, b, n, p))
			if flags.Has(Blocked) {
				inIdx := g.InEdges(n)[0]
				outIdx := g.OutEdges(n)[0]
				blocking = append(blocking, b.Iff(p.BlockedEdgeMap[inIdx], p.BlockedEdgeMap[outIdx]))
			}

		case flowgraph.Input:
			outIdx := g.OutEdges(n)[0]
			inputVar := b.IntConst(fmt.Sprintf("input_%d", node.ID))
			p.InputMap[n] = inputVar
			constraints = append(constraints, b.Eq(b.ToReal(inputVar), p.EdgeMap[outIdx]))
			if flags.Has(Blocked) {
				p.BlockedInputMap[n] = p.BlockedEdgeMap[outIdx]
			}

		case flowgraph.Output:
			inIdx := g.InEdges(n)[0]
			outputVar := b.RealConst(fmt.Sprintf("output_%d", node.ID))
			p.OutputMap[n] = outputVar
			constraints = append(constraints, b.Eq(outputVar, p.EdgeMap[inIdx]))
			if flags.Has(Blocked) {
				p.BlockedOutputMap[n] = p.BlockedEdgeMap[inIdx]
			}

		case flowgraph.Merger:
			constraints = append(constraints, kirchhoff(g, b, n, p))
			if flags.Has(Blocked) {
				inIdxs := g.InEdges(n)
				outIdx := g.OutEdges(n)[0]
				blockedIn1 := p.BlockedEdgeMap[inIdxs[0]]
				blockedIn2 := p.BlockedEdgeMap[inIdxs[1]]
				blockedOut := p.BlockedEdgeMap[outIdx]
				// a blocked output blocks both inputs; an unblocked
				// output leaves neither input blocked
				blocking = append(blocking, b.IfThenElse(blockedOut,
					b.And(blockedIn1, blockedIn2),
					b.Not(b.Or(blockedIn1, blockedIn2))))
			}

		case flowgraph.Splitter:
			constraints = append(constraints, kirchhoff(g, b, n, p))
			cond := splitterCondition(g, b, n, node, p)
			switch {
			case flags.Has(Relaxed):
				// splitter behavior is not pinned down for this query
			case flags.Has(Blocked):
				inIdx := g.InEdges(n)[0]
				outIdxs := g.OutEdges(n)
				blockedIn := p.BlockedEdgeMap[inIdx]
				blockedOut1 := p.BlockedEdgeMap[outIdxs[0]]
				blockedOut2 := p.BlockedEdgeMap[outIdxs[1]]
				// the bottleneck rule only holds while at least one output flows
				constraints = append(constraints, b.Implies(b.Not(b.Or(blockedOut1, blockedOut2)), cond))
				// input is blocked iff both outputs are blocked
				blocking = append(blocking, b.IfThenElse(b.And(blockedOut1, blockedOut2), blockedIn, b.Not(blockedIn)))
			default:
				constraints = append(constraints, cond)
			}
		}
	}

	p.ModelConstraint = b.And(constraints...)
	p.BlockingConstraint = blocking
	return p
}

func kirchhoff(g *flowgraph.FlowGraph, b Backend, n flowgraph.NodeIndex, p *Primitives) Term {
	var ins, outs []Term
	for _, e := range g.InEdges(n) {
		ins = append(ins, p.EdgeMap[e])
	}
	for _, e := range g.OutEdges(n) {
		outs = append(outs, p.EdgeMap[e])
	}
	return b.Eq(b.Add(ins...), b.Add(outs...))
}

// splitterCondition encodes the bottleneck rule: an unprioritized
// splitter sends equal flow to both outputs until the smaller-capacity
// branch saturates, after which the larger branch absorbs the rest; a
// prioritized splitter always saturates its priority branch first.
func splitterCondition(g *flowgraph.FlowGraph, b Backend, n flowgraph.NodeIndex, s flowgraph.Splitter, p *Primitives) Term {
	inIdx := g.InEdges(n)[0]
	inVar := p.EdgeMap[inIdx]

	if s.OutputPriority.IsNone() {
		outIdxs := g.OutEdges(n)
		aIdx, bIdx := outIdxs[0], outIdxs[1]
		aCap, bCap := g.Edge(aIdx).Capacity, g.Edge(bIdx).Capacity

		minIdx, maxIdx, minCap := aIdx, bIdx, aCap
		if bCap.Cmp(aCap) < 0 {
			minIdx, maxIdx, minCap = bIdx, aIdx, bCap
		}
		minVar, maxVar := p.EdgeMap[minIdx], p.EdgeMap[maxIdx]

		outMin := new(big.Rat).Mul(minCap, big.NewRat(2, 1))
		return b.IfThenElse(
			b.Le(inVar, RatTerm(b, outMin)),
			b.Eq(minVar, maxVar),
			b.Eq(minVar, RatTerm(b, minCap)),
		)
	}

	prioIdx, _ := g.GetOutEdge(n, s.OutputPriority)
	otherIdx, _ := g.GetOutEdge(n, s.OutputPriority.Neg())
	prioVar, otherVar := p.EdgeMap[prioIdx], p.EdgeMap[otherIdx]
	prioCap := g.Edge(prioIdx).Capacity
	zero := b.RealVal(0, 1)

	return b.IfThenElse(
		b.Le(inVar, RatTerm(b, prioCap)),
		b.Eq(otherVar, zero),
		b.Eq(prioVar, RatTerm(b, prioCap)),
	)
}

// RatTerm converts an exact rational capacity into a backend real
// value term. Exported so proof predicates that need the same
// conversion for entity-level throughput bounds don't duplicate it.
func RatTerm(b Backend, r *big.Rat) Term {
	return b.RealVal(r.Num().Int64(), r.Denom().Int64())
}
