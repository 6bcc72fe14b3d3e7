package proof

import (
	"math/big"

	"github.com/katalvlaran/beltbalance/entities"
	"github.com/katalvlaran/beltbalance/flowgraph"
	"github.com/katalvlaran/beltbalance/smt"
)

// PredicateFunc builds the negated query for one property: it asks the
// backend to find a counterexample to the property it names, over the
// primitives Lower already produced.
type PredicateFunc func(p *smt.Primitives, b smt.Backend) smt.Term

// Balancer is satisfiable exactly when some valid flow gives unequal
// outputs, i.e. when g is NOT a belt balancer.
func Balancer(p *smt.Primitives, b smt.Backend) smt.Term {
	outEq := equalityAll(b, termValues(p.OutputMap))
	return b.And(b.Not(outEq), p.ModelConstraint)
}

// EqualDrain is satisfiable exactly when some valid flow has equal
// inputs but unequal outputs, i.e. when g is a balancer but not an
// equal-drain balancer. Callers are expected to have already confirmed
// Balancer is Unsat (reversed graph convention matches the original:
// equal-drain is checked against the flow-reversed graph).
func EqualDrain(p *smt.Primitives, b smt.Backend) smt.Term {
	inEq := equalityAll(b, termValues(p.InputMap))
	outEq := equalityAll(b, termValues(p.OutputMap))
	return b.And(p.ModelConstraint, b.Not(b.Implies(inEq, outEq)))
}

// ThroughputUnlimited returns a PredicateFunc for a specific blueprint:
// it needs each Input/Output node's entity throughput to bound the
// input and output variables, so the bound can't be baked in
// generically the way Balancer and EqualDrain are.
//
// Satisfiable exactly when there exist bounded whole-number inputs and
// real outputs with equal sums for which no edge assignment satisfies
// the model, i.e. when g is NOT throughput-unlimited.
func ThroughputUnlimited(ents []entities.Entity) PredicateFunc {
	throughput := make(map[entities.EntityId]*big.Rat, len(ents))
	for _, e := range ents {
		throughput[e.Base().ID] = ratFromFloat(e.Base().Throughput)
	}

	return func(p *smt.Primitives, b smt.Backend) smt.Term {
		zeroInt := b.IntVal(0)
		var inputConds []smt.Term
		var inputSum []smt.Term
		for idx, v := range p.InputMap {
			cap := entityCapacity(p.Graph, idx, throughput)
			upper := b.IntVal(cap.Num().Int64())
			inputConds = append(inputConds, b.And(b.Ge(v, zeroInt), b.Le(v, upper)))
			inputSum = append(inputSum, v)
		}
		inputCondition := b.And(inputConds...)

		zeroReal := b.RealVal(0, 1)
		var outputConds []smt.Term
		var outputSum []smt.Term
		for idx, v := range p.OutputMap {
			cap := entityCapacity(p.Graph, idx, throughput)
			outputConds = append(outputConds, b.And(b.Ge(v, zeroReal), b.Le(v, smt.RatTerm(b, cap))))
			outputSum = append(outputSum, v)
		}
		outputCondition := b.And(outputConds...)

		var totalOutput smt.Term = zeroReal
		if len(outputSum) > 0 {
			totalOutput = b.Add(outputSum...)
		}
		var totalInput smt.Term = zeroInt
		if len(inputSum) > 0 {
			totalInput = b.Add(inputSum...)
		}
		inOutEq := b.Eq(b.ToReal(totalInput), totalOutput)

		noModel := b.ForAll(termValues(p.EdgeMap), b.Not(p.ModelConstraint))

		return b.And(inputCondition, outputCondition, inOutEq, noModel)
	}
}

// UniversalBalancer is satisfiable exactly when, under some
// back-pressure scenario the blocking encoding allows, there is no
// single value all unblocked outputs can agree on — i.e. when g is NOT
// a universal balancer. Requires the Primitives to have been lowered
// with smt.Blocked set.
func UniversalBalancer(p *smt.Primitives, b smt.Backend) smt.Term {
	eqValue := b.RealConst("output_value")
	var outputsEqValue []smt.Term
	for idx, output := range p.OutputMap {
		blocked := p.BlockedOutputMap[idx]
		outputsEqValue = append(outputsEqValue, b.Implies(b.Not(blocked), b.Eq(output, eqValue)))
	}
	outEq := b.And(outputsEqValue...)
	outEqCondition := b.Exists([]smt.Term{eqValue}, outEq)
	blockingConjunction := b.And(p.BlockingConstraint...)

	return b.And(blockingConjunction, p.ModelConstraint, b.Not(outEqCondition))
}

func entityCapacity(g *flowgraph.FlowGraph, idx flowgraph.NodeIndex, throughput map[entities.EntityId]*big.Rat) *big.Rat {
	id := g.Node(idx).EntityID()
	if cap, ok := throughput[id]; ok {
		return cap
	}
	return new(big.Rat)
}

func ratFromFloat(f float64) *big.Rat {
	r := new(big.Rat)
	r.SetFloat64(f)
	return r
}

// equalityAll conjoins pairwise equality across values, vacuously true
// for zero or one values.
func equalityAll(b smt.Backend, values []smt.Term) smt.Term {
	if len(values) < 2 {
		return b.And()
	}
	var pairs []smt.Term
	for i := 0; i < len(values)-1; i++ {
		pairs = append(pairs, b.Eq(values[i], values[i+1]))
	}
	return b.And(pairs...)
}

func termValues[K comparable](m map[K]smt.Term) []smt.Term {
	out := make([]smt.Term, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
