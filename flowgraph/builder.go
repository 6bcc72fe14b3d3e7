package flowgraph

import (
	"math/big"

	"github.com/katalvlaran/beltbalance/entities"
	"github.com/katalvlaran/beltbalance/feeds"
	"github.com/katalvlaran/beltbalance/geom"
)

// stitchCapacity is the capacity assigned to edges inserted between
// fragments at stitch time, along a feeds-relation connection rather
// than an entity's own throughput. It is deliberately larger than any
// real belt tier so it never becomes the binding constraint in the
// model; Simplify's capacity-shrinking rules always tighten it down to
// the true bottleneck before the SMT lowering stage ever sees it.
const stitchCapacity = 69

// connectorPair is the entry/exit node pair a belt-like entity occupies
// at one grid tile.
type connectorPair struct {
	in, out NodeIndex
}

// Builder assembles a FlowGraph fragment-by-fragment from positioned
// entities and a feeds-to relation, mirroring the front-end compiler's
// two-pass construction: first emit one fragment per belt-like entity,
// then stitch fragments together along feeds-relation edges, then
// promote unconnected connector ends to Input/Output nodes.
type Builder struct{}

// NewBuilder returns a ready-to-use Builder. Builder carries no state
// of its own; it exists so CreateGraph reads as a method call alongside
// the rest of the component's API (simplify.Simplify, reverse.Reverse).
func NewBuilder() *Builder {
	return &Builder{}
}

// CreateGraph compiles positioned entities into a FlowGraph, using
// feedsTo to stitch per-entity fragments together.
func (b *Builder) CreateGraph(ents []entities.Entity, feedsTo *feeds.Relation) (*FlowGraph, error) {
	g := New()
	posToConnector := make(map[geom.Position]connectorPair)

	for _, e := range ents {
		switch v := e.(type) {
		case entities.Belt:
			addBeltFragment(g, v.ID, v.Position, v.Throughput, posToConnector)
		case entities.Underground:
			addBeltFragment(g, v.ID, v.Position, v.Throughput, posToConnector)
		case entities.Splitter:
			addSplitterFragment(g, v, posToConnector)
		}
	}

	for _, pair := range feedsTo.Pairs() {
		src, dst := pair[0], pair[1]
		srcPair, srcOK := posToConnector[src]
		dstPair, dstOK := posToConnector[dst]
		if !srcOK || !dstOK {
			continue
		}
		g.AddEdge(srcPair.out, dstPair.in, NewEdge(geom.SideNone, big.NewRat(stitchCapacity, 1)))
	}

	promoteExtremalConnectors(g)

	return g, nil
}

// addBeltFragment emits the two-node, one-edge fragment shared by Belt
// and Underground entities: an entry connector, an exit connector, and
// a throughput-capacity edge between them.
func addBeltFragment(g *FlowGraph, id entities.EntityId, pos geom.Position, throughput float64, posToConnector map[geom.Position]connectorPair) {
	in := g.AddNode(Connector{ID: id})
	out := g.AddNode(Connector{ID: id})
	posToConnector[pos] = connectorPair{in: in, out: out}
	g.AddEdge(in, out, NewEdge(geom.SideNone, throughputRat(throughput)))
}

// addSplitterFragment emits the six-node, five-edge splitter fragment:
// a Splitter node and a Merger node joined by a doubled-capacity edge,
// plus a left and right connector pair feeding the merger and fed by
// the splitter.
func addSplitterFragment(g *FlowGraph, s entities.Splitter, posToConnector map[geom.Position]connectorPair) {
	id := s.ID
	cap := throughputRat(s.Throughput)

	splitterIdx := g.AddNode(Splitter{ID: id, OutputPriority: s.OutputPriority.ToSide()})
	mergerIdx := g.AddNode(Merger{ID: id, InputPriority: s.InputPriority.ToSide()})

	inR := g.AddNode(Connector{ID: id})
	outR := g.AddNode(Connector{ID: id})
	inL := g.AddNode(Connector{ID: id})
	outL := g.AddNode(Connector{ID: id})

	posToConnector[s.Position] = connectorPair{in: inR, out: outR}
	posToConnector[s.Phantom()] = connectorPair{in: inL, out: outL}

	doubled := new(big.Rat).Mul(cap, big.NewRat(2, 1))
	g.AddEdge(mergerIdx, splitterIdx, NewEdge(geom.SideNone, doubled))

	g.AddEdge(inL, mergerIdx, NewEdge(geom.SideLeft, cap))
	g.AddEdge(inR, mergerIdx, NewEdge(geom.SideRight, cap))

	g.AddEdge(splitterIdx, outL, NewEdge(geom.SideLeft, cap))
	g.AddEdge(splitterIdx, outR, NewEdge(geom.SideRight, cap))
}

// promoteExtremalConnectors converts any Connector with no incoming
// edges into an Input and any Connector with no outgoing edges into an
// Output. A Connector with neither edge is left untouched — it belongs
// to no chain and carries no meaningful flow role.
func promoteExtremalConnectors(g *FlowGraph) {
	for _, n := range g.NodeIndices() {
		c, ok := g.Node(n).(Connector)
		if !ok {
			continue
		}
		inDeg := g.InDegree(n)
		outDeg := g.OutDegree(n)
		isInput := inDeg == 0
		isOutput := outDeg == 0
		if isInput == isOutput {
			continue
		}
		if isInput {
			g.SetNode(n, Input{ID: c.ID})
		} else {
			g.SetNode(n, Output{ID: c.ID})
		}
	}
}

func throughputRat(throughput float64) *big.Rat {
	r := new(big.Rat)
	r.SetFloat64(throughput)
	return r
}
