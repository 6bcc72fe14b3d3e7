package flowgraph

import (
	"math/big"

	"github.com/katalvlaran/beltbalance/geom"
)

// Edge is the label carried by a directed flow-graph edge: which port of
// the Splitter or Merger at one of its ends it attaches to (a Merger's
// input side, or a Splitter's output side; SideNone otherwise) and the
// maximum throughput the edge can carry.
type Edge struct {
	Side     geom.Side
	Capacity *big.Rat
}

// NewEdge constructs an Edge with the given side and capacity. Capacity
// is copied, so later mutation of cap through SetEdgeCapacity never
// aliases the caller's value.
func NewEdge(side geom.Side, cap *big.Rat) Edge {
	return Edge{Side: side, Capacity: new(big.Rat).Set(cap)}
}

// CanJoin reports whether two edge labels are side-compatible and may
// therefore be combined with Join. Two labels are compatible when
// neither has a side, or both carry the same side.
func (e Edge) CanJoin(other Edge) bool {
	if e.Side.IsNone() || other.Side.IsNone() {
		return true
	}
	return e.Side == other.Side
}

// Meet computes the conservative lower bound of two edge labels reached
// along different paths to the same point: the side is preserved only
// if both agree (otherwise it collapses to SideNone), and the capacity
// is the minimum of the two, reflecting that the narrower path limits
// the combined flow.
func (e Edge) Meet(other Edge) Edge {
	side := geom.SideNone
	if e.Side == other.Side {
		side = e.Side
	}
	return Edge{Side: side, Capacity: minRat(e.Capacity, other.Capacity)}
}

// Join merges two edge labels that are being coalesced into a single
// edge by the simplifier (e.g. collapsing a chain of connectors). It is
// intentionally conservative: the capacity is always the minimum of the
// two, never a sum, because the combined edge is not permitted to
// exceed the narrowest segment it replaces. Callers must have already
// verified CanJoin; Join panics on side-incompatible labels rather than
// silently guessing.
func (e Edge) Join(other Edge) Edge {
	if !e.CanJoin(other) {
		panic("flowgraph: Join called on side-incompatible edges")
	}
	side := e.Side
	if side.IsNone() {
		side = other.Side
	}
	return Edge{Side: side, Capacity: minRat(e.Capacity, other.Capacity)}
}

func minRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return new(big.Rat).Set(a)
	}
	return new(big.Rat).Set(b)
}
