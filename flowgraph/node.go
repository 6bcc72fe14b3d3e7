package flowgraph

import (
	"fmt"

	"github.com/katalvlaran/beltbalance/entities"
	"github.com/katalvlaran/beltbalance/geom"
)

// NodeKind discriminates the concrete Node implementers without
// reflection.
type NodeKind int

const (
	KindConnector NodeKind = iota
	KindInput
	KindOutput
	KindSplitter
	KindMerger
)

// Node is the closed sum type of flow-graph vertices. Each concrete type
// holds only its own payload; dispatch is an explicit switch on Kind (or
// a Go type switch), never reflection.
type Node interface {
	EntityID() entities.EntityId
	Kind() NodeKind
	// Label returns a short human-readable identifier, e.g. "c3" for a
	// Connector belonging to entity 3. Used in debug output only.
	Label() string
}

// Connector has exactly one incoming and one outgoing edge once the
// graph has reached its post-construction/post-simplification
// invariant. It represents a single belt tile, or one port of a
// splitter/merger fragment.
type Connector struct {
	ID entities.EntityId
}

func (c Connector) EntityID() entities.EntityId { return c.ID }
func (c Connector) Kind() NodeKind               { return KindConnector }
func (c Connector) Label() string                { return fmt.Sprintf("c%d", c.ID) }

// Input is a source: no incoming edges, exactly one outgoing.
type Input struct {
	ID entities.EntityId
}

func (i Input) EntityID() entities.EntityId { return i.ID }
func (i Input) Kind() NodeKind               { return KindInput }
func (i Input) Label() string                { return fmt.Sprintf("i%d", i.ID) }

// Output is a sink: exactly one incoming edge, no outgoing.
type Output struct {
	ID entities.EntityId
}

func (o Output) EntityID() entities.EntityId { return o.ID }
func (o Output) Kind() NodeKind               { return KindOutput }
func (o Output) Label() string                { return fmt.Sprintf("o%d", o.ID) }

// Splitter has one incoming edge and two outgoing edges, optionally
// prioritizing one output side.
type Splitter struct {
	ID             entities.EntityId
	OutputPriority geom.Side
}

func (s Splitter) EntityID() entities.EntityId { return s.ID }
func (s Splitter) Kind() NodeKind               { return KindSplitter }
func (s Splitter) Label() string                { return fmt.Sprintf("s%d", s.ID) }

// Merger has two incoming edges and one outgoing edge, optionally
// prioritizing one input side.
type Merger struct {
	ID            entities.EntityId
	InputPriority geom.Side
}

func (m Merger) EntityID() entities.EntityId { return m.ID }
func (m Merger) Kind() NodeKind               { return KindMerger }
func (m Merger) Label() string                { return fmt.Sprintf("m%d", m.ID) }
