package entities

import "github.com/katalvlaran/beltbalance/geom"

// EntityId uniquely identifies an entity across the whole blueprint.
type EntityId int

// Kind discriminates the concrete Entity implementers without reflection.
type Kind int

const (
	KindBelt Kind = iota
	KindUnderground
	KindSplitter
	KindInserter
	KindLongInserter
	KindAssembler
)

// BaseEntity holds the fields common to every entity variant.
type BaseEntity struct {
	ID         EntityId
	Position   geom.Position
	Direction  geom.Direction
	Throughput float64 // items/second
}

// Shift returns a copy of base moved distance tiles in direction dir.
func (b BaseEntity) Shift(dir geom.Direction, distance int) BaseEntity {
	b.Position = b.Position.Shift(dir, distance)
	return b
}

// Entity is the closed sum type of entities the front-end understands.
//
// Inserter, LongInserter and Assembler are consumed only for their
// contribution to the feeds-relation (§4.B); they never produce
// flowgraph nodes.
type Entity interface {
	Base() BaseEntity
	Kind() Kind
}

// UndergroundMode indicates whether an underground belt is the entry or
// exit half of a pair.
type UndergroundMode int

const (
	UndergroundInput UndergroundMode = iota
	UndergroundOutput
)

// Priority is the splitter input/output side preference, as decoded from
// blueprint JSON ("none"/"left"/"right").
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLeft
	PriorityRight
)

// ToSide converts a decoded Priority into the geom.Side used internally
// by the IR.
func (p Priority) ToSide() geom.Side {
	switch p {
	case PriorityLeft:
		return geom.SideLeft
	case PriorityRight:
		return geom.SideRight
	default:
		return geom.SideNone
	}
}

// Belt is a single-tile conveyor.
type Belt struct {
	BaseEntity
}

func (b Belt) Base() BaseEntity { return b.BaseEntity }
func (b Belt) Kind() Kind       { return KindBelt }

// Underground is a paired entry/exit belt tile.
type Underground struct {
	BaseEntity
	Mode UndergroundMode
}

func (u Underground) Base() BaseEntity { return u.BaseEntity }
func (u Underground) Kind() Kind       { return KindUnderground }

// Splitter is a two-tile entity: the origin tile plus a phantom tile on
// its anticlockwise side.
type Splitter struct {
	BaseEntity
	InputPriority  Priority
	OutputPriority Priority
}

func (s Splitter) Base() BaseEntity { return s.BaseEntity }
func (s Splitter) Kind() Kind       { return KindSplitter }

// Phantom returns the position of the splitter's second tile.
func (s Splitter) Phantom() geom.Position {
	shiftDir := s.Direction.Rotate(geom.Anticlockwise, 1)
	return s.Position.Shift(shiftDir, 1)
}

// Inserter reaches one tile in each direction from its facing.
type Inserter struct {
	BaseEntity
}

func (i Inserter) Base() BaseEntity { return i.BaseEntity }
func (i Inserter) Kind() Kind       { return KindInserter }

// Source returns the tile the inserter picks up from.
func (i Inserter) Source() geom.Position { return i.Position.Shift(i.Direction, -1) }

// Destination returns the tile the inserter places onto.
func (i Inserter) Destination() geom.Position { return i.Position.Shift(i.Direction, 1) }

// LongInserter reaches two tiles in each direction from its facing.
type LongInserter struct {
	BaseEntity
}

func (l LongInserter) Base() BaseEntity { return l.BaseEntity }
func (l LongInserter) Kind() Kind       { return KindLongInserter }

// Source returns the tile the long inserter picks up from.
func (l LongInserter) Source() geom.Position { return l.Position.Shift(l.Direction, -2) }

// Destination returns the tile the long inserter places onto.
func (l LongInserter) Destination() geom.Position { return l.Position.Shift(l.Direction, 2) }

// Assembler contributes no feeds-relation edges of its own; it exists so
// the front-end can recognize and skip it uniformly.
type Assembler struct {
	BaseEntity
}

func (a Assembler) Base() BaseEntity { return a.BaseEntity }
func (a Assembler) Kind() Kind       { return KindAssembler }
