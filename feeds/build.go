package feeds

import (
	"github.com/katalvlaran/beltbalance/entities"
	"github.com/katalvlaran/beltbalance/geom"
)

// beltLike reports whether an entity occupies a tile that can receive a
// plain belt-to-belt connection (belt, underground, or splitter — never
// an inserter or assembler tile).
func beltLike(k entities.Kind) bool {
	switch k {
	case entities.KindBelt, entities.KindUnderground, entities.KindSplitter:
		return true
	default:
		return false
	}
}

// positionIndex maps every occupied tile (including splitter phantom
// tiles) to the entity occupying it.
type positionIndex struct {
	byPos map[geom.Position]entities.Entity
}

func buildPositionIndex(ents []entities.Entity) *positionIndex {
	idx := &positionIndex{byPos: make(map[geom.Position]entities.Entity, len(ents))}
	for _, e := range ents {
		idx.byPos[e.Base().Position] = e
		if s, ok := e.(entities.Splitter); ok {
			idx.byPos[s.Phantom()] = e
		}
	}
	return idx
}

// Build derives the feeds-to relation (and its transpose, feeds-from)
// for a set of positioned entities, per the front-end adjacency algorithm.
func Build(ents []entities.Entity) (feedsTo, feedsFrom *Relation) {
	idx := buildPositionIndex(ents)
	feedsTo = NewRelation()

	addForward := func(pos geom.Position, dir geom.Direction) {
		dest := pos.Shift(dir, 1)
		if e, ok := idx.byPos[dest]; ok && beltLike(e.Kind()) {
			feedsTo.Add(pos, dest)
		}
	}

	var outputUndergrounds []entities.Underground
	for _, e := range ents {
		if u, ok := e.(entities.Underground); ok && u.Mode == entities.UndergroundOutput {
			outputUndergrounds = append(outputUndergrounds, u)
		}
	}

	for _, e := range ents {
		base := e.Base()
		pos := base.Position
		dir := base.Direction

		switch v := e.(type) {
		case entities.Belt:
			addForward(pos, dir)
		case entities.Underground:
			if v.Mode == entities.UndergroundInput {
				if dest, ok := findUndergroundOutput(v, outputUndergrounds); ok {
					feedsTo.Add(pos, dest)
				}
			} else {
				addForward(pos, dir)
			}
		case entities.Splitter:
			addForward(pos, dir)
			addForward(v.Phantom(), dir)
		case entities.Inserter:
			feedsTo.Add(v.Source(), v.Destination())
		case entities.LongInserter:
			feedsTo.Add(v.Source(), v.Destination())
		case entities.Assembler:
			// contributes no feeds-relation edges
		}
	}

	filterUndergroundOutputs(feedsTo, idx)

	return feedsTo, feedsTo.Transpose()
}

// findUndergroundOutput searches forward from an underground-input belt
// for the closest same-tier underground-output belt within its reach.
func findUndergroundOutput(in entities.Underground, outputs []entities.Underground) (geom.Position, bool) {
	base := in.BaseEntity
	maxDistance := 3 + 2*int(base.Throughput)/15
	for dist := 1; dist <= maxDistance; dist++ {
		candidatePos := base.Position.Shift(base.Direction, dist)
		for _, out := range outputs {
			if out.Throughput != base.Throughput {
				continue
			}
			if out.Position == candidatePos {
				return candidatePos, true
			}
		}
	}
	return geom.Position{}, false
}

// filterUndergroundOutputs removes any edge whose destination is an
// underground-output tile unless the edge's source is an
// underground-input tile, preventing spurious connections at underground
// endpoints.
func filterUndergroundOutputs(feedsTo *Relation, idx *positionIndex) {
	for _, pair := range feedsTo.Pairs() {
		src, dst := pair[0], pair[1]
		dstEntity, dstOK := idx.byPos[dst]
		if !dstOK {
			continue
		}
		dstU, dstIsUnderground := dstEntity.(entities.Underground)
		if !dstIsUnderground || dstU.Mode != entities.UndergroundOutput {
			continue
		}
		srcEntity, srcOK := idx.byPos[src]
		if srcOK {
			if srcU, ok := srcEntity.(entities.Underground); ok && srcU.Mode == entities.UndergroundInput {
				continue
			}
		}
		feedsTo.Remove(src, dst)
	}
}

// BuildReachability derives the feeds-to relation augmented with the
// splitter cross-edges needed for side-crossing reachability analysis:
// both the origin and phantom tiles of a splitter can reach both of its
// outputs, not just their own.
func BuildReachability(ents []entities.Entity) (feedsTo, feedsFrom *Relation) {
	feedsTo, _ = Build(ents)
	for _, e := range ents {
		s, ok := e.(entities.Splitter)
		if !ok {
			continue
		}
		base := s.Base()
		pos := base.Position
		dir := base.Direction
		phantom := s.Phantom()

		feedsTo.Add(phantom, pos.Shift(dir, 1))
		feedsTo.Add(pos, phantom.Shift(dir, 1))
	}
	return feedsTo, feedsTo.Transpose()
}
