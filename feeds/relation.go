package feeds

import (
	"sort"

	"github.com/katalvlaran/beltbalance/geom"
)

// Relation is a binary relation over grid positions, encoded as a map
// from source position to the set of destination positions it feeds.
type Relation struct {
	edges map[geom.Position]map[geom.Position]struct{}
}

// NewRelation returns an empty Relation.
func NewRelation() *Relation {
	return &Relation{edges: make(map[geom.Position]map[geom.Position]struct{})}
}

// Add records that src feeds into dst. Returns true if this is a new
// edge, false if it was already present.
func (r *Relation) Add(src, dst geom.Position) bool {
	set, ok := r.edges[src]
	if !ok {
		set = make(map[geom.Position]struct{})
		r.edges[src] = set
	}
	if _, exists := set[dst]; exists {
		return false
	}
	set[dst] = struct{}{}
	return true
}

// Remove deletes dst from src's destination set, pruning the source
// entry entirely once it is empty.
func (r *Relation) Remove(src, dst geom.Position) {
	set, ok := r.edges[src]
	if !ok {
		return
	}
	delete(set, dst)
	if len(set) == 0 {
		delete(r.edges, src)
	}
}

// Has reports whether src feeds into dst.
func (r *Relation) Has(src, dst geom.Position) bool {
	set, ok := r.edges[src]
	if !ok {
		return false
	}
	_, ok = set[dst]
	return ok
}

// Destinations returns the (unordered) destinations fed by src.
func (r *Relation) Destinations(src geom.Position) []geom.Position {
	set, ok := r.edges[src]
	if !ok {
		return nil
	}
	out := make([]geom.Position, 0, len(set))
	for dst := range set {
		out = append(out, dst)
	}
	return out
}

// Sources returns every position that has at least one outgoing edge.
func (r *Relation) Sources() []geom.Position {
	out := make([]geom.Position, 0, len(r.edges))
	for src := range r.edges {
		out = append(out, src)
	}
	return out
}

// Transpose returns the relation with every edge reversed.
func (r *Relation) Transpose() *Relation {
	t := NewRelation()
	for src, set := range r.edges {
		for dst := range set {
			t.Add(dst, src)
		}
	}
	return t
}

// Equal reports whether r and other contain exactly the same edges.
func (r *Relation) Equal(other *Relation) bool {
	if r.count() != other.count() {
		return false
	}
	for src, set := range r.edges {
		oset, ok := other.edges[src]
		if !ok || len(oset) != len(set) {
			return false
		}
		for dst := range set {
			if _, ok := oset[dst]; !ok {
				return false
			}
		}
	}
	return true
}

func (r *Relation) count() int {
	n := 0
	for _, set := range r.edges {
		n += len(set)
	}
	return n
}

// Pairs returns every (src, dst) edge in a deterministic order, useful
// for tests and debugging.
func (r *Relation) Pairs() [][2]geom.Position {
	out := make([][2]geom.Position, 0, r.count())
	for src, set := range r.edges {
		for dst := range set {
			out = append(out, [2]geom.Position{src, dst})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return lessPos(out[i][0], out[j][0])
		}
		return lessPos(out[i][1], out[j][1])
	})
	return out
}

func lessPos(a, b geom.Position) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
