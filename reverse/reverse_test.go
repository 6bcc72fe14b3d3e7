package reverse

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/beltbalance/entities"
	"github.com/katalvlaran/beltbalance/feeds"
	"github.com/katalvlaran/beltbalance/flowgraph"
	"github.com/katalvlaran/beltbalance/geom"
)

func TestReverseSwapsInputOutput(t *testing.T) {
	ents := []entities.Entity{
		entities.Belt{BaseEntity: entities.BaseEntity{ID: 1, Position: geom.Position{X: 0, Y: 0}, Direction: geom.North, Throughput: 15}},
	}
	feedsTo, _ := feeds.Build(ents)
	g, _ := flowgraph.NewBuilder().CreateGraph(ents, feedsTo)

	rev := Reverse(g)
	var inputs, outputs int
	for _, n := range rev.NodeIndices() {
		switch rev.Node(n).(type) {
		case flowgraph.Input:
			inputs++
		case flowgraph.Output:
			outputs++
		}
	}
	if inputs != 1 || outputs != 1 {
		t.Fatalf("expected exactly one Input and one Output after reversal, got in=%d out=%d", inputs, outputs)
	}
}

func TestReverseNegatesSplitterMerger(t *testing.T) {
	s := entities.Splitter{
		BaseEntity:     entities.BaseEntity{ID: 1, Position: geom.Position{X: 1, Y: 0}, Direction: geom.North, Throughput: 15},
		OutputPriority: entities.PriorityLeft,
	}
	ents := []entities.Entity{s}
	feedsTo, _ := feeds.Build(ents)
	g, _ := flowgraph.NewBuilder().CreateGraph(ents, feedsTo)

	rev := Reverse(g)
	found := false
	for _, n := range rev.NodeIndices() {
		if m, ok := rev.Node(n).(flowgraph.Merger); ok {
			found = true
			if m.InputPriority != geom.SideRight {
				t.Fatalf("expected reversed splitter's output priority (Left) to become merger input priority Right, got %v", m.InputPriority)
			}
		}
	}
	if !found {
		t.Fatal("expected the reversed graph to contain a Merger")
	}
}

func TestReverseInvolution(t *testing.T) {
	ents := []entities.Entity{
		entities.Belt{BaseEntity: entities.BaseEntity{ID: 1, Position: geom.Position{X: 0, Y: 0}, Direction: geom.North, Throughput: 15}},
		entities.Belt{BaseEntity: entities.BaseEntity{ID: 2, Position: geom.Position{X: 0, Y: 1}, Direction: geom.North, Throughput: 15}},
	}
	feedsTo, _ := feeds.Build(ents)
	g, _ := flowgraph.NewBuilder().CreateGraph(ents, feedsTo)

	rr := Reverse(Reverse(g))

	if rr.NodeCount() != g.NodeCount() || rr.EdgeCount() != g.EdgeCount() {
		t.Fatalf("expected double reversal to preserve node/edge counts: got nodes=%d edges=%d, want nodes=%d edges=%d",
			rr.NodeCount(), rr.EdgeCount(), g.NodeCount(), g.EdgeCount())
	}

	var totalCap big.Rat
	for _, e := range rr.EdgeIndices() {
		totalCap.Add(&totalCap, rr.Edge(e).Capacity)
	}
	var wantCap big.Rat
	for _, e := range g.EdgeIndices() {
		wantCap.Add(&wantCap, g.Edge(e).Capacity)
	}
	if totalCap.Cmp(&wantCap) != 0 {
		t.Fatalf("expected double reversal to preserve total capacity: got %v, want %v", &totalCap, &wantCap)
	}
}
