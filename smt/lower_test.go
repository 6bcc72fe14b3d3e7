package smt

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/beltbalance/entities"
	"github.com/katalvlaran/beltbalance/feeds"
	"github.com/katalvlaran/beltbalance/flowgraph"
	"github.com/katalvlaran/beltbalance/geom"
)

// opTerm is a structural term used by recordingBackend to let tests
// inspect the shape Lower produced without depending on a real solver.
type opTerm struct {
	op   string
	args []Term
}

// recordingBackend builds opTerm trees instead of talking to a solver,
// so Lower's output shape can be asserted on directly in unit tests.
type recordingBackend struct {
	checkResult CheckResult
}

func (r *recordingBackend) RealConst(name string) Term     { return opTerm{op: "real:" + name} }
func (r *recordingBackend) RealVal(num, den int64) Term    { return opTerm{op: fmt.Sprintf("realval:%d/%d", num, den)} }
func (r *recordingBackend) IntConst(name string) Term      { return opTerm{op: "int:" + name} }
func (r *recordingBackend) IntVal(v int64) Term            { return opTerm{op: fmt.Sprintf("intval:%d", v)} }
func (r *recordingBackend) BoolConst(name string) Term     { return opTerm{op: "bool:" + name} }
func (r *recordingBackend) Add(terms ...Term) Term         { return opTerm{op: "add", args: terms} }
func (r *recordingBackend) Eq(a, b Term) Term              { return opTerm{op: "eq", args: []Term{a, b}} }
func (r *recordingBackend) Le(a, b Term) Term              { return opTerm{op: "le", args: []Term{a, b}} }
func (r *recordingBackend) Ge(a, b Term) Term              { return opTerm{op: "ge", args: []Term{a, b}} }
func (r *recordingBackend) And(terms ...Term) Term         { return opTerm{op: "and", args: terms} }
func (r *recordingBackend) Or(terms ...Term) Term          { return opTerm{op: "or", args: terms} }
func (r *recordingBackend) Not(t Term) Term                { return opTerm{op: "not", args: []Term{t}} }
func (r *recordingBackend) Implies(a, b Term) Term         { return opTerm{op: "implies", args: []Term{a, b}} }
func (r *recordingBackend) Iff(a, b Term) Term             { return opTerm{op: "iff", args: []Term{a, b}} }
func (r *recordingBackend) IfThenElse(c, t, e Term) Term   { return opTerm{op: "ite", args: []Term{c, t, e}} }
func (r *recordingBackend) ForAll(vars []Term, body Term) Term {
	return opTerm{op: "forall", args: append(append([]Term{}, vars...), body)}
}
func (r *recordingBackend) Exists(vars []Term, body Term) Term {
	return opTerm{op: "exists", args: append(append([]Term{}, vars...), body)}
}
func (r *recordingBackend) ToReal(t Term) Term { return opTerm{op: "toreal", args: []Term{t}} }
func (r *recordingBackend) Assert(t Term)      {}
func (r *recordingBackend) Check(ctx context.Context) (CheckResult, error) {
	return r.checkResult, nil
}

func singleBelt() (*flowgraph.FlowGraph, *feeds.Relation) {
	ents := []entities.Entity{
		entities.Belt{BaseEntity: entities.BaseEntity{ID: 1, Position: geom.Position{X: 0, Y: 0}, Direction: geom.North, Throughput: 15}},
	}
	feedsTo, _ := feeds.Build(ents)
	g, _ := flowgraph.NewBuilder().CreateGraph(ents, feedsTo)
	return g, feedsTo
}

func TestLowerProducesOneEdgeVariablePerEdge(t *testing.T) {
	g, _ := singleBelt()
	p := Lower(g, &recordingBackend{}, 0)
	if len(p.EdgeMap) != g.EdgeCount() {
		t.Fatalf("expected %d edge variables, got %d", g.EdgeCount(), len(p.EdgeMap))
	}
	if len(p.InputMap) != 1 || len(p.OutputMap) != 1 {
		t.Fatalf("expected exactly one input and one output variable, got in=%d out=%d", len(p.InputMap), len(p.OutputMap))
	}
}

func TestLowerModelConstraintIsConjunction(t *testing.T) {
	g, _ := singleBelt()
	p := Lower(g, &recordingBackend{}, 0)
	and, ok := p.ModelConstraint.(opTerm)
	if !ok || and.op != "and" {
		t.Fatalf("expected ModelConstraint to be an And term, got %#v", p.ModelConstraint)
	}
	if len(and.args) == 0 {
		t.Fatal("expected at least one conjunct")
	}
}

func TestLowerWithBlockedPopulatesBlockedMaps(t *testing.T) {
	g, _ := singleBelt()
	p := Lower(g, &recordingBackend{}, Blocked)
	if len(p.BlockedEdgeMap) != g.EdgeCount() {
		t.Fatalf("expected a blocked variable per edge, got %d", len(p.BlockedEdgeMap))
	}
	if len(p.BlockedInputMap) != 1 || len(p.BlockedOutputMap) != 1 {
		t.Fatal("expected blocked input/output variables to be populated")
	}
}
