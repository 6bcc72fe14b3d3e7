//go:build z3

package z3backend

import (
	"context"
	"testing"
)

// These tests require a real Z3 installation and are gated behind the z3
// build tag; the rest of the suite runs against smt's recording/stub
// backends instead.

func TestCheckUnsatIsDetected(t *testing.T) {
	b := New()
	x := b.RealConst("x")
	b.Assert(b.Ge(x, b.RealVal(0, 1)))
	b.Assert(b.Le(x, b.RealVal(-1, 1)))
	res, err := b.Check(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.String() != "unsat" {
		t.Fatalf("expected unsat, got %v", res)
	}
}

func TestCheckSatIsDetected(t *testing.T) {
	b := New()
	x := b.RealConst("x")
	b.Assert(b.Ge(x, b.RealVal(0, 1)))
	res, err := b.Check(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.String() != "sat" {
		t.Fatalf("expected sat, got %v", res)
	}
}
