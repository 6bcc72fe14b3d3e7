package proof

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/beltbalance/flowgraph"
	"github.com/katalvlaran/beltbalance/smt"
)

// Driver wires a smt.Backend to the lowering step and runs property
// predicates through it, honoring cancellation and a per-call timeout
// the way the rest of this module's blocking operations do.
type Driver struct {
	Backend smt.Backend
}

// NewDriver returns a Driver backed by b.
func NewDriver(b smt.Backend) *Driver {
	return &Driver{Backend: b}
}

// Prove lowers g under flags, asserts pred's negated-property query
// against the backend, and checks it within timeout. The returned
// Result has already been flipped from the raw solver verdict: Sat
// means the property holds, Unsat means pred found a counterexample.
func (d *Driver) Prove(ctx context.Context, g *flowgraph.FlowGraph, pred PredicateFunc, flags smt.ModelFlags, timeout time.Duration) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Unknown, err
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	primitives := smt.Lower(g, d.Backend, flags)
	query := pred(primitives, d.Backend)
	d.Backend.Assert(query)

	raw, err := d.Backend.Check(ctx)
	if err != nil {
		return Unknown, fmt.Errorf("proof: solver check failed: %w", err)
	}
	return raw.Not(), nil
}
