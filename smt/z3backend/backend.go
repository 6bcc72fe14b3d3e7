package z3backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aclements/go-z3/z3"
	"github.com/katalvlaran/beltbalance/smt"
)

// Backend adapts a single Z3 context and solver to smt.Backend. It is not
// safe for concurrent use. proof.Driver.Prove does not construct a
// Backend: it asserts into the one its Driver holds, so assertions from
// earlier Prove calls on the same Driver stay in force.
type Backend struct {
	ctx    *z3.Context
	solver *z3.Solver
}

// New creates a Backend with a fresh Z3 context and solver.
func New() *Backend {
	cfg := z3.NewContextConfig()
	ctx := z3.NewContext(cfg)
	return &Backend{ctx: ctx, solver: z3.NewSolver(ctx)}
}

func (b *Backend) RealConst(name string) smt.Term {
	return b.ctx.RealConst(z3.WithName(name))
}

func (b *Backend) RealVal(num, den int64) smt.Term {
	n := b.ctx.FromInt(num, b.ctx.RealSort())
	d := b.ctx.FromInt(den, b.ctx.RealSort())
	return n.Div(d)
}

func (b *Backend) IntConst(name string) smt.Term {
	return b.ctx.IntConst(z3.WithName(name))
}

func (b *Backend) IntVal(v int64) smt.Term {
	return b.ctx.FromInt(v, b.ctx.IntSort())
}

func (b *Backend) BoolConst(name string) smt.Term {
	return b.ctx.BoolConst(z3.WithName(name))
}

func (b *Backend) Add(terms ...smt.Term) smt.Term {
	asts := toASTSlice(terms)
	if len(asts) == 0 {
		return b.IntVal(0)
	}
	sum := asts[0]
	for _, t := range asts[1:] {
		sum = sum.Add(t)
	}
	return sum
}

func (b *Backend) Eq(a, bb smt.Term) smt.Term { return toAST(a).Eq(toAST(bb)) }
func (b *Backend) Le(a, bb smt.Term) smt.Term { return toAST(a).Le(toAST(bb)) }
func (b *Backend) Ge(a, bb smt.Term) smt.Term { return toAST(a).Ge(toAST(bb)) }

func (b *Backend) And(terms ...smt.Term) smt.Term {
	asts := toASTSlice(terms)
	if len(asts) == 0 {
		return b.ctx.FromBool(true)
	}
	return b.ctx.And(asts...)
}

func (b *Backend) Or(terms ...smt.Term) smt.Term {
	asts := toASTSlice(terms)
	if len(asts) == 0 {
		return b.ctx.FromBool(false)
	}
	return b.ctx.Or(asts...)
}

func (b *Backend) Not(t smt.Term) smt.Term { return toAST(t).Not() }

func (b *Backend) Implies(a, bb smt.Term) smt.Term { return toAST(a).Implies(toAST(bb)) }
func (b *Backend) Iff(a, bb smt.Term) smt.Term     { return toAST(a).Iff(toAST(bb)) }

func (b *Backend) IfThenElse(cond, then, els smt.Term) smt.Term {
	return toAST(cond).IfThenElse(toAST(then), toAST(els))
}

func (b *Backend) ForAll(vars []smt.Term, body smt.Term) smt.Term {
	return b.ctx.ForAll(toASTSlice(vars), toAST(body))
}

func (b *Backend) Exists(vars []smt.Term, body smt.Term) smt.Term {
	return b.ctx.Exists(toASTSlice(vars), toAST(body))
}

func (b *Backend) ToReal(t smt.Term) smt.Term { return toAST(t).ToReal() }

func (b *Backend) Assert(t smt.Term) {
	b.solver.Assert(toAST(t))
}

// Check runs the solver, honoring ctx's deadline by installing it as the
// Z3 timeout where the binding supports it, and its cancellation by
// checking ctx.Err() before and after the blocking solve call. A deadline
// that expires during the solve is not an error: the solver's own verdict
// (smt.Unknown when it timed out) is returned.
func (b *Backend) Check(ctx context.Context) (smt.CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return smt.Unknown, err
	}

	if deadline, ok := ctx.Deadline(); ok {
		b.solver.SetTimeout(timeUntil(deadline))
	}

	sat, err := b.solver.Check()
	if err != nil {
		return smt.Unknown, fmt.Errorf("z3backend: solver check failed: %w", err)
	}

	if err := ctx.Err(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return smt.Unknown, err
	}

	switch sat {
	case z3.Sat:
		return smt.Sat, nil
	case z3.Unsat:
		return smt.Unsat, nil
	default:
		return smt.Unknown, nil
	}
}

func timeUntil(deadline time.Time) time.Duration {
	d := time.Until(deadline)
	if d < 0 {
		return 0
	}
	return d
}

func toAST(t smt.Term) z3.AST {
	ast, ok := t.(z3.AST)
	if !ok {
		panic(fmt.Sprintf("z3backend: term %v is not a z3.AST (produced by a different backend?)", t))
	}
	return ast
}

func toASTSlice(terms []smt.Term) []z3.AST {
	out := make([]z3.AST, len(terms))
	for i, t := range terms {
		out[i] = toAST(t)
	}
	return out
}
