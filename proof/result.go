package proof

import "github.com/katalvlaran/beltbalance/smt"

// Result is the outcome of a property check: Sat means the property
// holds, Unsat means a counterexample was found, Unknown means the
// solver gave up within its resource bound.
type Result = smt.CheckResult

const (
	Unknown = smt.Unknown
	Sat     = smt.Sat
	Unsat   = smt.Unsat
)
