// Package proof states the four belt-network properties as SMT
// queries over smt.Primitives and drives them through a smt.Backend
// with context-based cancellation.
//
// Every predicate here encodes the negation of the property it names:
// it asks the solver to find a counterexample. Driver.Prove checks the
// negated query and flips the verdict (smt.CheckResult.Not), so a
// caller's Sat result always means "the property holds".
package proof
