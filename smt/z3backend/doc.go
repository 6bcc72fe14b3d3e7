// Package z3backend implements smt.Backend against a real Z3 context via
// github.com/aclements/go-z3/z3, the only SMT binding this module depends
// on. It is a thin term-construction and solve-loop adapter: all the
// domain logic (what gets asserted, how a property's negation is built)
// lives in smt and proof, which only ever see the smt.Backend interface.
package z3backend
