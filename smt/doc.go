// Package smt lowers a flowgraph.FlowGraph into a system of linear
// arithmetic constraints over an abstract Backend: one real-valued
// variable per edge bounded by its capacity, Kirchhoff conservation at
// every node, the splitter bottleneck rule, and (when requested) a
// parallel boolean "blocked" encoding that lets downstream back-pressure
// propagate upstream through connectors, mergers and splitters.
//
// smt itself never talks to a concrete solver; smt/z3backend supplies
// the only Backend implementation this module ships.
package smt
