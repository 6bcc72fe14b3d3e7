// Package simplify implements the IR rewrite pass that reduces a
// flowgraph.FlowGraph to its minimal equivalent form before it is
// handed to the SMT back-end: dead input/output removal, connector
// coalescing, degenerate splitter/merger demotion, and per-node
// capacity shrinking to the true achievable bound. The pass runs to a
// fixed point — it alternates between the two rewrite families until
// neither can make further progress.
package simplify
