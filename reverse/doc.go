// Package reverse implements the IR involution used to prove a
// property over the "push" direction of a belt network by checking the
// equivalent property on its flow-reversed dual: every edge direction
// flips, every edge's side flips, Input and Output swap, and Splitter
// and Merger swap with their priority side negated. Reverse is its own
// inverse: Reverse(Reverse(g)) is isomorphic to g.
package reverse
