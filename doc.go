// Package beltbalance verifies formal properties of Factorio belt
// blueprints: given a set of belts, undergrounds, splitters and inserters,
// it decides whether the resulting item-flow network is a belt balancer,
// an equal-drain balancer, a throughput-unlimited balancer, or a universal
// balancer, by translating the network into a system of linear
// real-arithmetic constraints and discharging the query against Z3.
//
// Everything is organized into small, single-purpose subpackages:
//
//	geom/       — cardinal directions, tile positions, splitter sides
//	entities/   — the closed set of entity kinds a blueprint can contain
//	feeds/      — the feeds-to/feeds-from relation between adjacent entities
//	flowgraph/  — the arena-based flow network entities compile down to
//	simplify/   — fixed-point coalescing and capacity-shrinking rewrites
//	reverse/    — the node-wise/edge-wise graph involution
//	smt/        — lowering a flow graph into SMT terms, and the Backend interface
//	smt/z3backend — the concrete Backend implementation over Z3
//	proof/      — the four property predicates and the proof driver
//	blueprint/  — decoding an exported blueprint string into entities
//	verrors/    — shared sentinel and structural errors
//
// A typical verification runs the packages in sequence: decode a
// blueprint string, build its feeds relation and flow graph, simplify the
// graph, then hand it to a proof.Driver along with the property to check.
package beltbalance
