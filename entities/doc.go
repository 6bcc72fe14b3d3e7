// Package entities defines the typed Factorio entities the front-end
// ingests: belts, underground belts, splitters, inserters and
// assemblers. Every entity carries a unique EntityId, a geom.Position, a
// geom.Direction, and a throughput rate in items/second.
//
// Entity is represented as an interface with a closed set of concrete
// implementers rather than a tagged union struct: each concrete type
// holds only its own payload, and callers dispatch with a type switch on
// the concrete type (see Kind). This mirrors the sum-type-as-variant
// design used for flowgraph.Node, just one layer up the pipeline.
package entities
