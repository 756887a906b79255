// Package traversal implements the two depth-first walks over a design
// graph: Flatten, which linearizes a tree into its leaf elements, and
// Extract, which pairs every reachable non-instance node with an inherited
// identity and the transform chain accumulated along the path that reached
// it.
//
// Both walks are lazy push iterators (range-over-func). Memory is bounded
// by graph depth, a consumer may stop early at any point, and the input
// graph is never mutated: flattening provenance goes to an external side
// table so the same graph can be traversed repeatedly.
//
// The graph may be a DAG: a definition shared by several instances is
// yielded once per reaching path, each time with its own transform chain.
// Cyclic graphs are not detected and do not terminate; acyclicity is the
// caller's responsibility.
package traversal
