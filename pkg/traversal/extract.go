package traversal

import (
	"iter"
	"slices"

	"github.com/mesh-intelligence/surveyor/pkg/model"
)

// Placement pairs a reachable non-instance node with the identity and
// transform chain of the path that reached it.
type Placement struct {
	// Node is a reference into the shared graph, never a copy.
	Node *model.Node

	// InstanceID is the node's own id or, when absent, the id of the
	// nearest ancestor that has one.
	InstanceID string

	// Transforms lists the instance placements crossed on the way here,
	// in root-to-node encounter order: the outermost instance first.
	// Consumers needing leaf-to-root composition must reverse it
	// themselves; no reversal is applied here.
	Transforms []model.Transform
}

// Extract walks the graph under root depth-first and yields every reachable
// non-instance node together with its inherited identity and accumulated
// transform chain.
//
// Instances are never yielded: one carrying a transform appends it to a
// copy of the chain, one carrying a definition recurses into it, and one
// carrying neither ends the path. Non-instance nodes are yielded and then
// recursed through their elements, the legacy "@elements" member, and any
// sigil member that is itself a container node.
//
// A definition shared by several instances is yielded once per reaching
// path, each with a chain of its own; sibling branches never observe each
// other's accumulation.
func Extract(root *model.Node) iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		extractInto(root, "", nil, yield)
	}
}

func extractInto(n *model.Node, inheritedID string, chain []model.Transform, yield func(Placement) bool) bool {
	if n == nil {
		return true
	}

	currentID := n.ID
	if currentID == "" {
		currentID = inheritedID
	}

	if n.IsInstance() {
		next := chain
		if n.Transform != nil {
			next = append(slices.Clone(chain), *n.Transform)
		}
		if n.Definition != nil {
			return extractInto(n.Definition, currentID, next, yield)
		}
		return true
	}

	p := Placement{Node: n, InstanceID: currentID, Transforms: slices.Clone(chain)}
	if !yield(p) {
		return false
	}

	for _, el := range n.ChildElements() {
		if !extractInto(el, currentID, slices.Clone(chain), yield) {
			return false
		}
	}
	for _, sub := range n.ExtraContainers() {
		if !extractInto(sub, currentID, slices.Clone(chain), yield) {
			return false
		}
	}
	return true
}
