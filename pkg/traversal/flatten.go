package traversal

import (
	"iter"

	"github.com/mesh-intelligence/surveyor/pkg/model"
)

// Provenance records, for each node visited during flattening, the type tag
// of its immediate structural parent. It is a side table keyed by node
// reference; input nodes are never annotated in place.
type Provenance map[*model.Node]string

// ParentKind returns the recorded parent type tag for a node. The root and
// unvisited nodes resolve to the empty string.
func (p Provenance) ParentKind(n *model.Node) string {
	return p[n]
}

// Flatten linearizes the graph under root into its leaf elements,
// depth-first in document order. Only structurally childless nodes are
// yielded; containers are pure recursion.
//
// Children are reached through Elements or, failing that, through the
// legacy multi-category pattern: sigil members wrapping a single container
// each, visited in sorted key order with the unwrapped node's own type tag
// as provenance. Malformed legacy members are skipped.
//
// prov, when non-nil, is filled with the parent type tag of every visited
// node. Re-invoking on an unchanged acyclic graph yields an equivalent
// sequence.
func Flatten(root *model.Node, prov Provenance) iter.Seq[*model.Node] {
	return func(yield func(*model.Node) bool) {
		flattenInto(root, "", prov, yield)
	}
}

func flattenInto(n *model.Node, parentKind string, prov Provenance, yield func(*model.Node) bool) bool {
	if n == nil {
		return true
	}
	if prov != nil {
		prov[n] = parentKind
	}

	if len(n.Elements) > 0 {
		for _, el := range n.Elements {
			if !flattenInto(el, n.Kind, prov, yield) {
				return false
			}
		}
		return true
	}

	if cats := n.LegacyCategories(); len(cats) > 0 {
		for _, cat := range cats {
			if !flattenInto(cat, cat.Kind, prov, yield) {
				return false
			}
		}
		return true
	}

	return yield(n)
}
