package model

import "sort"

// Unknown is the default returned by accessors when an attribute is absent.
const Unknown = "Unknown"

// SigilPrefix marks legacy dynamic members ("@Lines", "@elements", ...).
const SigilPrefix = "@"

// KindParameter is the type tag of recognized parameter nodes in the
// source schema.
const KindParameter = "Objects.BuiltElements.Revit.Parameter"

// legacyElementsKey is the legacy spelling of the owned-children member.
const legacyElementsKey = SigilPrefix + "elements"

// Node is one element of the design graph. Every attribute except Elements
// is optional; the zero value of a field means the attribute is absent.
//
// A node doubles as a parameter when it appears as a value in a container's
// Parameters map: Name carries the parameter name and Value the parameter
// value.
type Node struct {
	ID       string
	Kind     string // fully-qualified type tag, e.g. "Objects.BuiltElements.Wall"
	Name     string
	Category string
	Type     string
	Family   string
	Value    any

	// Parameters maps parameter keys to parameter nodes. Keys are unique;
	// matching is done on the parameter node's Name, not the key.
	Parameters map[string]*Node

	// Elements holds owned children in document order.
	Elements []*Node

	// Extra holds open-ended sigil-prefixed members. Values are *Node,
	// []*Node, or a raw decoded value. Iteration order is sorted key order.
	Extra map[string]any

	// Transform and Definition make the node an instance. Definition is a
	// shared reference into the graph, never an owned copy: several
	// instances may point at the same node.
	Transform  *Transform
	Definition *Node
}

// IsInstance reports whether the node places a definition: it carries a
// definition reference or a placement transform. Instances are structural,
// not tagged.
func (n *Node) IsInstance() bool {
	return n != nil && (n.Definition != nil || n.Transform != nil)
}

// IsContainer reports whether the node has children, either through
// Elements or through the legacy multi-category pattern.
func (n *Node) IsContainer() bool {
	if n == nil {
		return false
	}
	return len(n.Elements) > 0 || len(n.LegacyCategories()) > 0
}

// IsLeaf reports whether the node is structurally childless.
func (n *Node) IsLeaf() bool {
	return n != nil && !n.IsContainer()
}

// ExtraKeys returns the sigil-prefixed member names in sorted order.
// Sorting gives the open-ended member mapping a stable iteration order.
func (n *Node) ExtraKeys() []string {
	if n == nil || len(n.Extra) == 0 {
		return nil
	}
	keys := make([]string, 0, len(n.Extra))
	for k := range n.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LegacyCategories unwraps the legacy multi-category pattern: every sigil
// member holding a single-element sequence whose first entry is a container
// node. Members that do not match the pattern (absent, empty, or wrapping
// a non-container) are skipped, not errors. Results follow sorted key order.
func (n *Node) LegacyCategories() []*Node {
	if n == nil {
		return nil
	}
	var cats []*Node
	for _, key := range n.ExtraKeys() {
		wrapped := firstNode(n.Extra[key])
		if wrapped.IsContainer() {
			cats = append(cats, wrapped)
		}
	}
	return cats
}

// ChildElements returns the node's owned children: Elements when present,
// otherwise the legacy "@elements" member.
func (n *Node) ChildElements() []*Node {
	if n == nil {
		return nil
	}
	if len(n.Elements) > 0 {
		return n.Elements
	}
	return nodeSlice(n.Extra[legacyElementsKey])
}

// ExtraContainers returns sigil members that are themselves container
// nodes, in sorted key order. The legacy "@elements" member is excluded;
// ChildElements already covers it.
func (n *Node) ExtraContainers() []*Node {
	if n == nil {
		return nil
	}
	var subs []*Node
	for _, key := range n.ExtraKeys() {
		if key == legacyElementsKey {
			continue
		}
		if sub, ok := n.Extra[key].(*Node); ok && len(sub.Elements) > 0 {
			subs = append(subs, sub)
		}
	}
	return subs
}

// firstNode returns the first node of a single-element sequence member.
func firstNode(v any) *Node {
	nodes := nodeSlice(v)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// nodeSlice coerces a dynamic member value to a node sequence.
func nodeSlice(v any) []*Node {
	switch s := v.(type) {
	case []*Node:
		return s
	case []any:
		var nodes []*Node
		for _, e := range s {
			if n, ok := e.(*Node); ok {
				nodes = append(nodes, n)
			}
		}
		return nodes
	case *Node:
		return []*Node{s}
	default:
		return nil
	}
}

// IDOf returns the node id, or Unknown when absent.
func IDOf(n *Node) string {
	if n == nil || n.ID == "" {
		return Unknown
	}
	return n.ID
}

// KindOf returns the node type tag, or Unknown when absent.
func KindOf(n *Node) string {
	if n == nil || n.Kind == "" {
		return Unknown
	}
	return n.Kind
}

// NameOf returns the node name, or Unknown when absent.
func NameOf(n *Node) string {
	if n == nil || n.Name == "" {
		return Unknown
	}
	return n.Name
}

// TypeOf returns the node type, or Unknown when absent.
func TypeOf(n *Node) string {
	if n == nil || n.Type == "" {
		return Unknown
	}
	return n.Type
}

// FamilyOf returns the node family, or Unknown when absent.
func FamilyOf(n *Node) string {
	if n == nil || n.Family == "" {
		return Unknown
	}
	return n.Family
}
